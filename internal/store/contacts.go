package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Contacts persists contact form messages. Write-only; no read path is
// exposed.
type Contacts interface {
	Save(ctx context.Context, contact *Contact) error
}

const contactCollection = "contacts"

type contactMongoStore struct {
	db *mongo.Database
}

// NewContactMongoStore builds the Mongo-backed contact store.
func NewContactMongoStore(db *mongo.Database) Contacts {
	return &contactMongoStore{db: db}
}

func (s *contactMongoStore) Save(ctx context.Context, contact *Contact) error {
	result, err := s.db.Collection(contactCollection).InsertOne(ctx, contact)
	if err != nil {
		return err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		contact.ID = objectID
	}
	return nil
}
