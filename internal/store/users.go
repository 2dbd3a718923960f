package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	// ErrUserExists is returned when a registration collides with a
	// stored email.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no account matches the email.
	ErrUserNotFound = errors.New("user not found")
)

// Users persists account credentials.
type Users interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

const userCollection = "users"

type userMongoStore struct {
	db *mongo.Database
}

// NewUserMongoStore builds the Mongo-backed credential store and
// ensures the unique email index that enforces write-time uniqueness.
func NewUserMongoStore(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) (Users, error) {
	collection := db.Collection(userCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to create user email index")
		return nil, err
	}

	return &userMongoStore{db: db}, nil
}

func (s *userMongoStore) Create(ctx context.Context, user *User) error {
	user.CreatedAt = time.Now().UTC()

	result, err := s.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserExists
		}
		return err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = objectID
	}
	return nil
}

func (s *userMongoStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	result := s.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email})
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var user User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
