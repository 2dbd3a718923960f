package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Sentinel values substituted for fields the generator left empty.
const (
	NoQuestion = "No question"
	NoAnswer   = "No answer"
	NoContext  = "No context"
)

// Submissions persists generated question sets. Submissions are
// immutable after creation; there is no update or delete path.
type Submissions interface {
	Save(ctx context.Context, submission *Submission) error
	List(ctx context.Context, email string) ([]Submission, error)
}

const submissionCollection = "submissions"

type submissionMongoStore struct {
	db *mongo.Database
}

// NewSubmissionMongoStore builds the Mongo-backed submission store.
func NewSubmissionMongoStore(db *mongo.Database) Submissions {
	return &submissionMongoStore{db: db}
}

func (s *submissionMongoStore) Save(ctx context.Context, submission *Submission) error {
	submission.Questions = NormalizeQuestions(submission.Questions)
	submission.CreatedAt = time.Now().UTC()

	result, err := s.db.Collection(submissionCollection).InsertOne(ctx, submission)
	if err != nil {
		return err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		submission.ID = objectID
	}
	return nil
}

func (s *submissionMongoStore) List(ctx context.Context, email string) ([]Submission, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.db.Collection(submissionCollection).Find(ctx, bson.M{"email": email}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []Submission
	for cursor.Next(ctx) {
		var submission Submission
		if err := cursor.Decode(&submission); err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

// NormalizeQuestions applies the sentinel defaults to any question
// field the generator left empty.
func NormalizeQuestions(questions []Question) []Question {
	normalized := make([]Question, len(questions))
	for i, q := range questions {
		if q.Question == "" {
			q.Question = NoQuestion
		}
		if q.Answer == "" {
			q.Answer = NoAnswer
		}
		if q.Context == "" {
			q.Context = NoContext
		}
		normalized[i] = q
	}
	return normalized
}
