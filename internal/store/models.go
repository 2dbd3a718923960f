package store

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Source tags discriminate how a submission's questions were produced.
const (
	SourcePDF    = "pdf"
	SourceNonPDF = "non-pdf"
)

// User is an account keyed by email. The password is stored only as a
// salted hash.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}

// Question is one generated question/answer pair with its source context.
type Question struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
	Context  string `bson:"context" json:"context"`
}

// Submission is one generated question set owned by an account. Topic
// and SubTopic are empty for file-sourced submissions.
type Submission struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Topic        string        `bson:"topic,omitempty" json:"topic,omitempty"`
	SubTopic     string        `bson:"sub_topic,omitempty" json:"subTopic,omitempty"`
	QuestionType string        `bson:"question_type" json:"questionType"`
	NumQuestions int           `bson:"num_questions" json:"numQuestions"`
	Email        string        `bson:"email" json:"email"`
	Questions    []Question    `bson:"questions" json:"questions"`
	SourceType   string        `bson:"source_type" json:"sourceType"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
}

// Contact is a write-only contact form message, independent of accounts.
type Contact struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Name    string        `bson:"name" json:"name"`
	Email   string        `bson:"email" json:"email"`
	Phone   string        `bson:"phone" json:"phone"`
	Message string        `bson:"message" json:"message"`
}
