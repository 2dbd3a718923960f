package api

import (
	"context"
	"os"
	"sync"
	"time"

	"quizgen/internal/generator"
	"quizgen/internal/store"
)

type fakeUsers struct {
	mu          sync.Mutex
	users       map[string]store.User
	createCalls int
	createErr   error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]store.User)}
}

func (f *fakeUsers) Create(_ context.Context, user *store.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return store.ErrUserExists
	}
	user.CreatedAt = time.Now().UTC()
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

type fakeSubmissions struct {
	mu      sync.Mutex
	saved   []store.Submission
	saveErr error
	listErr error
}

func (f *fakeSubmissions) Save(_ context.Context, submission *store.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	submission.Questions = store.NormalizeQuestions(submission.Questions)
	submission.CreatedAt = time.Now().UTC()
	f.saved = append(f.saved, *submission)
	return nil
}

func (f *fakeSubmissions) List(_ context.Context, email string) ([]store.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []store.Submission
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].Email == email {
			out = append(out, f.saved[i])
		}
	}
	return out, nil
}

func (f *fakeSubmissions) all() []store.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.Submission(nil), f.saved...)
}

type fakeContacts struct {
	mu      sync.Mutex
	saved   []store.Contact
	saveErr error
}

func (f *fakeContacts) Save(_ context.Context, contact *store.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *contact)
	return nil
}

// stubInvoker stands in for the external generation process. It records
// requests and, for file requests, whether the file existed when the
// invocation ran.
type stubInvoker struct {
	mu sync.Mutex

	topicResult *generator.Result
	topicErr    error
	fileResult  *generator.Result
	fileErr     error

	topicCalls      []generator.TopicRequest
	fileCalls       []generator.FileRequest
	fileWasReadable bool
}

func (s *stubInvoker) FromTopic(_ context.Context, req generator.TopicRequest) (*generator.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.topicCalls = append(s.topicCalls, req)
	if s.topicErr != nil {
		return nil, s.topicErr
	}
	return s.topicResult, nil
}

func (s *stubInvoker) FromFile(_ context.Context, req generator.FileRequest) (*generator.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fileCalls = append(s.fileCalls, req)
	if _, err := os.Stat(req.Path); err == nil {
		s.fileWasReadable = true
	}
	if s.fileErr != nil {
		return nil, s.fileErr
	}
	return s.fileResult, nil
}
