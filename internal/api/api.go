// Package api exposes the quiz service's HTTP surface: registration,
// login, contact intake, question generation, and submission history.
package api

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"quizgen/internal/auth"
	"quizgen/internal/generator"
	"quizgen/internal/store"
	"quizgen/pkg/bus"
)

const submissionCreatedTopic = "quiz.submissions.created"

// Config controls runtime behaviour for the API handlers.
type Config struct {
	UploadDir      string
	AllowedOrigins []string
}

// API wires stores, the token issuer, and the generation invoker
// behind the HTTP handlers. It holds no per-request state.
type API struct {
	users       store.Users
	submissions store.Submissions
	contacts    store.Contacts
	invoker     generator.Invoker
	tokens      *auth.Tokens
	bus         *bus.Bus
	logger      zerolog.Logger
	config      Config
}

// New initialises the API layer with sane defaults applied to the
// provided configuration. The bus may be nil; events are then dropped.
func New(
	users store.Users,
	submissions store.Submissions,
	contacts store.Contacts,
	invoker generator.Invoker,
	tokens *auth.Tokens,
	eventBus *bus.Bus,
	logger zerolog.Logger,
	cfg Config,
) (*API, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	if submissions == nil {
		return nil, errors.New("submission store is required")
	}
	if contacts == nil {
		return nil, errors.New("contact store is required")
	}
	if invoker == nil {
		return nil, errors.New("generation invoker is required")
	}
	if tokens == nil {
		return nil, errors.New("token issuer is required")
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = os.TempDir()
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return &API{
		users:       users,
		submissions: submissions,
		contacts:    contacts,
		invoker:     invoker,
		tokens:      tokens,
		bus:         eventBus,
		logger:      logger,
		config:      cfg,
	}, nil
}
