// Package generator invokes the external question-generation process
// and parses its output. The process is an opaque collaborator: it
// receives structured parameters on its argument vector and must print
// a single JSON document {"questions":[...]} on stdout.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"quizgen/internal/store"
)

var (
	// ErrInvocationFailed is returned when the generation process could
	// not be started or exited non-zero.
	ErrInvocationFailed = errors.New("generation process failed")
	// ErrUnparsableOutput is returned when the process output is not a
	// well-formed question document.
	ErrUnparsableOutput = errors.New("unparsable generator output")
)

// TopicRequest parameterizes topic-based generation.
type TopicRequest struct {
	Topic        string
	SubTopic     string
	QuestionType string
	NumQuestions int
}

// FileRequest parameterizes file-based generation.
type FileRequest struct {
	Path         string
	QuestionType string
	NumQuestions int
}

// Result is the parsed generator output.
type Result struct {
	Questions []store.Question `json:"questions"`
}

// Invoker runs the external generation process.
type Invoker interface {
	FromTopic(ctx context.Context, req TopicRequest) (*Result, error)
	FromFile(ctx context.Context, req FileRequest) (*Result, error)
}

// Exec invokes the generator as a subprocess. Arguments are always
// passed as a vector, never interpolated into a shell string.
type Exec struct {
	Bin     string
	Script  string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// NewExec builds a subprocess invoker.
func NewExec(bin, script string, timeout time.Duration, logger zerolog.Logger) (*Exec, error) {
	if bin == "" {
		return nil, errors.New("generator binary is required")
	}
	if timeout <= 0 {
		return nil, errors.New("generator timeout must be positive")
	}
	return &Exec{Bin: bin, Script: script, Timeout: timeout, Logger: logger}, nil
}

// FromTopic generates questions for a free-text topic selection.
func (e *Exec) FromTopic(ctx context.Context, req TopicRequest) (*Result, error) {
	return e.run(ctx,
		"--topic", req.Topic,
		"--subTopic", req.SubTopic,
		"--questionType", req.QuestionType,
		"--numQuestions", strconv.Itoa(req.NumQuestions),
	)
}

// FromFile generates questions from an uploaded document. The caller
// owns the file's lifecycle; this method never deletes it.
func (e *Exec) FromFile(ctx context.Context, req FileRequest) (*Result, error) {
	return e.run(ctx,
		"--file", req.Path,
		"--questionType", req.QuestionType,
		"--numQuestions", strconv.Itoa(req.NumQuestions),
	)
}

func (e *Exec) run(ctx context.Context, args ...string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	argv := args
	if e.Script != "" {
		argv = append([]string{e.Script}, args...)
	}

	cmd := exec.CommandContext(ctx, e.Bin, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Diagnostics stay server-side; the client only sees the
		// invocation failure.
		e.Logger.Error().
			Err(err).
			Str("bin", e.Bin).
			Str("stderr", stderr.String()).
			Msg("generator invocation failed")
		return nil, fmt.Errorf("%w: %v", ErrInvocationFailed, err)
	}

	var result Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		e.Logger.Error().Err(err).Msg("generator output is not valid JSON")
		return nil, fmt.Errorf("%w: %v", ErrUnparsableOutput, err)
	}
	if result.Questions == nil {
		return nil, fmt.Errorf("%w: missing questions field", ErrUnparsableOutput)
	}

	return &result, nil
}
