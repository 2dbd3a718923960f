package api

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"quizgen/internal/generator"
	"quizgen/internal/store"
)

const maxUploadBytes = 32 << 20

func (a *API) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	email, ok := identityFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req struct {
		Topic        string `json:"topic"`
		SubTopic     string `json:"subTopic"`
		QuestionType string `json:"questionType"`
		NumQuestions int    `json:"numQuestions"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" || req.QuestionType == "" || req.NumQuestions < 1 {
		respondMessage(w, http.StatusBadRequest, "topic, questionType and numQuestions are required")
		return
	}

	result, err := a.invoker.FromTopic(r.Context(), generator.TopicRequest{
		Topic:        req.Topic,
		SubTopic:     req.SubTopic,
		QuestionType: req.QuestionType,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		observeGeneration(store.SourceNonPDF, "error")
		respondGenerationError(w, err)
		return
	}

	submission := &store.Submission{
		Topic:        req.Topic,
		SubTopic:     req.SubTopic,
		QuestionType: req.QuestionType,
		NumQuestions: req.NumQuestions,
		Email:        email,
		Questions:    result.Questions,
		SourceType:   store.SourceNonPDF,
	}
	if err := a.submissions.Save(r.Context(), submission); err != nil {
		observeGeneration(store.SourceNonPDF, "error")
		a.logger.Error().Err(err).Msg("save submission")
		respondMessage(w, http.StatusInternalServerError, "Error saving questions to database")
		return
	}

	observeGeneration(store.SourceNonPDF, "ok")
	a.publishSubmissionCreated(r.Context(), submission)
	respondJSON(w, http.StatusOK, map[string]any{"questions": submission.Questions})
}

func (a *API) handleUploadAndGenerate(w http.ResponseWriter, r *http.Request) {
	email, ok := identityFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	questionType := r.FormValue("questionType")
	numQuestions, err := strconv.Atoi(r.FormValue("numQuestions"))
	if questionType == "" || err != nil || numQuestions < 1 {
		respondMessage(w, http.StatusBadRequest, "questionType and numQuestions are required")
		return
	}

	path, err := a.saveUpload(file, header.Filename)
	if err != nil {
		a.logger.Error().Err(err).Msg("store upload")
		respondMessage(w, http.StatusInternalServerError, "Error generating questions")
		return
	}
	// The uploaded file is a scoped resource: removed on every exit
	// path, and a file already gone is not an error.
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			a.logger.Warn().Err(err).Str("path", path).Msg("remove upload")
		}
	}()

	result, err := a.invoker.FromFile(r.Context(), generator.FileRequest{
		Path:         path,
		QuestionType: questionType,
		NumQuestions: numQuestions,
	})
	if err != nil {
		observeGeneration(store.SourcePDF, "error")
		respondGenerationError(w, err)
		return
	}

	submission := &store.Submission{
		QuestionType: questionType,
		NumQuestions: numQuestions,
		Email:        email,
		Questions:    result.Questions,
		SourceType:   store.SourcePDF,
	}
	if err := a.submissions.Save(r.Context(), submission); err != nil {
		observeGeneration(store.SourcePDF, "error")
		a.logger.Error().Err(err).Msg("save submission")
		respondMessage(w, http.StatusInternalServerError, "Error saving submission to database")
		return
	}

	observeGeneration(store.SourcePDF, "ok")
	a.publishSubmissionCreated(r.Context(), submission)
	respondJSON(w, http.StatusOK, map[string]any{"questions": submission.Questions})
}

// saveUpload copies the uploaded content to a uniquely named file under
// the configured upload directory and returns its path.
func (a *API) saveUpload(src io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(a.config.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}

func respondGenerationError(w http.ResponseWriter, err error) {
	if errors.Is(err, generator.ErrUnparsableOutput) {
		respondMessage(w, http.StatusInternalServerError, "Error parsing generated questions")
		return
	}
	respondMessage(w, http.StatusInternalServerError, "Error generating questions")
}
