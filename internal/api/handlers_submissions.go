package api

import (
	"net/http"

	"quizgen/internal/store"
)

func (a *API) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	email, ok := identityFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	submissions, err := a.submissions.List(r.Context(), email)
	if err != nil {
		a.logger.Error().Err(err).Msg("list submissions")
		respondMessage(w, http.StatusInternalServerError, "Error fetching submission history")
		return
	}

	if submissions == nil {
		submissions = []store.Submission{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"submissions": submissions})
}
