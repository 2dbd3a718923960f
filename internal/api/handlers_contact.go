package api

import (
	"net/http"

	"quizgen/internal/store"
)

func (a *API) handleContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact := &store.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := a.contacts.Save(r.Context(), contact); err != nil {
		a.logger.Error().Err(err).Msg("save contact")
		respondMessage(w, http.StatusBadRequest, "Error saving contact")
		return
	}

	respondMessage(w, http.StatusCreated, "Contact saved")
}
