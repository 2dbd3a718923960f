package api

import (
	"errors"
	"net/http"
	"strings"

	"quizgen/internal/auth"
	"quizgen/internal/store"
)

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if req.Password != req.ConfirmPassword {
		respondMessage(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.logger.Error().Err(err).Msg("hash password")
		respondMessage(w, http.StatusInternalServerError, "Error registering user")
		return
	}

	user := &store.User{Email: req.Email, PasswordHash: hash}
	if err := a.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			respondMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		a.logger.Error().Err(err).Msg("create user")
		respondMessage(w, http.StatusInternalServerError, "Error registering user")
		return
	}

	respondMessage(w, http.StatusCreated, "User registered successfully")
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := a.users.GetByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondMessage(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		a.logger.Error().Err(err).Msg("look up user")
		respondMessage(w, http.StatusInternalServerError, "Error logging in")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondMessage(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	token, err := a.tokens.Issue(user.Email)
	if err != nil {
		a.logger.Error().Err(err).Msg("issue token")
		respondMessage(w, http.StatusInternalServerError, "Error logging in")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
	})
}
