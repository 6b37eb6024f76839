package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ashureev/symcheck/internal/domain"
)

// CreateUser registers a new user. The password is never echoed back.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.NewUser
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err, "failed to create user")
		return
	}

	missing := &domain.ValidationError{}
	if req.Username == "" {
		missing.Add("username", "is required")
	}
	if req.Password == "" {
		missing.Add("password", "is required")
	}
	if len(missing.Fields) > 0 {
		ValidationFailed(w, missing)
		return
	}

	ctx := r.Context()
	existing, err := h.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		respondError(w, r, err, "failed to create user")
		return
	}
	if existing != nil {
		Error(w, http.StatusConflict, "username already exists")
		return
	}

	user, err := h.repo.CreateUser(ctx, req)
	if errors.Is(err, domain.ErrConflict) {
		Error(w, http.StatusConflict, "username already exists")
		return
	}
	if err != nil {
		respondError(w, r, err, "failed to create user")
		return
	}

	slog.Info("User created", "user_id", user.ID)
	JSON(w, http.StatusCreated, user)
}

// GetUser returns one user without the password.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := h.repo.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "failed to fetch user")
		return
	}
	if user == nil {
		Error(w, http.StatusNotFound, "user not found")
		return
	}
	JSON(w, http.StatusOK, user)
}
