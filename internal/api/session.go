package api

import (
	"errors"
	"net/http"

	"github.com/ashureev/symcheck/internal/domain"
	"github.com/ashureev/symcheck/internal/identity"
	"github.com/ashureev/symcheck/internal/interview"
)

// GetSession returns the caller's wizard answers so far.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	iv, err := h.sessions.Get(r.Context(), identity.SessionIDFromContext(r.Context()))
	if err != nil {
		respondError(w, r, err, "failed to load session")
		return
	}
	JSON(w, http.StatusOK, iv)
}

// ClearSession discards the caller's wizard answers.
func (h *Handler) ClearSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r.Context(), identity.SessionIDFromContext(r.Context())); err != nil {
		respondError(w, r, err, "failed to clear session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// putStep decodes one step payload and applies it through update.
func putStep[T any](h *Handler, w http.ResponseWriter, r *http.Request,
	update func(*interview.Service, *http.Request, string, T) (*interview.Interview, error),
) {
	var step T
	if err := decodeJSON(w, r, &step); err != nil {
		respondError(w, r, err, "failed to update session")
		return
	}
	iv, err := update(h.sessions, r, identity.SessionIDFromContext(r.Context()), step)
	if err != nil {
		respondError(w, r, err, "failed to update session")
		return
	}
	JSON(w, http.StatusOK, iv)
}

// PutBasicInfo replaces the basic info step.
func (h *Handler) PutBasicInfo(w http.ResponseWriter, r *http.Request) {
	putStep(h, w, r, func(s *interview.Service, r *http.Request, sid string, b domain.BasicInfo) (*interview.Interview, error) {
		return s.UpdateBasicInfo(r.Context(), sid, b)
	})
}

// PutSymptoms replaces the symptom selection step.
func (h *Handler) PutSymptoms(w http.ResponseWriter, r *http.Request) {
	putStep(h, w, r, func(s *interview.Service, r *http.Request, sid string, sel domain.SelectedSymptoms) (*interview.Interview, error) {
		return s.UpdateSymptoms(r.Context(), sid, sel)
	})
}

// PutSymptomDetails replaces the symptom details step.
func (h *Handler) PutSymptomDetails(w http.ResponseWriter, r *http.Request) {
	putStep(h, w, r, func(s *interview.Service, r *http.Request, sid string, d domain.SymptomDetails) (*interview.Interview, error) {
		return s.UpdateSymptomDetails(r.Context(), sid, d)
	})
}

// PutMedicalHistory replaces the medical history step.
func (h *Handler) PutMedicalHistory(w http.ResponseWriter, r *http.Request) {
	putStep(h, w, r, func(s *interview.Service, r *http.Request, sid string, m domain.MedicalHistory) (*interview.Interview, error) {
		return s.UpdateMedicalHistory(r.Context(), sid, m)
	})
}

// SessionQuestions lists the questions relevant to the selected symptoms.
func (h *Handler) SessionQuestions(w http.ResponseWriter, r *http.Request) {
	qs, err := h.sessions.RelevantQuestions(r.Context(), identity.SessionIDFromContext(r.Context()))
	if err != nil {
		respondError(w, r, err, "failed to load session")
		return
	}
	JSON(w, http.StatusOK, map[string][]string{"questions": qs})
}

// SessionResults recomputes the result for the caller's answers.
func (h *Handler) SessionResults(w http.ResponseWriter, r *http.Request) {
	res, err := h.sessions.Results(r.Context(), identity.SessionIDFromContext(r.Context()))
	if err != nil {
		respondError(w, r, err, "failed to compute results")
		return
	}
	JSON(w, http.StatusOK, res)
}

type saveSessionRequest struct {
	UserID *int64 `json:"userId"`
}

// SaveSession persists the caller's answers for a user.
func (h *Handler) SaveSession(w http.ResponseWriter, r *http.Request) {
	var req saveSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err, "failed to save interview")
		return
	}
	if req.UserID == nil {
		ValidationFailed(w, domain.NewValidationError("userId", "is required"))
		return
	}

	stored, err := h.sessions.Save(r.Context(), identity.SessionIDFromContext(r.Context()), *req.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		Error(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		respondError(w, r, err, "failed to save interview")
		return
	}
	JSON(w, http.StatusCreated, stored)
}
