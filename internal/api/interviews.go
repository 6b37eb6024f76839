package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ashureev/symcheck/internal/domain"
	"github.com/ashureev/symcheck/internal/validation"
)

// createInterviewRequest keeps each payload as received so the stored bytes
// match the request.
type createInterviewRequest struct {
	UserID           *int64          `json:"userId"`
	BasicInfo        json.RawMessage `json:"basicInfo"`
	SelectedSymptoms json.RawMessage `json:"selectedSymptoms"`
	SymptomDetails   json.RawMessage `json:"symptomDetails"`
	MedicalHistory   json.RawMessage `json:"medicalHistory"`
	Results          json.RawMessage `json:"results"`
}

func (req *createInterviewRequest) validate() error {
	var errs []error
	if req.UserID == nil {
		errs = append(errs, domain.NewValidationError("userId", "is required"))
	}
	errs = append(errs,
		checkPayload("basicInfo", req.BasicInfo, &domain.BasicInfo{}),
		checkPayload("selectedSymptoms", req.SelectedSymptoms, &domain.SelectedSymptoms{}),
		checkPayload("symptomDetails", req.SymptomDetails, &domain.SymptomDetails{}),
		checkPayload("medicalHistory", req.MedicalHistory, &domain.MedicalHistory{}),
		checkPayload("results", req.Results, &domain.Result{}),
	)
	return validation.Merge(errs...)
}

// checkPayload requires raw to be a JSON object that decodes into schema
// and satisfies its validation tags.
func checkPayload(field string, raw json.RawMessage, schema interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.NewValidationError(field, "is required")
	}
	if trimmed[0] != '{' {
		return domain.NewValidationError(field, "must be an object")
	}
	if err := json.Unmarshal(raw, schema); err != nil {
		return domain.NewValidationError(field, "does not match the expected shape: "+err.Error())
	}
	return validation.Struct(field, schema)
}

// ListInterviews returns a user's interviews, oldest first.
func (h *Handler) ListInterviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	interviews, err := h.repo.GetUserInterviews(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "failed to fetch interviews")
		return
	}
	JSON(w, http.StatusOK, interviews)
}

// GetInterview returns one stored interview.
func (h *Handler) GetInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid interview ID")
		return
	}

	iv, err := h.repo.GetUserInterview(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "failed to fetch interview")
		return
	}
	if iv == nil {
		Error(w, http.StatusNotFound, "interview not found")
		return
	}
	JSON(w, http.StatusOK, iv)
}

// CreateInterview stores a complete interview snapshot.
func (h *Handler) CreateInterview(w http.ResponseWriter, r *http.Request) {
	var req createInterviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err, "failed to create interview")
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, r, err, "failed to create interview")
		return
	}

	ctx := r.Context()
	user, err := h.repo.GetUser(ctx, *req.UserID)
	if err != nil {
		respondError(w, r, err, "failed to create interview")
		return
	}
	if user == nil {
		Error(w, http.StatusNotFound, "user not found")
		return
	}

	stored, err := h.repo.CreateUserInterview(ctx, domain.NewInterview{
		UserID:           *req.UserID,
		BasicInfo:        req.BasicInfo,
		SelectedSymptoms: req.SelectedSymptoms,
		SymptomDetails:   req.SymptomDetails,
		MedicalHistory:   req.MedicalHistory,
		Results:          req.Results,
	})
	if err != nil {
		respondError(w, r, err, "failed to create interview")
		return
	}

	slog.Info("Interview created", "interview_id", stored.ID, "user_id", stored.UserID)
	h.sessions.Announce(ctx, stored)
	JSON(w, http.StatusCreated, stored)
}
