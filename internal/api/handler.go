// Package api provides HTTP handlers for the symptom checker API.
//
//nolint:revive // "api" package name is intentionally concise for this layer.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ashureev/symcheck/internal/domain"
	"github.com/ashureev/symcheck/internal/interview"
	"github.com/ashureev/symcheck/internal/store"
)

const maxBodyBytes = 1 << 20

// Handler serves the persistence, catalog and wizard session endpoints.
type Handler struct {
	repo     store.Repository
	sessions *interview.Service
}

// NewHandler creates a new Handler.
func NewHandler(repo store.Repository, sessions *interview.Service) *Handler {
	return &Handler{repo: repo, sessions: sessions}
}

// RegisterRoutes registers every /api route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/users", h.CreateUser)
		r.Get("/users/{id}", h.GetUser)

		r.Get("/interviews/{userId}", h.ListInterviews)
		r.Get("/interview/{id}", h.GetInterview)
		r.Post("/interviews", h.CreateInterview)

		r.Get("/symptoms", h.ListSymptoms)
		r.Get("/symptoms/{id}", h.GetSymptom)
		r.Get("/conditions", h.ListConditions)
		r.Get("/conditions/{id}", h.GetCondition)
		r.Post("/predict", h.Predict)

		r.Get("/decision-tree", h.ListNodes)
		r.Get("/decision-tree/{nodeId}", h.GetNode)
		r.Get("/decision-tree/{nodeId}/next", h.NextNode)
		r.Get("/questions", h.RelevantQuestions)

		r.Route("/session", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.ClearSession)
			r.Put("/basic-info", h.PutBasicInfo)
			r.Put("/symptoms", h.PutSymptoms)
			r.Put("/symptom-details", h.PutSymptomDetails)
			r.Put("/medical-history", h.PutMedicalHistory)
			r.Get("/questions", h.SessionQuestions)
			r.Get("/results", h.SessionResults)
			r.Post("/save", h.SaveSession)
		})
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// ValidationFailed writes a 400 with field-level detail.
func ValidationFailed(w http.ResponseWriter, ve *domain.ValidationError) {
	fields := ve.Fields
	if fields == nil {
		fields = []domain.FieldError{}
	}
	JSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation error",
		"errors": fields,
	})
}

// respondError maps domain errors onto status codes. Anything unrecognised
// is logged and reported as a 500 carrying only message.
func respondError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		ValidationFailed(w, ve)
	case errors.Is(err, domain.ErrNotFound):
		Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		Error(w, http.StatusConflict, "conflict")
	default:
		slog.Error(message, "error", err, "request_id", chiMiddleware.GetReqID(r.Context()), "path", r.URL.Path)
		Error(w, http.StatusInternalServerError, message)
	}
}

// decodeJSON reads a JSON body into v. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "request body is required")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.NewValidationError("body", "request body is too large")
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// pathID parses an integer URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// splitList parses a comma-separated query value.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
