package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ashureev/symcheck/internal/decision"
	"github.com/ashureev/symcheck/internal/domain"
	"github.com/ashureev/symcheck/internal/events"
	"github.com/ashureev/symcheck/internal/scoring"
	"github.com/ashureev/symcheck/internal/validation"
)

// Repository is the slice of the persistence layer the service needs.
type Repository interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserInterview(ctx context.Context, id int64) (*domain.Interview, error)
	CreateUserInterview(ctx context.Context, interview domain.NewInterview) (*domain.Interview, error)
}

// Service runs wizard sessions: it validates each step, recomputes results
// on demand and persists a full snapshot on save.
type Service struct {
	sessions  SessionStore
	repo      Repository
	publisher events.Publisher
	engine    *scoring.Engine
	tree      *decision.Tree
}

// NewService creates a service over the built-in catalog and questionnaire.
// A nil publisher discards events.
func NewService(sessions SessionStore, repo Repository, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		sessions:  sessions,
		repo:      repo,
		publisher: publisher,
		engine:    scoring.Default(),
		tree:      decision.Default(),
	}
}

// Get returns the session's current interview.
func (s *Service) Get(ctx context.Context, sessionID string) (*Interview, error) {
	return s.sessions.Load(ctx, sessionID)
}

// UpdateBasicInfo validates and stores the basic info step.
func (s *Service) UpdateBasicInfo(ctx context.Context, sessionID string, b domain.BasicInfo) (*Interview, error) {
	if err := validation.Struct("basicInfo", b); err != nil {
		return nil, err
	}
	return s.update(ctx, sessionID, func(iv *Interview) { iv.UpdateBasicInfo(b) })
}

// UpdateSymptoms validates and stores the symptom selection step.
func (s *Service) UpdateSymptoms(ctx context.Context, sessionID string, sel domain.SelectedSymptoms) (*Interview, error) {
	if err := validation.Struct("selectedSymptoms", sel); err != nil {
		return nil, err
	}
	if len(sel.Symptoms) == 0 && strings.TrimSpace(sel.OtherSymptoms) == "" {
		return nil, domain.NewValidationError("selectedSymptoms.symptoms", "select at least one symptom or describe other symptoms")
	}
	return s.update(ctx, sessionID, func(iv *Interview) { iv.UpdateSymptoms(sel) })
}

// UpdateSymptomDetails validates and stores the symptom details step.
func (s *Service) UpdateSymptomDetails(ctx context.Context, sessionID string, d domain.SymptomDetails) (*Interview, error) {
	if err := validation.Struct("symptomDetails", d); err != nil {
		return nil, err
	}
	return s.update(ctx, sessionID, func(iv *Interview) { iv.UpdateSymptomDetails(d) })
}

// UpdateMedicalHistory validates and stores the medical history step.
func (s *Service) UpdateMedicalHistory(ctx context.Context, sessionID string, h domain.MedicalHistory) (*Interview, error) {
	if err := validation.Struct("medicalHistory", h); err != nil {
		return nil, err
	}
	return s.update(ctx, sessionID, func(iv *Interview) { iv.UpdateMedicalHistory(h) })
}

func (s *Service) update(ctx context.Context, sessionID string, apply func(*Interview)) (*Interview, error) {
	iv, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	apply(iv)
	if err := s.sessions.Save(ctx, sessionID, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Results recomputes the result from the current answers and records it on
// the session.
func (s *Service) Results(ctx context.Context, sessionID string) (domain.Result, error) {
	iv, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return domain.Result{}, err
	}
	res, err := s.score(iv)
	if err != nil {
		return domain.Result{}, err
	}
	iv.UpdateResults(res)
	if err := s.sessions.Save(ctx, sessionID, iv); err != nil {
		return domain.Result{}, err
	}
	return res, nil
}

// RelevantQuestions lists the questions to ask for the session's symptoms.
func (s *Service) RelevantQuestions(ctx context.Context, sessionID string) ([]string, error) {
	iv, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.tree.RelevantQuestions(iv.SymptomIDs()), nil
}

// Save persists the session's answers and freshly computed result for
// userID. Saving again without changing any step returns the stored record.
func (s *Service) Save(ctx context.Context, sessionID string, userID int64) (*domain.Interview, error) {
	iv, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if iv.SavedInterviewID != 0 && iv.SavedUserID == userID {
		stored, err := s.repo.GetUserInterview(ctx, iv.SavedInterviewID)
		if err != nil {
			return nil, fmt.Errorf("get saved interview: %w", err)
		}
		if stored != nil {
			return stored, nil
		}
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}

	res, err := s.score(iv)
	if err != nil {
		return nil, err
	}

	ni, err := snapshot(userID, iv, res)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.CreateUserInterview(ctx, ni)
	if err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}

	iv.UpdateResults(res)
	iv.SavedInterviewID = stored.ID
	iv.SavedUserID = userID
	if err := s.sessions.Save(ctx, sessionID, iv); err != nil {
		slog.Warn("Failed to mark session saved", "session_id", sessionID, "interview_id", stored.ID, "error", err)
	}

	s.announce(ctx, stored, res)
	return stored, nil
}

// Clear discards the session's answers.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Announce publishes an interview.created event for a stored record. Publish
// failures are logged and otherwise ignored.
func (s *Service) Announce(ctx context.Context, stored *domain.Interview) {
	var res domain.Result
	if err := json.Unmarshal(stored.Results, &res); err != nil {
		slog.Warn("Stored results are not a result payload", "interview_id", stored.ID, "error", err)
	}
	s.announce(ctx, stored, res)
}

func (s *Service) announce(ctx context.Context, stored *domain.Interview, res domain.Result) {
	event := events.InterviewCreated{
		Type:           events.TypeInterviewCreated,
		InterviewID:    stored.ID,
		UserID:         stored.UserID,
		Urgency:        string(res.Urgency),
		ConditionCount: len(res.Conditions),
		CreatedAt:      stored.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Error("Failed to publish interview event", "interview_id", stored.ID, "error", err)
	}
}

// score requires the basic info and symptom selection steps. An empty
// symptom list scores as no conditions.
func (s *Service) score(iv *Interview) (domain.Result, error) {
	missing := &domain.ValidationError{}
	if iv.BasicInfo == nil {
		missing.Add("basicInfo", "complete the basic information step first")
	}
	if iv.SelectedSymptoms == nil {
		missing.Add("selectedSymptoms", "complete the symptom selection step first")
	}
	if len(missing.Fields) > 0 {
		return domain.Result{}, missing
	}

	res, err := s.engine.Predict(iv.SymptomIDs(), iv.BasicInfo.AgeValue(), iv.BasicInfo.Gender)
	if err != nil {
		return domain.Result{}, fmt.Errorf("predict conditions: %w", err)
	}
	return res, nil
}

func snapshot(userID int64, iv *Interview, res domain.Result) (domain.NewInterview, error) {
	var details any = iv.SymptomDetails
	if iv.SymptomDetails == nil {
		details = struct{}{}
	}
	var history any = iv.MedicalHistory
	if iv.MedicalHistory == nil {
		history = struct{}{}
	}

	ni := domain.NewInterview{UserID: userID}
	parts := []struct {
		dst *json.RawMessage
		v   any
	}{
		{&ni.BasicInfo, iv.BasicInfo},
		{&ni.SelectedSymptoms, iv.SelectedSymptoms},
		{&ni.SymptomDetails, details},
		{&ni.MedicalHistory, history},
		{&ni.Results, res},
	}
	for _, p := range parts {
		raw, err := json.Marshal(p.v)
		if err != nil {
			return domain.NewInterview{}, fmt.Errorf("encode interview payload: %w", err)
		}
		*p.dst = raw
	}
	return ni, nil
}
