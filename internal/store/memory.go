package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ashureev/symcheck/internal/domain"
)

// MemoryStore implements Repository in process memory. Ids start at 1 and
// increase monotonically per record type.
type MemoryStore struct {
	mu              sync.RWMutex
	users           map[int64]domain.User
	interviews      map[int64]domain.Interview
	nextUserID      int64
	nextInterviewID int64
	now             func() time.Time
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		users:           make(map[int64]domain.User),
		interviews:      make(map[int64]domain.Interview),
		nextUserID:      1,
		nextInterviewID: 1,
		now:             time.Now,
	}
}

// GetUser retrieves a user by id.
func (m *MemoryStore) GetUser(_ context.Context, id int64) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetUserByUsername retrieves a user by username.
func (m *MemoryStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser inserts a user with the next id.
func (m *MemoryStore) CreateUser(_ context.Context, nu domain.NewUser) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == nu.Username {
			return nil, fmt.Errorf("insert user %q: %w", nu.Username, domain.ErrConflict)
		}
	}

	u := domain.User{ID: m.nextUserID, Username: nu.Username, Password: nu.Password}
	m.users[u.ID] = u
	m.nextUserID++
	return &u, nil
}

// GetUserInterviews lists a user's interviews ordered by id.
func (m *MemoryStore) GetUserInterviews(_ context.Context, userID int64) ([]domain.Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Interview, 0)
	for id := int64(1); id < m.nextInterviewID; id++ {
		iv, ok := m.interviews[id]
		if ok && iv.UserID == userID {
			out = append(out, cloneInterview(iv))
		}
	}
	return out, nil
}

// GetUserInterview retrieves one interview by id.
func (m *MemoryStore) GetUserInterview(_ context.Context, id int64) (*domain.Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	iv, ok := m.interviews[id]
	if !ok {
		return nil, nil
	}
	iv = cloneInterview(iv)
	return &iv, nil
}

// CreateUserInterview appends an interview with the next id.
func (m *MemoryStore) CreateUserInterview(_ context.Context, ni domain.NewInterview) (*domain.Interview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	iv := cloneInterview(domain.Interview{
		ID:               m.nextInterviewID,
		UserID:           ni.UserID,
		BasicInfo:        ni.BasicInfo,
		SelectedSymptoms: ni.SelectedSymptoms,
		SymptomDetails:   ni.SymptomDetails,
		MedicalHistory:   ni.MedicalHistory,
		Results:          ni.Results,
		CreatedAt:        m.now().UTC(),
	})
	m.interviews[iv.ID] = iv
	m.nextInterviewID++

	out := cloneInterview(iv)
	return &out, nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

// cloneInterview copies payload bytes so callers cannot mutate stored state.
func cloneInterview(iv domain.Interview) domain.Interview {
	dup := func(b []byte) []byte {
		if b == nil {
			return nil
		}
		return append([]byte(nil), b...)
	}
	iv.BasicInfo = dup(iv.BasicInfo)
	iv.SelectedSymptoms = dup(iv.SelectedSymptoms)
	iv.SymptomDetails = dup(iv.SymptomDetails)
	iv.MedicalHistory = dup(iv.MedicalHistory)
	iv.Results = dup(iv.Results)
	return iv
}
