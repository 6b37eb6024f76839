// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/ashureev/symcheck/internal/domain"
)

// Repository defines the interface for persisting users and saved interviews.
// Lookups of absent records return (nil, nil).
type Repository interface {
	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateUser inserts a user and returns it with its assigned id.
	// A duplicate username yields domain.ErrConflict.
	CreateUser(ctx context.Context, user domain.NewUser) (*domain.User, error)

	// GetUserInterviews lists a user's interviews ordered by id.
	GetUserInterviews(ctx context.Context, userID int64) ([]domain.Interview, error)

	// GetUserInterview retrieves one interview by id.
	GetUserInterview(ctx context.Context, id int64) (*domain.Interview, error)

	// CreateUserInterview appends an interview and returns the stored record.
	CreateUserInterview(ctx context.Context, interview domain.NewInterview) (*domain.Interview, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
