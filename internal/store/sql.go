package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ashureev/symcheck/internal/domain"
	"github.com/ashureev/symcheck/internal/shared"
)

// placeholder renders the n-th (1-based) bind parameter for a driver.
type placeholder func(n int) string

func questionMark(int) string { return "?" }

func dollar(n int) string { return "$" + strconv.Itoa(n) }

// sqlStore implements Repository over database/sql. Queries are written with
// ? and rebound to the driver's placeholder style once at construction.
type sqlStore struct {
	db  *sql.DB
	now func() time.Time

	qGetUser           string
	qGetUserByUsername string
	qCreateUser        string
	qListInterviews    string
	qGetInterview      string
	qCreateInterview   string
}

const interviewColumns = `id, user_id, basic_info, selected_symptoms, symptom_details,
	medical_history, results, created_at`

func newSQLStore(db *sql.DB, ph placeholder) *sqlStore {
	return &sqlStore{
		db:                 db,
		now:                time.Now,
		qGetUser:           rebind(`SELECT id, username, password FROM users WHERE id = ?`, ph),
		qGetUserByUsername: rebind(`SELECT id, username, password FROM users WHERE username = ?`, ph),
		qCreateUser:        rebind(`INSERT INTO users (username, password) VALUES (?, ?) RETURNING id`, ph),
		qListInterviews:    rebind(`SELECT `+interviewColumns+` FROM user_interviews WHERE user_id = ? ORDER BY id`, ph),
		qGetInterview:      rebind(`SELECT `+interviewColumns+` FROM user_interviews WHERE id = ?`, ph),
		qCreateInterview: rebind(`
			INSERT INTO user_interviews (user_id, basic_info, selected_symptoms, symptom_details,
				medical_history, results, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING id`, ph),
	}
}

func rebind(query string, ph placeholder) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString(ph(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Ping verifies database connectivity.
func (s *sqlStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *sqlStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id.
func (s *sqlStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, s.qGetUser, id))
}

// GetUserByUsername retrieves a user by username.
func (s *sqlStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, s.qGetUserByUsername, username))
}

func (s *sqlStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user row: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a user. The unique index on username backs up the
// caller's existence check.
func (s *sqlStore) CreateUser(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.qCreateUser, nu.Username, nu.Password).Scan(&id)
	if shared.IsUniqueViolation(err) {
		return nil, fmt.Errorf("insert user %q: %w", nu.Username, domain.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &domain.User{ID: id, Username: nu.Username, Password: nu.Password}, nil
}

// GetUserInterviews lists a user's interviews ordered by id.
func (s *sqlStore) GetUserInterviews(ctx context.Context, userID int64) ([]domain.Interview, error) {
	rows, err := s.db.QueryContext(ctx, s.qListInterviews, userID)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close interview rows", "error", closeErr)
		}
	}()

	interviews := make([]domain.Interview, 0)
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interviews: %w", err)
	}
	return interviews, nil
}

// GetUserInterview retrieves one interview by id.
func (s *sqlStore) GetUserInterview(ctx context.Context, id int64) (*domain.Interview, error) {
	iv, err := scanInterview(s.db.QueryRowContext(ctx, s.qGetInterview, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return iv, err
}

// CreateUserInterview appends an interview snapshot.
func (s *sqlStore) CreateUserInterview(ctx context.Context, ni domain.NewInterview) (*domain.Interview, error) {
	createdAt := s.now().UTC().Truncate(time.Millisecond)

	var id int64
	err := s.db.QueryRowContext(ctx, s.qCreateInterview,
		ni.UserID,
		string(ni.BasicInfo), string(ni.SelectedSymptoms), string(ni.SymptomDetails),
		string(ni.MedicalHistory), string(ni.Results),
		createdAt.UnixMilli(),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert interview: %w", err)
	}

	return &domain.Interview{
		ID:               id,
		UserID:           ni.UserID,
		BasicInfo:        ni.BasicInfo,
		SelectedSymptoms: ni.SelectedSymptoms,
		SymptomDetails:   ni.SymptomDetails,
		MedicalHistory:   ni.MedicalHistory,
		Results:          ni.Results,
		CreatedAt:        createdAt,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInterview(row rowScanner) (*domain.Interview, error) {
	var (
		iv                                   domain.Interview
		basic, selected, details, history, r string
		createdAt                            int64
	)
	err := row.Scan(&iv.ID, &iv.UserID, &basic, &selected, &details, &history, &r, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan interview row: %w", err)
	}

	iv.BasicInfo = []byte(basic)
	iv.SelectedSymptoms = []byte(selected)
	iv.SymptomDetails = []byte(details)
	iv.MedicalHistory = []byte(history)
	iv.Results = []byte(r)
	iv.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &iv, nil
}
