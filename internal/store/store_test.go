package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ashureev/symcheck/internal/domain"
)

// Whitespace and key order are preserved byte for byte.
var sampleInterview = domain.NewInterview{
	BasicInfo:        json.RawMessage(`{"age": 34,"gender":"female"}`),
	SelectedSymptoms: json.RawMessage(`{"symptoms":["fever","cough"],"duration":"2-3_days","severity":6}`),
	SymptomDetails:   json.RawMessage(`{}`),
	MedicalHistory:   json.RawMessage(`{"conditions":["asthma"]}`),
	Results:          json.RawMessage(`{"conditions":[],"urgency":"non_urgent","recommendations":[]}`),
}

func runRepositoryTests(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("user lifecycle", func(t *testing.T) {
		u, err := repo.CreateUser(ctx, domain.NewUser{Username: "alice", Password: "pw"})
		if err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		if u.ID <= 0 {
			t.Fatalf("expected positive id, got %d", u.ID)
		}

		got, err := repo.GetUser(ctx, u.ID)
		if err != nil || got == nil || got.Username != "alice" || got.Password != "pw" {
			t.Fatalf("GetUser = %+v, %v", got, err)
		}

		byName, err := repo.GetUserByUsername(ctx, "alice")
		if err != nil || byName == nil || byName.ID != u.ID {
			t.Fatalf("GetUserByUsername = %+v, %v", byName, err)
		}

		second, err := repo.CreateUser(ctx, domain.NewUser{Username: "bob", Password: "pw"})
		if err != nil {
			t.Fatalf("CreateUser bob: %v", err)
		}
		if second.ID <= u.ID {
			t.Fatalf("ids must increase: %d then %d", u.ID, second.ID)
		}
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		if _, err := repo.CreateUser(ctx, domain.NewUser{Username: "carol", Password: "a"}); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		_, err := repo.CreateUser(ctx, domain.NewUser{Username: "carol", Password: "b"})
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("absent records", func(t *testing.T) {
		if u, err := repo.GetUser(ctx, 9999); err != nil || u != nil {
			t.Fatalf("GetUser(9999) = %+v, %v", u, err)
		}
		if u, err := repo.GetUserByUsername(ctx, "nobody"); err != nil || u != nil {
			t.Fatalf("GetUserByUsername(nobody) = %+v, %v", u, err)
		}
		if iv, err := repo.GetUserInterview(ctx, 9999); err != nil || iv != nil {
			t.Fatalf("GetUserInterview(9999) = %+v, %v", iv, err)
		}
		list, err := repo.GetUserInterviews(ctx, 9999)
		if err != nil {
			t.Fatalf("GetUserInterviews: %v", err)
		}
		if list == nil || len(list) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", list)
		}
	})

	t.Run("interviews round trip", func(t *testing.T) {
		u, err := repo.CreateUser(ctx, domain.NewUser{Username: "dora", Password: "pw"})
		if err != nil {
			t.Fatalf("CreateUser: %v", err)
		}

		ni := sampleInterview
		ni.UserID = u.ID
		first, err := repo.CreateUserInterview(ctx, ni)
		if err != nil {
			t.Fatalf("CreateUserInterview: %v", err)
		}
		if first.CreatedAt.IsZero() {
			t.Fatal("expected createdAt to be set")
		}
		second, err := repo.CreateUserInterview(ctx, ni)
		if err != nil {
			t.Fatalf("CreateUserInterview: %v", err)
		}
		if second.ID <= first.ID {
			t.Fatalf("ids must increase: %d then %d", first.ID, second.ID)
		}

		got, err := repo.GetUserInterview(ctx, first.ID)
		if err != nil || got == nil {
			t.Fatalf("GetUserInterview = %+v, %v", got, err)
		}
		if got.UserID != u.ID {
			t.Errorf("userId = %d, want %d", got.UserID, u.ID)
		}
		assertPayloads(t, got, ni)
		if !got.CreatedAt.Equal(first.CreatedAt) {
			t.Errorf("createdAt = %v, want %v", got.CreatedAt, first.CreatedAt)
		}

		list, err := repo.GetUserInterviews(ctx, u.ID)
		if err != nil {
			t.Fatalf("GetUserInterviews: %v", err)
		}
		if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	t.Run("ping", func(t *testing.T) {
		if err := repo.Ping(ctx); err != nil {
			t.Fatalf("Ping: %v", err)
		}
	})
}

func assertPayloads(t *testing.T, got *domain.Interview, want domain.NewInterview) {
	t.Helper()
	pairs := []struct {
		name      string
		got, want []byte
	}{
		{"basicInfo", got.BasicInfo, want.BasicInfo},
		{"selectedSymptoms", got.SelectedSymptoms, want.SelectedSymptoms},
		{"symptomDetails", got.SymptomDetails, want.SymptomDetails},
		{"medicalHistory", got.MedicalHistory, want.MedicalHistory},
		{"results", got.Results, want.Results},
	}
	for _, p := range pairs {
		if !bytes.Equal(p.got, p.want) {
			t.Errorf("%s = %s, want %s", p.name, p.got, p.want)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	runRepositoryTests(t, NewMemory())
}

func TestMemoryStoreCopiesPayloads(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	ni := sampleInterview
	ni.BasicInfo = append(json.RawMessage(nil), sampleInterview.BasicInfo...)
	created, err := repo.CreateUserInterview(ctx, ni)
	if err != nil {
		t.Fatal(err)
	}
	ni.BasicInfo[0] = 'X'
	created.Results[0] = 'X'

	got, err := repo.GetUserInterview(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.BasicInfo, sampleInterview.BasicInfo) || !bytes.Equal(got.Results, sampleInterview.Results) {
		t.Fatalf("stored payload was mutated: %s %s", got.BasicInfo, got.Results)
	}
}

func TestSQLiteStore(t *testing.T) {
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "nested", "symcheck.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	runRepositoryTests(t, repo)
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "symcheck.db")

	repo, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	u, err := repo.CreateUser(ctx, domain.NewUser{Username: "erin", Password: "pw"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	repo, err = NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer repo.Close()

	got, err := repo.GetUser(ctx, u.ID)
	if err != nil || got == nil || got.Username != "erin" {
		t.Fatalf("GetUser after reopen = %+v, %v", got, err)
	}
}

func TestRebind(t *testing.T) {
	q := `SELECT a FROM t WHERE b = ? AND c = ?`
	if got := rebind(q, dollar); got != `SELECT a FROM t WHERE b = $1 AND c = $2` {
		t.Fatalf("dollar rebind: %s", got)
	}
	if got := rebind(q, questionMark); got != q {
		t.Fatalf("question mark rebind changed query: %s", got)
	}
}

func TestSQLiteStorePragmas(t *testing.T) {
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "symcheck.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer repo.Close()
	db := repo.(*sqlStore).db

	var mode string
	if err := db.QueryRow(`PRAGMA journal_mode`).Scan(&mode); err != nil {
		t.Fatal(err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	var timeout int
	if err := db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout); err != nil {
		t.Fatal(err)
	}
	if timeout != 5000 {
		t.Errorf("busy_timeout = %d, want 5000", timeout)
	}
}

func TestSQLiteStoreConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "symcheck.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer repo.Close()

	user, err := repo.CreateUser(ctx, domain.NewUser{Username: "busy", Password: "pw"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	const workers, perWorker = 20, 25
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ni := sampleInterview
				ni.UserID = user.ID
				if _, err := repo.CreateUserInterview(ctx, ni); err != nil {
					errs <- fmt.Errorf("worker %d insert %d: %w", w, i, err)
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	failures := 0
	for err := range errs {
		if failures == 0 {
			t.Errorf("first failure: %v", err)
		}
		failures++
	}
	if failures > 0 {
		t.Fatalf("%d of %d concurrent inserts failed", failures, workers*perWorker)
	}

	list, err := repo.GetUserInterviews(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserInterviews: %v", err)
	}
	if len(list) != workers*perWorker {
		t.Fatalf("stored %d interviews, want %d", len(list), workers*perWorker)
	}
}
