package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/healthbot/backend/internal/storage/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	if err := c.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	return c
}

func TestSeedDemoUserIsIdempotent(t *testing.T) {
	c := newTestClient(t)

	first, err := c.SeedDemoUser()
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	second, err := c.SeedDemoUser()
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if first != second {
		t.Fatalf("seed created a second user: %d != %d", first, second)
	}

	u, err := c.GetUser(first)
	if err != nil {
		t.Fatalf("failed to get seeded user: %v", err)
	}
	if u.Username != "demo" || !u.IsActive || u.PreferredLanguage != "en" {
		t.Fatalf("unexpected seeded user: %+v", u)
	}
}

func TestGetUserNotFound(t *testing.T) {
	c := newTestClient(t)

	_, err := c.GetUser(999)
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAppendAndListInteractions(t *testing.T) {
	c := newTestClient(t)

	userID, err := c.SeedDemoUser()
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	first, err := c.AppendInteraction(userID, "first question", "first answer", "en")
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	second, err := c.AppendInteraction(userID, "second question", "second answer", "sw")
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if second <= first {
		t.Fatalf("interaction ids must be monotonic: %d then %d", first, second)
	}

	records, err := c.ListInteractions(userID, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != second || records[0].Message != "second question" {
		t.Fatalf("expected newest record first, got %+v", records[0])
	}
	if records[1].Language != "en" || records[1].Response != "first answer" {
		t.Fatalf("unexpected oldest record: %+v", records[1])
	}

	limited, err := c.ListInteractions(userID, 1)
	if err != nil {
		t.Fatalf("limited list failed: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != second {
		t.Fatalf("limit not applied: %+v", limited)
	}
}

func TestListInteractionsScopedToUser(t *testing.T) {
	c := newTestClient(t)

	userID, err := c.SeedDemoUser()
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := c.AppendInteraction(userID, "q", "a", "en"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	records, err := c.ListInteractions(userID+1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("history leaked across users: %+v", records)
	}
}

func TestUpdateUserProfile(t *testing.T) {
	c := newTestClient(t)

	userID, err := c.SeedDemoUser()
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	name := "Amina Hassan"
	lang := "sw"
	age := 34
	err = c.UpdateUserProfile(userID, models.ProfileUpdate{
		FullName:          &name,
		PreferredLanguage: &lang,
		Age:               &age,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	u, err := c.GetUser(userID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if u.FullName != name || u.PreferredLanguage != lang || u.Age != age {
		t.Fatalf("update not applied: %+v", u)
	}
	if u.Email != "demo@example.com" {
		t.Fatalf("untouched field changed: %+v", u)
	}
}

func TestUpdateUserProfileNotFound(t *testing.T) {
	c := newTestClient(t)

	name := "Nobody"
	err := c.UpdateUserProfile(42, models.ProfileUpdate{FullName: &name})
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserProfileEmptyUpdateIsNoop(t *testing.T) {
	c := newTestClient(t)

	if err := c.UpdateUserProfile(42, models.ProfileUpdate{}); err != nil {
		t.Fatalf("empty update must be a no-op, got %v", err)
	}
}
