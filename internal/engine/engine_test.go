package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/healthbot/backend/internal/knowledge"
	"github.com/healthbot/backend/internal/llm"
	"github.com/healthbot/backend/internal/storage/models"
)

type fakeUserStore struct {
	users map[int64]*models.User
}

func (f *fakeUserStore) GetUser(id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

type fakeHistory struct {
	records      []models.Interaction
	failAppends  int
	appendCalls  int
	nextID       int64
}

func (f *fakeHistory) AppendInteraction(userID int64, message, response, language string) (int64, error) {
	f.appendCalls++
	if f.failAppends > 0 {
		f.failAppends--
		return 0, errors.New("disk full")
	}
	f.nextID++
	f.records = append(f.records, models.Interaction{
		ID:        f.nextID,
		UserID:    userID,
		Message:   message,
		Response:  response,
		Language:  language,
		CreatedAt: time.Now(),
	})
	return f.nextID, nil
}

func (f *fakeHistory) ListInteractions(userID int64, limit int) ([]models.Interaction, error) {
	var out []models.Interaction
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		if f.records[i].UserID == userID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

type fakeGenerator struct {
	configured bool
	outcome    llm.Outcome
	lastPrompt string
	calls      int
}

func (f *fakeGenerator) Configured() bool {
	return f.configured
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) llm.Outcome {
	f.calls++
	f.lastPrompt = prompt
	return f.outcome
}

func activeUser(id int64, language string) *models.User {
	return &models.User{
		ID:                id,
		Username:          "asha",
		PreferredLanguage: language,
		IsActive:          true,
	}
}

func newTestEngine(users *fakeUserStore, history *fakeHistory, gen *fakeGenerator) *Engine {
	e := NewEngine(users, history, gen, knowledge.Default(), nil)
	e.retryCfg.InitialDelay = time.Millisecond
	e.retryCfg.MaxDelay = time.Millisecond
	return e
}

func TestChatFallbackWhenUnconfigured(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{1: activeUser(1, "en")}}
	history := &fakeHistory{}
	gen := &fakeGenerator{configured: false}
	e := newTestEngine(users, history, gen)

	resp, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "I have a fever and headache"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(resp.Response, "AI service temporarily unavailable") {
		t.Fatalf("fallback response missing status marker: %q", resp.Response)
	}
	if !strings.Contains(resp.Response, "Always consult a healthcare provider") {
		t.Fatalf("fallback response missing disclaimer: %q", resp.Response)
	}
	if gen.calls != 0 {
		t.Fatalf("unconfigured generator was invoked %d times", gen.calls)
	}
	if len(history.records) != 1 {
		t.Fatalf("expected one interaction, got %d", len(history.records))
	}
	if history.records[0].Response != resp.Response {
		t.Fatalf("persisted response diverges from returned response")
	}
}

func TestChatEmptyMessageRejected(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{1: activeUser(1, "en")}}
	history := &fakeHistory{}
	e := newTestEngine(users, history, &fakeGenerator{})

	_, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: ""})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}

	_, err = e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "   "})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage for whitespace message, got %v", err)
	}

	if len(history.records) != 0 || history.appendCalls != 0 {
		t.Fatalf("rejected request must not persist anything")
	}
}

func TestChatUnknownUserRejected(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{}}
	history := &fakeHistory{}
	e := newTestEngine(users, history, &fakeGenerator{})

	_, err := e.Chat(context.Background(), ChatRequest{UserID: 42, Message: "hello"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(history.records) != 0 {
		t.Fatalf("rejected request must not persist anything")
	}
}

func TestChatInactiveUserRejected(t *testing.T) {
	inactive := activeUser(7, "en")
	inactive.IsActive = false
	users := &fakeUserStore{users: map[int64]*models.User{7: inactive}}
	e := newTestEngine(users, &fakeHistory{}, &fakeGenerator{})

	_, err := e.Chat(context.Background(), ChatRequest{UserID: 7, Message: "hello"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for inactive user, got %v", err)
	}
}

func TestChatAdoptsGeneratedTextVerbatim(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{1: activeUser(1, "en")}}
	history := &fakeHistory{}
	gen := &fakeGenerator{configured: true, outcome: llm.Success("Drink fluids and rest.")}
	e := newTestEngine(users, history, gen)

	resp, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "What should I do about a cold?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Response != "Drink fluids and rest." {
		t.Fatalf("response was modified: %q", resp.Response)
	}
	if history.records[0].Response != "Drink fluids and rest." {
		t.Fatalf("persisted response diverges: %q", history.records[0].Response)
	}
	if !strings.Contains(gen.lastPrompt, "What should I do about a cold?") {
		t.Fatalf("prompt missing user message")
	}
	if !strings.Contains(gen.lastPrompt, "Common Cold") {
		t.Fatalf("prompt missing knowledge catalog")
	}
}

func TestChatGenerationFailureFallsBack(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{1: activeUser(1, "en")}}
	history := &fakeHistory{}
	gen := &fakeGenerator{configured: true, outcome: llm.Unavailable("quota exceeded")}
	e := newTestEngine(users, history, gen)

	resp, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "chest pain"})
	if err != nil {
		t.Fatalf("generation failure must not surface to caller, got %v", err)
	}

	want := FallbackResponse("chest pain")
	if resp.Response != want {
		t.Fatalf("expected fallback template, got %q", resp.Response)
	}
	if gen.calls != 1 {
		t.Fatalf("expected exactly one generation attempt, got %d", gen.calls)
	}
	if len(history.records) != 1 {
		t.Fatalf("expected one interaction, got %d", len(history.records))
	}
}

func TestChatPersistenceFailureSurfaces(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{1: activeUser(1, "en")}}
	history := &fakeHistory{failAppends: 100}
	e := newTestEngine(users, history, &fakeGenerator{})

	resp, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "hello"})
	if err == nil {
		t.Fatalf("expected persistence error to surface")
	}
	if resp != nil {
		t.Fatalf("no reply may be returned without a durable record")
	}
	if len(history.records) != 0 {
		t.Fatalf("failed append must not leave records")
	}
}

func TestChatPersistenceRetriesTransientFailure(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{1: activeUser(1, "en")}}
	history := &fakeHistory{failAppends: 1}
	e := newTestEngine(users, history, &fakeGenerator{})

	resp, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "hello"})
	if err != nil {
		t.Fatalf("transient append failure should be retried, got %v", err)
	}
	if history.appendCalls != 2 {
		t.Fatalf("expected 2 append attempts, got %d", history.appendCalls)
	}
	if len(history.records) != 1 || history.records[0].Response != resp.Response {
		t.Fatalf("expected one record matching the reply")
	}
}

func TestChatLanguageResolution(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{
		1: activeUser(1, "hi"),
		2: activeUser(2, ""),
	}}
	history := &fakeHistory{}
	e := newTestEngine(users, history, &fakeGenerator{})

	// Explicit request language wins over the stored preference.
	_, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "hello", Language: "ta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := history.records[0].Language; got != "ta" {
		t.Fatalf("expected language ta, got %q", got)
	}

	// Stored preference is used when the request has none.
	if _, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := history.records[1].Language; got != "hi" {
		t.Fatalf("expected language hi, got %q", got)
	}

	// English is the last resort.
	if _, err := e.Chat(context.Background(), ChatRequest{UserID: 2, Message: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := history.records[2].Language; got != "en" {
		t.Fatalf("expected language en, got %q", got)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{1: activeUser(1, "en")}}
	history := &fakeHistory{}
	e := newTestEngine(users, history, &fakeGenerator{})

	for _, msg := range []string{"first", "second", "third"} {
		if _, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: msg}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := e.History(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Message != "third" || records[1].Message != "second" {
		t.Fatalf("history not newest-first: %q, %q", records[0].Message, records[1].Message)
	}
}

type fakeCache struct {
	entries map[int64]*models.User
	hits    int
	sets    int
}

func (f *fakeCache) GetUser(ctx context.Context, id int64) (*models.User, bool, error) {
	u, ok := f.entries[id]
	if ok {
		f.hits++
	}
	return u, ok, nil
}

func (f *fakeCache) SetUser(ctx context.Context, user *models.User) error {
	f.sets++
	f.entries[user.ID] = user
	return nil
}

func TestResolveUserPopulatesCache(t *testing.T) {
	users := &fakeUserStore{users: map[int64]*models.User{1: activeUser(1, "en")}}
	cache := &fakeCache{entries: map[int64]*models.User{}}
	e := NewEngine(users, &fakeHistory{}, &fakeGenerator{}, knowledge.Default(), cache)
	e.retryCfg.InitialDelay = time.Millisecond

	if _, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache write on miss, got %d", cache.sets)
	}

	if _, err := e.Chat(context.Background(), ChatRequest{UserID: 1, Message: "again"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected cache hit on second lookup, got %d", cache.hits)
	}
}
