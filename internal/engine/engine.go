package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/healthbot/backend/internal/knowledge"
	"github.com/healthbot/backend/internal/llm"
	"github.com/healthbot/backend/internal/metrics"
	"github.com/healthbot/backend/internal/storage/models"
	"github.com/healthbot/backend/pkg/logger"
	"github.com/healthbot/backend/pkg/retry"
)

const defaultLanguage = "en"

var (
	// ErrEmptyMessage rejects a chat request before any work is done.
	ErrEmptyMessage = errors.New("message is required")
	// ErrUserNotFound covers both unknown and deactivated users.
	ErrUserNotFound = errors.New("user not found")
)

// UserStore resolves caller identities. Implemented by the sqlite client.
type UserStore interface {
	GetUser(id int64) (*models.User, error)
}

// HistoryStore is the append-only interaction log.
type HistoryStore interface {
	AppendInteraction(userID int64, message, response, language string) (int64, error)
	ListInteractions(userID int64, limit int) ([]models.Interaction, error)
}

// Generator is the boundary to the text-generation provider.
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, prompt string) llm.Outcome
}

// UserCache sits in front of UserStore lookups. Optional; a nil cache means
// every lookup hits the store.
type UserCache interface {
	GetUser(ctx context.Context, id int64) (*models.User, bool, error)
	SetUser(ctx context.Context, user *models.User) error
}

type Engine struct {
	users     UserStore
	history   HistoryStore
	generator Generator
	kb        *knowledge.Base
	cache     UserCache
	retryCfg  retry.Config
}

type ChatRequest struct {
	UserID   int64
	Message  string
	Language string
}

type ChatResponse struct {
	Response      string
	Timestamp     time.Time
	InteractionID int64
}

func NewEngine(users UserStore, history HistoryStore, generator Generator, kb *knowledge.Base, cache UserCache) *Engine {
	retryCfg := retry.DefaultConfig()
	retryCfg.Logger = logger.GetLogger()

	return &Engine{
		users:     users,
		history:   history,
		generator: generator,
		kb:        kb,
		cache:     cache,
		retryCfg:  retryCfg,
	}
}

// Chat answers one health query. The reply text comes from the generation
// provider when it is configured and the call succeeds, and from the
// fallback synthesizer otherwise; either way exactly one interaction is
// recorded, carrying the same text the caller receives. A recording failure
// is surfaced instead of the reply: history must stay complete.
func (e *Engine) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	user, err := e.resolveUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = user.PreferredLanguage
	}
	if language == "" {
		language = defaultLanguage
	}

	requestID := uuid.New().String()
	logger.Info("Processing chat",
		zap.String("request_id", requestID),
		zap.Int64("user_id", user.ID),
		zap.String("language", language),
	)

	var outcome llm.Outcome
	if e.generator.Configured() {
		prompt := BuildPrompt(req.Message, language, e.kb)

		start := time.Now()
		outcome = e.generator.Generate(ctx, prompt)
		metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	} else {
		outcome = llm.Unavailable("not configured")
	}

	var responseText string
	if outcome.Available() {
		responseText = outcome.Text()
		metrics.GenerationTotal.WithLabelValues("success").Inc()
	} else {
		logger.Warn("Generation unavailable, using fallback response",
			zap.String("request_id", requestID),
			zap.String("reason", outcome.Reason()),
		)
		responseText = FallbackResponse(req.Message)
		metrics.GenerationTotal.WithLabelValues("unavailable").Inc()
		metrics.FallbackTotal.Inc()
	}

	timestamp := time.Now().UTC()

	var interactionID int64
	err = retry.Do(ctx, e.retryCfg, func() error {
		var appendErr error
		interactionID, appendErr = e.history.AppendInteraction(user.ID, req.Message, responseText, language)
		return appendErr
	})
	if err != nil {
		logger.Error("Failed to record interaction",
			zap.String("request_id", requestID),
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to record interaction: %w", err)
	}

	logger.Info("Chat completed",
		zap.String("request_id", requestID),
		zap.Int64("interaction_id", interactionID),
		zap.Bool("fallback", !outcome.Available()),
	)

	return &ChatResponse{
		Response:      responseText,
		Timestamp:     timestamp,
		InteractionID: interactionID,
	}, nil
}

// History returns the caller's most recent interactions, newest first.
func (e *Engine) History(ctx context.Context, userID int64, limit int) ([]models.Interaction, error) {
	if _, err := e.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	return e.history.ListInteractions(userID, limit)
}

func (e *Engine) resolveUser(ctx context.Context, id int64) (*models.User, error) {
	if e.cache != nil {
		cached, hit, err := e.cache.GetUser(ctx, id)
		if err != nil {
			logger.Warn("User cache read failed", zap.Int64("user_id", id), zap.Error(err))
		} else if hit {
			metrics.UserCacheTotal.WithLabelValues("hit").Inc()
			if !cached.IsActive {
				return nil, ErrUserNotFound
			}
			return cached, nil
		} else {
			metrics.UserCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	user, err := e.users.GetUser(id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}

	if e.cache != nil {
		if err := e.cache.SetUser(ctx, user); err != nil {
			logger.Warn("User cache write failed", zap.Int64("user_id", id), zap.Error(err))
		}
	}

	return user, nil
}
