package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/healthbot/backend/internal/engine"
	"github.com/healthbot/backend/internal/metrics"
	"github.com/healthbot/backend/internal/middleware/identity"
	"github.com/healthbot/backend/pkg/logger"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type ChatHandler struct {
	engine *engine.Engine
}

func NewChatHandler(e *engine.Engine) *ChatHandler {
	return &ChatHandler{engine: e}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req struct {
		Message  string `json:"message"`
		Language string `json:"language"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		metrics.ChatTotal.WithLabelValues("validation_error").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.engine.Chat(c.Context(), engine.ChatRequest{
		UserID:   identity.UserID(c),
		Message:  req.Message,
		Language: req.Language,
	})

	if err != nil {
		switch {
		case errors.Is(err, engine.ErrEmptyMessage):
			metrics.ChatTotal.WithLabelValues("validation_error").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message is required",
			})
		case errors.Is(err, engine.ErrUserNotFound):
			metrics.ChatTotal.WithLabelValues("not_found").Inc()
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		default:
			logger.Error("Failed to process chat", zap.Error(err))
			metrics.ChatTotal.WithLabelValues("error").Inc()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error. Please try again.",
			})
		}
	}

	metrics.ChatTotal.WithLabelValues("ok").Inc()
	return c.JSON(fiber.Map{
		"response":  resp.Response,
		"timestamp": resp.Timestamp.Format(time.RFC3339),
	})
}

func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.engine.History(c.Context(), identity.UserID(c), limit)
	if err != nil {
		if errors.Is(err, engine.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		logger.Error("Failed to load chat history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat history",
		})
	}

	history := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		history = append(history, fiber.Map{
			"id":        r.ID,
			"message":   r.Message,
			"response":  r.Response,
			"language":  r.Language,
			"timestamp": r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"history": history,
	})
}
