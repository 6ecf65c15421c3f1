package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/healthbot/backend/internal/middleware/identity"
	"github.com/healthbot/backend/internal/storage/models"
	"github.com/healthbot/backend/pkg/logger"
)

type ProfileStore interface {
	GetUser(id int64) (*models.User, error)
	UpdateUserProfile(id int64, update models.ProfileUpdate) error
}

type ProfileCache interface {
	InvalidateUser(ctx context.Context, id int64) error
}

type ProfileHandler struct {
	store ProfileStore
	cache ProfileCache
}

// NewProfileHandler wires the user store and an optional cache; pass a nil
// cache when redis is disabled.
func NewProfileHandler(store ProfileStore, cache ProfileCache) *ProfileHandler {
	return &ProfileHandler{store: store, cache: cache}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.store.GetUser(identity.UserID(c))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		logger.Error("Failed to load user profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load user profile",
		})
	}

	return c.JSON(fiber.Map{
		"id":                 user.ID,
		"username":           user.Username,
		"email":              user.Email,
		"full_name":          user.FullName,
		"phone":              user.Phone,
		"age":                user.Age,
		"gender":             user.Gender,
		"location":           user.Location,
		"preferred_language": user.PreferredLanguage,
		"created_at":         user.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		FullName          *string `json:"full_name"`
		Phone             *string `json:"phone"`
		Age               *int    `json:"age"`
		Gender            *string `json:"gender"`
		Location          *string `json:"location"`
		PreferredLanguage *string `json:"preferred_language"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	userID := identity.UserID(c)
	err := h.store.UpdateUserProfile(userID, models.ProfileUpdate{
		FullName:          req.FullName,
		Phone:             req.Phone,
		Age:               req.Age,
		Gender:            req.Gender,
		Location:          req.Location,
		PreferredLanguage: req.PreferredLanguage,
	})

	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		logger.Error("Failed to update user profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user profile",
		})
	}

	if h.cache != nil {
		if err := h.cache.InvalidateUser(c.Context(), userID); err != nil {
			logger.Warn("Failed to invalidate user cache", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}
