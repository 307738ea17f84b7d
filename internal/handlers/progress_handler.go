package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

type progressStore interface {
	Create(ctx context.Context, userID int64, weight float64, goal string) (*models.ProgressEntry, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.ProgressEntry, error)
}

type ProgressHandler struct {
	progressRepo progressStore
}

func NewProgressHandler(progressRepo progressStore) *ProgressHandler {
	return &ProgressHandler{progressRepo: progressRepo}
}

type addProgressRequest struct {
	UserID int64   `json:"user_id"`
	Weight float64 `json:"weight"`
	Goal   string  `json:"goal"`
}

func (h *ProgressHandler) AddProgress(c *fiber.Ctx) error {
	var req addProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "user_id must be greater than 0"})
	}
	if req.Weight <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "weight must be greater than 0"})
	}
	if strings.TrimSpace(req.Goal) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "goal is required"})
	}

	if _, err := h.progressRepo.Create(c.Context(), req.UserID, req.Weight, req.Goal); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"detail": "Progress addition failed: user does not exist"})
		}
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "Progress addition failed"})
	}

	return c.JSON(fiber.Map{"message": "Progress added successfully!"})
}

// ListProgress returns all entries for a user, ordered by timestamp ascending
// store-side.
func (h *ProgressHandler) ListProgress(c *fiber.Ctx) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid user id"})
	}

	entries, err := h.progressRepo.ListByUserID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error fetching progress"})
	}

	return c.JSON(entries)
}
