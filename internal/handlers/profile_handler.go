package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/repository"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/services"
)

type profileStore interface {
	Upsert(ctx context.Context, userID int64, input repository.ProfileInput) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

type ProfileHandler struct {
	profileRepo profileStore
}

func NewProfileHandler(profileRepo profileStore) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

type createProfileRequest struct {
	UserID        int64   `json:"user_id"`
	Age           int     `json:"age"`
	HeightCM      float64 `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var req createProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if validationErr := validateCreateProfileRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": validationErr})
	}

	_, err := h.profileRepo.Upsert(c.Context(), req.UserID, repository.ProfileInput{
		Age:           req.Age,
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		Sex:           req.Sex,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"detail": "Profile creation failed: user does not exist"})
		}
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "Profile creation failed"})
	}

	return c.JSON(fiber.Map{"message": "Profile saved!"})
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid user id"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(fiber.Map{})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error fetching profile"})
	}

	return c.JSON(profile)
}

// GetMacros always computes from the stored profile weight, never from a
// request value.
func (h *ProfileHandler) GetMacros(c *fiber.Ctx) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid user id"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error calculating macros"})
	}

	return c.JSON(services.CalculateMacros(profile.WeightKG))
}

func parseUserIDParam(c *fiber.Ctx) (int64, error) {
	userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, strconv.ErrSyntax
	}
	return userID, nil
}
