package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

type adviceProvider interface {
	GetAdvice(ctx context.Context, userID int64, message string) models.AdvicePayload
}

type ChatHandler struct {
	adviceService adviceProvider
}

func NewChatHandler(adviceService adviceProvider) *ChatHandler {
	return &ChatHandler{adviceService: adviceService}
}

type chatRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

// Chat never surfaces LLM or store failures as HTTP errors: past request
// parsing, the advice service always produces a full payload.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "user_id must be greater than 0"})
	}

	payload := h.adviceService.GetAdvice(c.Context(), req.UserID, req.Message)
	return c.JSON(payload)
}
