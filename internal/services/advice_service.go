package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

type profileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

type promptGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AdviceService orchestrates the chat path: load profile, build prompt, one
// LLM call, validate, fall back. Chat is a best-effort enrichment feature, so
// every failure past the profile gate degrades to the deterministic fallback
// instead of surfacing as an error.
type AdviceService struct {
	profileRepo profileReader
	llm         promptGenerator
	timeout     time.Duration
}

func NewAdviceService(profileRepo profileReader, llm promptGenerator, timeout time.Duration) *AdviceService {
	return &AdviceService{
		profileRepo: profileRepo,
		llm:         llm,
		timeout:     timeout,
	}
}

func (s *AdviceService) GetAdvice(ctx context.Context, userID int64, message string) models.AdvicePayload {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProfileIncompleteAdvice()
		}
		log.Printf("chat: profile lookup failed for user %d: %v", userID, err)
		return FallbackAdvice(nil, message)
	}

	prompt := BuildAdvicePrompt(profile, message)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.llm.Generate(callCtx, prompt)
	if err != nil {
		log.Printf("chat: llm call failed for user %d: %v", userID, err)
		return FallbackAdvice(profile, message)
	}

	payload, err := ParseAdvice(raw)
	if err != nil {
		log.Printf("chat: llm response rejected for user %d: %v", userID, err)
		return FallbackAdvice(profile, message)
	}

	return *payload
}
