package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/config"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/handlers"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/llm"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/middleware"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/repository"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	geminiClient := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout)
	adviceService := services.NewAdviceService(profileRepo, geminiClient, cfg.LLMTimeout)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	progressHandler := handlers.NewProgressHandler(progressRepo)
	chatHandler := handlers.NewChatHandler(adviceService)

	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	protected := app.Group("", middleware.AuthRequired(cfg.JWTSecret))
	protected.Post("/profile/create", profileHandler.CreateProfile)
	protected.Get("/profile/:user_id", profileHandler.GetProfile)
	protected.Get("/macros/:user_id", profileHandler.GetMacros)
	protected.Post("/chat", chatHandler.Chat)
	protected.Post("/progress/add", progressHandler.AddProgress)
	protected.Get("/progress/:user_id", progressHandler.ListProgress)
}
