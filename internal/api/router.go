package api

import (
	"github.com/ashev2021/AnalyzePitch/docs"
	"github.com/ashev2021/AnalyzePitch/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	healthHandler *handlers.HealthHandler,
	analysisHandler *handlers.AnalysisHandler,
	knowledgeHandler *handlers.KnowledgeHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		// Pitch decks can run to tens of megabytes.
		BodyLimit: 50 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the OpenAPI definition via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Health)

	// Analysis
	analyze := app.Group("/analyze")
	analyze.Post("/upload", analysisHandler.AnalyzeUpload)
	analyze.Post("/text", analysisHandler.AnalyzeText)

	// Knowledge base
	knowledge := app.Group("/knowledge")
	knowledge.Get("/topics", knowledgeHandler.ListTopics)
	knowledge.Post("/search", knowledgeHandler.SearchKnowledge)

	// Configuration
	app.Get("/config/prompts", knowledgeHandler.GetPromptConfig)

	return app
}
