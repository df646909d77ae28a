package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashev2021/AnalyzePitch/internal/api"
	"github.com/ashev2021/AnalyzePitch/internal/api/handlers"
	"github.com/ashev2021/AnalyzePitch/internal/knowledge"
	"github.com/ashev2021/AnalyzePitch/internal/service"
	"github.com/ashev2021/AnalyzePitch/pkg/config"
	"github.com/ashev2021/AnalyzePitch/pkg/logger"

	"go.uber.org/zap"
)

// @title Pitch Deck Analyzer API
// @version 1.0
// @description RAG-powered pitch deck analysis for investment managers
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Pitch Deck Analyzer service")

	ctx := context.Background()

	// Build the knowledge store: embed the corpus once at startup. A
	// failure here is fatal, the service must not run without its index.
	embedder := service.NewOpenAIEmbedder(&cfg.OpenAI, cfg.RAG.EmbeddingModel, appLogger)
	store := service.NewKnowledgeStore(knowledge.DefaultCorpus(), embedder, &cfg.RAG, appLogger)
	if err := store.Load(ctx); err != nil {
		appLogger.Fatal("Failed to build knowledge index", zap.Error(err))
	}

	// Load prompt templates
	prompts, err := service.NewPromptManager(cfg.Prompts.Path)
	if err != nil {
		appLogger.Fatal("Failed to load prompt configuration", zap.Error(err))
	}

	// Initialize services
	llmService := service.NewLLMService(&cfg.OpenAI, appLogger)
	extractService := service.NewExtractService(appLogger)
	analysisService := service.NewAnalysisService(store, llmService, prompts, cfg, appLogger)
	judgeService := service.NewJudgeService(llmService, prompts, cfg, appLogger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, prompts, cfg.Prompts.Path)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, judgeService, extractService, appLogger)
	knowledgeHandler := handlers.NewKnowledgeHandler(store, prompts, appLogger)

	// Setup router
	app := api.SetupRouter(healthHandler, analysisHandler, knowledgeHandler, appLogger)

	// Start server
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
