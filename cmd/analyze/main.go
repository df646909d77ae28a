package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ashev2021/AnalyzePitch/internal/knowledge"
	"github.com/ashev2021/AnalyzePitch/internal/service"
	"github.com/ashev2021/AnalyzePitch/pkg/config"
	"github.com/ashev2021/AnalyzePitch/pkg/logger"

	"go.uber.org/zap"
)

// analyze runs the full pipeline against a single deck file and writes the
// generated memo next to it as <name>_analysis.md.
func main() {
	var (
		apiKey   = flag.String("key", "", "OpenAI API key (defaults to OPENAI_API_KEY)")
		evaluate = flag.Bool("evaluate", false, "score the generated memo with the LLM judge")
		output   = flag.String("o", "", "output path (default <deck>_analysis.md)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: analyze [flags] <pitchdeck.pdf|pitchdeck.pptx>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	deckPath := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()

	embedder := service.NewOpenAIEmbedder(&cfg.OpenAI, cfg.RAG.EmbeddingModel, appLogger)
	store := service.NewKnowledgeStore(knowledge.DefaultCorpus(), embedder, &cfg.RAG, appLogger)
	if err := store.Load(ctx); err != nil {
		appLogger.Fatal("Failed to build knowledge index", zap.Error(err))
	}

	prompts, err := service.NewPromptManager(cfg.Prompts.Path)
	if err != nil {
		appLogger.Fatal("Failed to load prompt configuration", zap.Error(err))
	}

	llmService := service.NewLLMService(&cfg.OpenAI, appLogger)
	extractService := service.NewExtractService(appLogger)
	analysisService := service.NewAnalysisService(store, llmService, prompts, cfg, appLogger)

	text, err := extractService.ExtractText(ctx, deckPath)
	if err != nil {
		appLogger.Fatal("Failed to extract deck text", zap.String("file", deckPath), zap.Error(err))
	}
	fmt.Printf("Extracted text length: %d\n", len(text))

	result, err := analysisService.Generate(ctx, text, filepath.Base(deckPath), *apiKey)
	if err != nil {
		appLogger.Fatal("Analysis failed", zap.Error(err))
	}

	outPath := *output
	if outPath == "" {
		outPath = strings.TrimSuffix(deckPath, filepath.Ext(deckPath)) + "_analysis.md"
	}

	var report strings.Builder
	report.WriteString("# Investment Analysis Report (RAG-Enhanced)\n")
	report.WriteString(fmt.Sprintf("**Generated:** %s\n", time.Now().Format("2006-01-02 15:04:05")))
	report.WriteString(fmt.Sprintf("**Source:** %s\n\n", filepath.Base(deckPath)))
	report.WriteString(result.Memo)

	if err := os.WriteFile(outPath, []byte(report.String()), 0644); err != nil {
		appLogger.Fatal("Failed to write report", zap.String("path", outPath), zap.Error(err))
	}
	fmt.Printf("RAG-enhanced investment analysis saved to: %s\n", outPath)

	if *evaluate {
		judgeService := service.NewJudgeService(llmService, prompts, cfg, appLogger)
		score, err := judgeService.Evaluate(ctx, text, result.Memo, *apiKey)
		if err != nil {
			appLogger.Fatal("Evaluation failed", zap.Error(err))
		}
		fmt.Printf("Overall Score: %.1f/10\n", score.Overall)
		fmt.Printf("  Accuracy:      %.1f/10\n", score.Accuracy)
		fmt.Printf("  Completeness:  %.1f/10\n", score.Completeness)
		fmt.Printf("  Relevance:     %.1f/10\n", score.Relevance)
		fmt.Printf("  Actionability: %.1f/10\n", score.Actionability)
		fmt.Printf("Feedback: %s\n", score.Feedback)
	}
}
