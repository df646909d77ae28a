package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ashev2021/AnalyzePitch/internal/models"
	"github.com/ashev2021/AnalyzePitch/pkg/config"

	"go.uber.org/zap"
)

const analysisPromptName = "investment_analysis"

// AnalysisService turns extracted pitch deck text into a markdown
// investment memo using retrieval-augmented generation.
type AnalysisService struct {
	retriever Retriever
	completer Completer
	prompts   *PromptManager
	config    *config.Config
	logger    *zap.Logger
}

func NewAnalysisService(retriever Retriever, completer Completer, prompts *PromptManager, cfg *config.Config, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		retriever: retriever,
		completer: completer,
		prompts:   prompts,
		config:    cfg,
		logger:    logger,
	}
}

// Generate produces an investment memo for the given deck text. The input
// is validated and the credential resolved before any network call is
// attempted, so empty content and missing keys fail fast.
func (s *AnalysisService) Generate(ctx context.Context, deckText, fileName, apiKey string) (*models.AnalysisResult, error) {
	deckText = strings.TrimSpace(deckText)
	if deckText == "" {
		return nil, ErrEmptyContent
	}

	if apiKey == "" {
		apiKey = s.config.OpenAI.APIKey
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	promptCfg, err := s.prompts.Get(analysisPromptName)
	if err != nil {
		return nil, err
	}

	retrieved, err := s.retriever.Retrieve(ctx, deckText, s.config.RAG.TopK)
	if err != nil {
		return nil, fmt.Errorf("knowledge retrieval failed: %w", err)
	}

	ragContext := BuildKnowledgeContext(retrieved)

	systemPrompt := fmt.Sprintf("RETRIEVED INVESTMENT KNOWLEDGE & FRAMEWORKS:\n%s\n\n%s\n\nUse the retrieved investment knowledge above to inform your analysis and provide industry-standard insights with specific benchmarks and frameworks.",
		ragContext, promptCfg.SystemPrompt)

	userPrompt := FillTemplate(promptCfg.UserPromptTemplate, map[string]string{
		"content": deckText,
	})

	memo, err := s.completer.Complete(ctx, CompletionRequest{
		Model:        promptCfg.ModelConfig.Model,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    promptCfg.ModelConfig.MaxTokens,
		Temperature:  promptCfg.ModelConfig.Temperature,
		APIKey:       apiKey,
	})
	if err != nil {
		return nil, err
	}

	companyName := DeriveCompanyName(fileName)

	s.logger.Info("Analysis generated",
		zap.String("company", companyName),
		zap.Int("knowledge_items", len(retrieved)),
		zap.Int("memo_length", len(memo)),
	)

	return &models.AnalysisResult{
		CompanyName: companyName,
		Memo:        memo,
	}, nil
}

// BuildKnowledgeContext formats retrieved passages into the context block
// that is prepended to the analysis system prompt.
func BuildKnowledgeContext(retrieved []models.RetrievedKnowledge) string {
	if len(retrieved) == 0 {
		return "No relevant knowledge base entries found."
	}

	sections := make([]string, 0, len(retrieved))
	for _, r := range retrieved {
		sections = append(sections, fmt.Sprintf("**%s** (Relevance: %.3f, Category: %s):\n%s",
			topicTitle(r.Item.Topic), r.Score, r.Item.Category, r.Item.Content))
	}
	return strings.Join(sections, "\n\n")
}

// DeriveCompanyName strips the extension from an uploaded file name. A name
// without extension is returned as-is; an empty name falls back to
// "Company".
func DeriveCompanyName(fileName string) string {
	base := filepath.Base(strings.TrimSpace(fileName))
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return "Company"
	}
	return name
}

// topicTitle turns a snake_case topic id into a display title.
func topicTitle(topic string) string {
	words := strings.Split(topic, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
