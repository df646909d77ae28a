package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ashev2021/AnalyzePitch/internal/models"
	"github.com/ashev2021/AnalyzePitch/pkg/config"

	"go.uber.org/zap"
)

const evaluationPromptName = "analysis_evaluation"

// judgeContentLimit caps how much of the original deck text is shown to the
// judge model.
const judgeContentLimit = 2000

// JudgeService scores a generated memo against a fixed rubric using a
// second LLM call (LLM-as-judge).
type JudgeService struct {
	completer Completer
	prompts   *PromptManager
	config    *config.Config
	logger    *zap.Logger
}

func NewJudgeService(completer Completer, prompts *PromptManager, cfg *config.Config, logger *zap.Logger) *JudgeService {
	return &JudgeService{
		completer: completer,
		prompts:   prompts,
		config:    cfg,
		logger:    logger,
	}
}

// Evaluate asks the judge model for 1-10 scores along the four rubric
// dimensions plus free-text feedback, and aggregates the overall score.
// A response that cannot be parsed into the expected fields is reported as
// a malformed-evaluation error; it is never retried.
func (s *JudgeService) Evaluate(ctx context.Context, deckText, memo, apiKey string) (*models.EvaluationScore, error) {
	if strings.TrimSpace(memo) == "" {
		return nil, ErrEmptyContent
	}

	if apiKey == "" {
		apiKey = s.config.OpenAI.APIKey
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	promptCfg, err := s.prompts.Get(evaluationPromptName)
	if err != nil {
		return nil, err
	}

	content := deckText
	if len(content) > judgeContentLimit {
		content = content[:judgeContentLimit]
	}

	userPrompt := FillTemplate(promptCfg.UserPromptTemplate, map[string]string{
		"content":  content,
		"analysis": memo,
	})

	response, err := s.completer.Complete(ctx, CompletionRequest{
		Model:        promptCfg.ModelConfig.Model,
		SystemPrompt: promptCfg.SystemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    promptCfg.ModelConfig.MaxTokens,
		Temperature:  promptCfg.ModelConfig.Temperature,
		APIKey:       apiKey,
	})
	if err != nil {
		return nil, err
	}

	score, err := parseEvaluation(response, promptCfg.Weights)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Evaluation completed",
		zap.Float64("overall", score.Overall),
	)

	return score, nil
}

// parseEvaluation extracts the rubric scores from a judge response. The
// model is instructed to return bare JSON but frequently wraps it in
// markdown code fences or surrounding prose, so the object is located by
// its braces first.
func parseEvaluation(response string, weights map[string]float64) (*models.EvaluationScore, error) {
	content := strings.TrimSpace(response)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in response: %s", ErrMalformedEvaluation, content)
	}
	jsonStr := content[start : end+1]

	var raw struct {
		Accuracy      *float64 `json:"accuracy"`
		Completeness  *float64 `json:"completeness"`
		Relevance     *float64 `json:"relevance"`
		Actionability *float64 `json:"actionability"`
		Feedback      string   `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		// Strip markdown code fences and retry once.
		jsonStr = strings.TrimSpace(jsonStr)
		jsonStr = strings.TrimPrefix(jsonStr, "```json")
		jsonStr = strings.TrimPrefix(jsonStr, "```")
		jsonStr = strings.TrimSuffix(jsonStr, "```")
		if err := json.Unmarshal([]byte(strings.TrimSpace(jsonStr)), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEvaluation, err)
		}
	}

	dims := map[string]*float64{
		"accuracy":      raw.Accuracy,
		"completeness":  raw.Completeness,
		"relevance":     raw.Relevance,
		"actionability": raw.Actionability,
	}
	for name, v := range dims {
		if v == nil {
			return nil, fmt.Errorf("%w: missing %s score", ErrMalformedEvaluation, name)
		}
		if *v < 1 || *v > 10 {
			return nil, fmt.Errorf("%w: %s score %.1f outside 1-10 range", ErrMalformedEvaluation, name, *v)
		}
	}

	score := &models.EvaluationScore{
		Accuracy:      *raw.Accuracy,
		Completeness:  *raw.Completeness,
		Relevance:     *raw.Relevance,
		Actionability: *raw.Actionability,
		Feedback:      raw.Feedback,
	}
	score.Overall = weightedOverall(score, weights)
	return score, nil
}

// weightedOverall aggregates the four dimension scores. Weights come from
// the evaluation prompt configuration; missing or empty weights mean an
// equal-weight average.
func weightedOverall(score *models.EvaluationScore, weights map[string]float64) float64 {
	dims := map[string]float64{
		"accuracy":      score.Accuracy,
		"completeness":  score.Completeness,
		"relevance":     score.Relevance,
		"actionability": score.Actionability,
	}

	var sum, totalWeight float64
	for name, value := range dims {
		w, ok := weights[name]
		if !ok || w <= 0 {
			w = 0.25
		}
		sum += value * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return sum / totalWeight
}
