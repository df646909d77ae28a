package handlers

import (
	"strings"

	"github.com/ashev2021/AnalyzePitch/internal/dto"
	"github.com/ashev2021/AnalyzePitch/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	store   *service.KnowledgeStore
	prompts *service.PromptManager
	logger  *zap.Logger
}

func NewKnowledgeHandler(store *service.KnowledgeStore, prompts *service.PromptManager, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		store:   store,
		prompts: prompts,
		logger:  logger,
	}
}

// ListTopics godoc
// @Summary List knowledge base topics
// @Description Get the id, topic, category and tags of every corpus entry
// @Tags knowledge
// @Produce json
// @Success 200 {object} dto.KnowledgeTopicsResponse
// @Router /knowledge/topics [get]
func (h *KnowledgeHandler) ListTopics(c *fiber.Ctx) error {
	items := h.store.Topics()
	topics := make([]dto.KnowledgeTopic, len(items))
	for i, item := range items {
		topics[i] = dto.KnowledgeTopic{
			ID:       item.ID,
			Topic:    item.Topic,
			Category: string(item.Category),
			Tags:     item.Tags,
		}
	}
	return c.JSON(dto.KnowledgeTopicsResponse{Topics: topics})
}

// SearchKnowledge godoc
// @Summary Search the knowledge base
// @Description Rank corpus passages against a free-text query by embedding similarity
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body dto.KnowledgeSearchRequest true "Search query"
// @Success 200 {object} dto.KnowledgeSearchResponse
// @Failure 400 {object} map[string]string
// @Router /knowledge/search [post]
func (h *KnowledgeHandler) SearchKnowledge(c *fiber.Ctx) error {
	var req dto.KnowledgeSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query is required",
		})
	}

	topK := req.TopK
	if topK <= 0 {
		topK = 5
	}

	retrieved, err := h.store.Retrieve(c.Context(), req.Query, topK)
	if err != nil {
		h.logger.Error("Knowledge search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed: " + err.Error(),
		})
	}

	results := make([]dto.KnowledgeSearchResult, 0, len(retrieved))
	for _, r := range retrieved {
		if req.MinScore > 0 && r.Score < req.MinScore {
			continue
		}
		results = append(results, dto.KnowledgeSearchResult{
			Topic:           r.Item.Topic,
			Category:        string(r.Item.Category),
			Content:         r.Item.Content,
			Tags:            r.Item.Tags,
			SimilarityScore: r.Score,
		})
	}

	return c.JSON(dto.KnowledgeSearchResponse{
		Query:      req.Query,
		Results:    results,
		TotalFound: len(results),
	})
}

// GetPromptConfig godoc
// @Summary Get prompt configuration
// @Description Return the loaded prompt templates and model settings
// @Tags config
// @Produce json
// @Success 200 {object} map[string]service.PromptConfig
// @Router /config/prompts [get]
func (h *KnowledgeHandler) GetPromptConfig(c *fiber.Ctx) error {
	return c.JSON(h.prompts.All())
}
