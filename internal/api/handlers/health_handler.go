package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/ashev2021/AnalyzePitch/internal/dto"
	"github.com/ashev2021/AnalyzePitch/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store       *service.KnowledgeStore
	prompts     *service.PromptManager
	promptsPath string
}

func NewHealthHandler(store *service.KnowledgeStore, prompts *service.PromptManager, promptsPath string) *HealthHandler {
	return &HealthHandler{
		store:       store,
		prompts:     prompts,
		promptsPath: promptsPath,
	}
}

// Root godoc
// @Summary Basic health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:  "healthy",
		Message: "Pitch Deck Analyzer API is running",
		Components: map[string]string{
			"knowledge_store": initializedState(h.store.Ready()),
			"prompt_manager":  initializedState(h.prompts != nil),
		},
	})
}

// Health godoc
// @Summary Detailed health check
// @Description Report the state of the knowledge index and prompt configuration
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	components := map[string]string{}

	if h.store.Ready() {
		components["knowledge_store"] = fmt.Sprintf("healthy (%d items, dimension %d)", h.store.Size(), h.store.Dimension())
	} else {
		components["knowledge_store"] = "not_initialized"
	}

	if h.prompts != nil && h.prompts.Count() > 0 {
		components["prompt_manager"] = "healthy"
	} else {
		components["prompt_manager"] = "not_initialized"
	}

	if _, err := os.Stat(h.promptsPath); err == nil {
		components["prompts_config"] = "exists"
	} else {
		components["prompts_config"] = "missing"
	}

	status := "healthy"
	for _, state := range components {
		if strings.Contains(state, "not_initialized") || strings.Contains(state, "missing") {
			status = "unhealthy"
			break
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:     status,
		Message:    "System health check complete",
		Components: components,
	})
}

func initializedState(ok bool) string {
	if ok {
		return "initialized"
	}
	return "not_initialized"
}
