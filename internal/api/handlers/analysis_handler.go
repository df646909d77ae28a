package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/ashev2021/AnalyzePitch/internal/dto"
	"github.com/ashev2021/AnalyzePitch/internal/models"
	"github.com/ashev2021/AnalyzePitch/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// minContentLength guards against decks whose extraction produced too
// little text to analyze meaningfully.
const minContentLength = 50

type AnalysisHandler struct {
	analysisService *service.AnalysisService
	judgeService    *service.JudgeService
	extractService  *service.ExtractService
	logger          *zap.Logger
}

func NewAnalysisHandler(
	analysisService *service.AnalysisService,
	judgeService *service.JudgeService,
	extractService *service.ExtractService,
	logger *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		judgeService:    judgeService,
		extractService:  extractService,
		logger:          logger,
	}
}

// AnalyzeUpload godoc
// @Summary Analyze an uploaded pitch deck
// @Description Upload a PDF or PPTX pitch deck, extract its text and generate a markdown investment memo
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Pitch deck file (.pdf or .pptx)"
// @Param openai_api_key formData string false "Per-request API key override"
// @Param evaluate formData boolean false "Also score the memo with the LLM judge"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.AnalysisResponse
// @Failure 502 {object} dto.AnalysisResponse
// @Router /analyze/upload [post]
func (h *AnalysisHandler) AnalyzeUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return analysisError(c, fiber.StatusBadRequest, "File is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !h.extractService.SupportedExtension(file.Filename) {
		return analysisError(c, fiber.StatusBadRequest, "Unsupported file type. Allowed: .pdf, .pptx")
	}

	apiKey := c.FormValue("openai_api_key")
	evaluate := c.FormValue("evaluate") == "true"

	src, err := file.Open()
	if err != nil {
		return analysisError(c, fiber.StatusBadRequest, "Failed to open uploaded file")
	}
	defer src.Close()

	extractedText, err := h.extractService.ExtractFromReader(c.Context(), src, file.Filename)
	if err != nil {
		h.logger.Warn("Extraction failed", zap.String("file", file.Filename), zap.Error(err))
		return analysisError(c, fiber.StatusBadRequest, "Failed to extract text from file: "+err.Error())
	}

	if len(strings.TrimSpace(extractedText)) < minContentLength {
		return analysisError(c, fiber.StatusBadRequest,
			"Insufficient content extracted from file. Please check if the file contains readable text.")
	}

	result, evaluation, err := h.runAnalysis(c, extractedText, file.Filename, apiKey, evaluate)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(dto.AnalysisResponse{
		Success:     true,
		Analysis:    result.Memo,
		CompanyName: result.CompanyName,
		Evaluation:  evaluation,
		Metadata: map[string]interface{}{
			"filename":              file.Filename,
			"file_size":             file.Size,
			"extracted_text_length": len(extractedText),
			"file_type":             ext,
		},
	})
}

// AnalyzeText godoc
// @Summary Analyze raw pitch deck text
// @Description Generate a markdown investment memo from already-extracted deck text
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeTextRequest true "Deck content"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.AnalysisResponse
// @Failure 502 {object} dto.AnalysisResponse
// @Router /analyze/text [post]
func (h *AnalysisHandler) AnalyzeText(c *fiber.Ctx) error {
	var req dto.AnalyzeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return analysisError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if len(strings.TrimSpace(req.Content)) < minContentLength {
		return analysisError(c, fiber.StatusBadRequest,
			"Content too short. Please provide substantial pitch deck content.")
	}

	result, evaluation, err := h.runAnalysis(c, req.Content, req.FileName, req.OpenAIAPIKey, req.Evaluate)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(dto.AnalysisResponse{
		Success:     true,
		Analysis:    result.Memo,
		CompanyName: result.CompanyName,
		Evaluation:  evaluation,
		Metadata: map[string]interface{}{
			"content_length": len(req.Content),
			"input_type":     "text",
		},
	})
}

func (h *AnalysisHandler) runAnalysis(c *fiber.Ctx, content, fileName, apiKey string, evaluate bool) (*models.AnalysisResult, *models.EvaluationScore, error) {
	result, err := h.analysisService.Generate(c.Context(), content, fileName, apiKey)
	if err != nil {
		return nil, nil, err
	}

	var evaluation *models.EvaluationScore
	if evaluate {
		evaluation, err = h.judgeService.Evaluate(c.Context(), content, result.Memo, apiKey)
		if err != nil {
			// Scoring is an optional add-on; a judge failure does not void
			// the memo itself.
			h.logger.Warn("Evaluation failed", zap.Error(err))
		}
	}

	return result, evaluation, nil
}

func (h *AnalysisHandler) mapServiceError(c *fiber.Ctx, err error) error {
	h.logger.Error("Analysis failed", zap.Error(err))

	switch {
	case errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrUnsupportedFormat),
		errors.Is(err, service.ErrNoTextExtracted):
		return analysisError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMissingAPIKey):
		return analysisError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrCompletionFailed),
		errors.Is(err, service.ErrMalformedEvaluation):
		return analysisError(c, fiber.StatusBadGateway, "Analysis failed: "+err.Error())
	default:
		return analysisError(c, fiber.StatusInternalServerError, "Analysis failed: "+err.Error())
	}
}

func analysisError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.AnalysisResponse{
		Success: false,
		Error:   message,
	})
}
