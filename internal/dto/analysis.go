package dto

import "github.com/ashev2021/AnalyzePitch/internal/models"

// AnalyzeTextRequest is the JSON body of POST /analyze/text.
type AnalyzeTextRequest struct {
	Content      string `json:"content"`
	FileName     string `json:"file_name,omitempty"`
	OpenAIAPIKey string `json:"openai_api_key,omitempty"`
	Evaluate     bool   `json:"evaluate,omitempty"`
}

// AnalysisResponse is the uniform response shape of both analyze endpoints.
type AnalysisResponse struct {
	Success     bool                    `json:"success"`
	Analysis    string                  `json:"analysis,omitempty"`
	CompanyName string                  `json:"company_name,omitempty"`
	Evaluation  *models.EvaluationScore `json:"evaluation,omitempty"`
	Error       string                  `json:"error,omitempty"`
	Metadata    map[string]interface{}  `json:"metadata,omitempty"`
}

// HealthResponse reports component readiness.
type HealthResponse struct {
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	Components map[string]string `json:"components"`
}
