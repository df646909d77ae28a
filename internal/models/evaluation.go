package models

// EvaluationScore holds the LLM-as-judge rubric scores for a generated
// memo. Dimension scores are on a 1-10 scale; Overall is the weighted
// aggregate of the four dimensions.
type EvaluationScore struct {
	Accuracy      float64 `json:"accuracy"`
	Completeness  float64 `json:"completeness"`
	Relevance     float64 `json:"relevance"`
	Actionability float64 `json:"actionability"`
	Overall       float64 `json:"overall"`
	Feedback      string  `json:"feedback"`
}

// AnalysisResult is the outcome of a memo generation run.
type AnalysisResult struct {
	CompanyName string `json:"company_name"`
	Memo        string `json:"memo"`
}
