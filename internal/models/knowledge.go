package models

// KnowledgeCategory classifies a knowledge item into one of the fixed
// investment-domain categories.
type KnowledgeCategory string

const (
	CategoryValuation      KnowledgeCategory = "valuation"
	CategoryMarketAnalysis KnowledgeCategory = "market_analysis"
	CategoryTraction       KnowledgeCategory = "traction"
	CategoryMetrics        KnowledgeCategory = "metrics"
	CategoryFunding        KnowledgeCategory = "funding"
	CategoryTeam           KnowledgeCategory = "team"
	CategoryStrategy       KnowledgeCategory = "strategy"
	CategoryFinancials     KnowledgeCategory = "financials"
	CategoryGrowth         KnowledgeCategory = "growth"
	CategoryRisks          KnowledgeCategory = "risks"
)

// KnowledgeItem is a single hand-authored reference passage in the
// investment knowledge corpus. Items are immutable after load; IDs are
// positional and stable.
type KnowledgeItem struct {
	ID       int               `json:"id"`
	Topic    string            `json:"topic"`
	Category KnowledgeCategory `json:"category"`
	Content  string            `json:"content"`
	Tags     []string          `json:"tags"`
}

// RetrievedKnowledge pairs a knowledge item with its similarity score
// against a query, higher is more similar.
type RetrievedKnowledge struct {
	Item  KnowledgeItem `json:"item"`
	Score float64       `json:"similarity_score"`
}
