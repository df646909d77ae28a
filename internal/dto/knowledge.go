package dto

// KnowledgeTopic is one corpus entry in the topic listing.
type KnowledgeTopic struct {
	ID       int      `json:"id"`
	Topic    string   `json:"topic"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// KnowledgeTopicsResponse is the body of GET /knowledge/topics.
type KnowledgeTopicsResponse struct {
	Topics []KnowledgeTopic `json:"topics"`
}

// KnowledgeSearchRequest is the body of POST /knowledge/search.
type KnowledgeSearchRequest struct {
	Query    string  `json:"query"`
	TopK     int     `json:"top_k,omitempty"`
	MinScore float64 `json:"min_score,omitempty"`
}

// KnowledgeSearchResult is a single ranked passage.
type KnowledgeSearchResult struct {
	Topic           string   `json:"topic"`
	Category        string   `json:"category"`
	Content         string   `json:"content"`
	Tags            []string `json:"tags"`
	SimilarityScore float64  `json:"similarity_score"`
}

// KnowledgeSearchResponse is the body of POST /knowledge/search.
type KnowledgeSearchResponse struct {
	Query      string                  `json:"query"`
	Results    []KnowledgeSearchResult `json:"results"`
	TotalFound int                     `json:"total_found"`
}
