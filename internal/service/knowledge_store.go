package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/ashev2021/AnalyzePitch/internal/models"
	"github.com/ashev2021/AnalyzePitch/pkg/config"

	"go.uber.org/zap"
)

// Retriever answers nearest-neighbor queries over the knowledge corpus.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]models.RetrievedKnowledge, error)
}

// KnowledgeStore holds the fixed knowledge corpus together with one
// precomputed embedding per item. Load runs once at startup; afterwards the
// store is read-only and safe for concurrent use without locking.
type KnowledgeStore struct {
	items    []models.KnowledgeItem
	vectors  [][]float32
	embedder Embedder
	config   *config.RAGConfig
	logger   *zap.Logger
	loaded   bool
}

// indexFile is the on-disk cache of precomputed embeddings. It is rebuilt
// whenever the corpus content or embedding model changes.
type indexFile struct {
	Model      string      `json:"model"`
	Dimension  int         `json:"dimension"`
	CorpusHash string      `json:"corpus_hash"`
	Embeddings [][]float32 `json:"embeddings"`
}

func NewKnowledgeStore(items []models.KnowledgeItem, embedder Embedder, cfg *config.RAGConfig, logger *zap.Logger) *KnowledgeStore {
	return &KnowledgeStore{
		items:    items,
		embedder: embedder,
		config:   cfg,
		logger:   logger,
	}
}

// Load populates the embedding matrix, reusing the on-disk index when its
// corpus hash and model match. A failure here is fatal: the caller must not
// serve retrieval requests without a fully built index.
func (s *KnowledgeStore) Load(ctx context.Context) error {
	hash := s.corpusHash()

	if s.loadCachedIndex(hash) {
		s.logger.Info("Loaded existing knowledge index",
			zap.Int("items", len(s.items)),
			zap.Int("dimension", s.Dimension()),
		)
		s.loaded = true
		return nil
	}

	if len(s.items) == 0 {
		s.vectors = nil
		s.loaded = true
		return nil
	}

	s.logger.Info("Building knowledge index", zap.Int("items", len(s.items)))

	texts := make([]string, len(s.items))
	for i, item := range s.items {
		texts[i] = item.Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed knowledge corpus: %w", err)
	}
	if len(vectors) != len(s.items) {
		return fmt.Errorf("index build failed: %d embeddings for %d items", len(vectors), len(s.items))
	}

	dimension := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dimension {
			return fmt.Errorf("index build failed: embedding dimension mismatch at item %d (%d != %d)", i, len(v), dimension)
		}
		normalize(v)
	}
	s.vectors = vectors

	if err := s.saveIndex(hash); err != nil {
		s.logger.Warn("Failed to save knowledge index", zap.Error(err))
	}

	s.logger.Info("Knowledge index built",
		zap.Int("items", len(s.items)),
		zap.Int("dimension", dimension),
	)
	s.loaded = true
	return nil
}

// Retrieve embeds the query and returns the k most similar knowledge items
// ordered from most to least similar. Ties are broken by original insertion
// order. k larger than the corpus is clamped; an empty store yields an
// empty result, never an error.
func (s *KnowledgeStore) Retrieve(ctx context.Context, query string, k int) ([]models.RetrievedKnowledge, error) {
	if len(s.items) == 0 {
		return []models.RetrievedKnowledge{}, nil
	}
	if k <= 0 {
		k = s.config.TopK
	}
	if k > len(s.items) {
		k = len(s.items)
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	normalize(queryVec)

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(s.vectors))
	for i, v := range s.vectors {
		scores[i] = scored{idx: i, score: dotProduct(queryVec, v)}
	}
	// Stable sort keeps insertion order among equal scores.
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	results := make([]models.RetrievedKnowledge, 0, k)
	for i := 0; i < k; i++ {
		results = append(results, models.RetrievedKnowledge{
			Item:  s.items[scores[i].idx],
			Score: scores[i].score,
		})
	}

	s.logger.Info("Knowledge retrieved",
		zap.Int("requested", k),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// Topics returns the full item list for the knowledge listing endpoint.
func (s *KnowledgeStore) Topics() []models.KnowledgeItem {
	return s.items
}

// Size returns the number of items in the corpus.
func (s *KnowledgeStore) Size() int { return len(s.items) }

// Dimension returns the embedding dimension, 0 before Load or when empty.
func (s *KnowledgeStore) Dimension() int {
	if len(s.vectors) == 0 {
		return 0
	}
	return len(s.vectors[0])
}

// Ready reports whether Load completed successfully.
func (s *KnowledgeStore) Ready() bool { return s.loaded }

func (s *KnowledgeStore) indexPath() string {
	return filepath.Join(s.config.IndexDir, "knowledge_index.json")
}

func (s *KnowledgeStore) corpusHash() string {
	h := md5.New()
	for _, item := range s.items {
		fmt.Fprintf(h, "%d:%s:%s\n", item.ID, item.Topic, item.Content)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (s *KnowledgeStore) loadCachedIndex(hash string) bool {
	data, err := os.ReadFile(s.indexPath())
	if err != nil {
		return false
	}

	var idx indexFile
	if err := json.Unmarshal(data, &idx); err != nil {
		s.logger.Warn("Failed to parse cached index, rebuilding", zap.Error(err))
		return false
	}

	if idx.CorpusHash != hash || idx.Model != s.embedder.Model() || len(idx.Embeddings) != len(s.items) {
		return false
	}
	for _, v := range idx.Embeddings {
		if len(v) != idx.Dimension {
			return false
		}
	}

	s.vectors = idx.Embeddings
	return true
}

func (s *KnowledgeStore) saveIndex(hash string) error {
	if err := os.MkdirAll(s.config.IndexDir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	idx := indexFile{
		Model:      s.embedder.Model(),
		Dimension:  s.Dimension(),
		CorpusHash: hash,
		Embeddings: s.vectors,
	}

	data, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	if err := os.WriteFile(s.indexPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}
	return nil
}

// normalize scales v to unit length in place so dot products equal cosine
// similarity. Zero vectors are left untouched.
func normalize(v []float32) {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
}

func dotProduct(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
