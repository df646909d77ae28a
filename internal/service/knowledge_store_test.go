package service

import (
	"context"
	"hash/fnv"
	"testing"

	"github.com/ashev2021/AnalyzePitch/internal/models"
	"github.com/ashev2021/AnalyzePitch/pkg/config"

	"go.uber.org/zap"
)

// stubEmbedder returns fixed vectors for known texts and a deterministic
// hash-derived vector otherwise. It records call counts so tests can assert
// when the network would have been hit.
type stubEmbedder struct {
	vectors    map[string][]float32
	dim        int
	embedCalls int
	batchCalls int
}

func newStubEmbedder(dim int) *stubEmbedder {
	return &stubEmbedder{vectors: map[string][]float32{}, dim: dim}
}

func (e *stubEmbedder) Model() string { return "stub-embedder" }

func (e *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.embedCalls++
	return e.vectorFor(text), nil
}

func (e *stubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	e.batchCalls++
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = e.vectorFor(t)
	}
	return out, nil
}

// vectorFor always returns a fresh slice: the store normalizes vectors in
// place and must not corrupt the stub's fixtures.
func (e *stubEmbedder) vectorFor(text string) []float32 {
	if v, ok := e.vectors[text]; ok {
		out := make([]float32, len(v))
		copy(out, v)
		return out
	}
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()
	out := make([]float32, e.dim)
	for i := range out {
		seed = seed*1664525 + 1013904223
		out[i] = float32(seed%1000) / 1000.0
	}
	return out
}

func testItems(n int) []models.KnowledgeItem {
	topics := []string{"valuation", "market", "traction", "metrics", "team"}
	items := make([]models.KnowledgeItem, n)
	for i := range items {
		items[i] = models.KnowledgeItem{
			ID:       i,
			Topic:    topics[i%len(topics)],
			Category: models.CategoryValuation,
			Content:  "content-" + topics[i%len(topics)],
		}
	}
	return items
}

func newTestStore(t *testing.T, items []models.KnowledgeItem, embedder Embedder) *KnowledgeStore {
	t.Helper()
	cfg := &config.RAGConfig{TopK: 5, IndexDir: t.TempDir()}
	store := NewKnowledgeStore(items, embedder, cfg, zap.NewNop())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func TestRetrieveReturnsExactlyK(t *testing.T) {
	items := testItems(5)
	store := newTestStore(t, items, newStubEmbedder(8))

	for k := 1; k <= len(items); k++ {
		results, err := store.Retrieve(context.Background(), "some query", k)
		if err != nil {
			t.Fatalf("Retrieve(k=%d) failed: %v", k, err)
		}
		if len(results) != k {
			t.Errorf("Retrieve(k=%d) returned %d results", k, len(results))
		}
	}
}

func TestRetrieveSortedByDescendingScore(t *testing.T) {
	items := testItems(5)
	store := newTestStore(t, items, newStubEmbedder(8))

	results, err := store.Retrieve(context.Background(), "query text", 5)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted: score[%d]=%f > score[%d]=%f", i, results[i].Score, i-1, results[i-1].Score)
		}
	}

	// Every result must be a member of the corpus
	ids := map[int]bool{}
	for _, item := range items {
		ids[item.ID] = true
	}
	for _, r := range results {
		if !ids[r.Item.ID] {
			t.Errorf("result item %d not in corpus", r.Item.ID)
		}
	}
}

func TestRetrieveDeterministic(t *testing.T) {
	items := testItems(5)
	store := newTestStore(t, items, newStubEmbedder(8))

	first, err := store.Retrieve(context.Background(), "fixed query", 3)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := store.Retrieve(context.Background(), "fixed query", 3)
		if err != nil {
			t.Fatalf("Retrieve failed: %v", err)
		}
		for j := range first {
			if again[j].Item.ID != first[j].Item.ID || again[j].Score != first[j].Score {
				t.Fatalf("retrieval not deterministic at result %d: %v vs %v", j, again[j], first[j])
			}
		}
	}
}

func TestRetrieveTieBreakByInsertionOrder(t *testing.T) {
	items := []models.KnowledgeItem{
		{ID: 0, Topic: "a", Content: "alpha"},
		{ID: 1, Topic: "b", Content: "beta"},
		{ID: 2, Topic: "c", Content: "gamma"},
	}
	embedder := newStubEmbedder(3)
	// beta and gamma share an identical vector, alpha is orthogonal to
	// the query so it ranks last.
	embedder.vectors["alpha"] = []float32{0, 1, 0}
	embedder.vectors["beta"] = []float32{1, 0, 0}
	embedder.vectors["gamma"] = []float32{1, 0, 0}
	embedder.vectors["the query"] = []float32{1, 0, 0}

	store := newTestStore(t, items, embedder)

	results, err := store.Retrieve(context.Background(), "the query", 3)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if results[0].Item.ID != 1 || results[1].Item.ID != 2 {
		t.Errorf("tie not broken by insertion order: got ids %d, %d", results[0].Item.ID, results[1].Item.ID)
	}
	if results[2].Item.ID != 0 {
		t.Errorf("expected orthogonal item last, got id %d", results[2].Item.ID)
	}
}

func TestRetrieveClampsK(t *testing.T) {
	items := testItems(3)
	store := newTestStore(t, items, newStubEmbedder(4))

	results, err := store.Retrieve(context.Background(), "query", 10)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("expected k clamped to corpus size 3, got %d", len(results))
	}
}

func TestRetrieveEmptyStore(t *testing.T) {
	store := newTestStore(t, nil, newStubEmbedder(4))

	results, err := store.Retrieve(context.Background(), "query", 5)
	if err != nil {
		t.Fatalf("Retrieve on empty store failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result, got %d items", len(results))
	}
}

func TestLoadDimensionMismatchFails(t *testing.T) {
	items := []models.KnowledgeItem{
		{ID: 0, Content: "first"},
		{ID: 1, Content: "second"},
	}
	embedder := newStubEmbedder(4)
	embedder.vectors["first"] = []float32{1, 0, 0, 0}
	embedder.vectors["second"] = []float32{1, 0}

	cfg := &config.RAGConfig{TopK: 5, IndexDir: t.TempDir()}
	store := NewKnowledgeStore(items, embedder, cfg, zap.NewNop())
	if err := store.Load(context.Background()); err == nil {
		t.Fatal("expected dimension mismatch error, got nil")
	}
}

func TestLoadReusesCachedIndex(t *testing.T) {
	items := testItems(4)
	embedder := newStubEmbedder(6)
	cfg := &config.RAGConfig{TopK: 5, IndexDir: t.TempDir()}

	first := NewKnowledgeStore(items, embedder, cfg, zap.NewNop())
	if err := first.Load(context.Background()); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	if embedder.batchCalls != 1 {
		t.Fatalf("expected one embedding batch, got %d", embedder.batchCalls)
	}

	second := NewKnowledgeStore(items, embedder, cfg, zap.NewNop())
	if err := second.Load(context.Background()); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if embedder.batchCalls != 1 {
		t.Errorf("cached index not reused: %d embedding batches", embedder.batchCalls)
	}
	if second.Dimension() != first.Dimension() {
		t.Errorf("cached dimension mismatch: %d != %d", second.Dimension(), first.Dimension())
	}
}
