package dialog

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"hotel-paraiso-be/pkg/corpus"
)

// Embedder is the slice of the embedding capability the dialog core needs.
// pkg/embedding providers satisfy it, tests substitute deterministic fakes.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Index is an immutable snapshot of the corpus prepared for matching:
// entries, normalized questions, responses and embedding vectors, all
// index-aligned. Built once, never mutated; updates produce a new Index
// that is swapped into the Holder.
type Index struct {
	entries   []corpus.Entry
	questions []string
	responses []string
	vectors   [][]float32
}

// BuildIndex normalizes and embeds every corpus question. If the embedding
// backend fails the error (wrapping embedding.ErrModelUnavailable for
// availability problems) is returned and no partial index escapes.
func BuildIndex(ctx context.Context, entries []corpus.Entry, embedder Embedder) (*Index, error) {
	ix := &Index{
		entries:   make([]corpus.Entry, len(entries)),
		questions: make([]string, len(entries)),
		responses: make([]string, len(entries)),
		vectors:   make([][]float32, len(entries)),
	}
	copy(ix.entries, entries)

	for i, e := range entries {
		normalized := Normalize(e.Question)
		vec, err := embedder.Embed(ctx, normalized)
		if err != nil {
			return nil, fmt.Errorf("embedding corpus entry %d: %w", e.Id, err)
		}
		ix.questions[i] = normalized
		ix.responses[i] = e.Response
		ix.vectors[i] = vec
	}
	return ix, nil
}

// EmptyIndex is what the Holder serves before the first build completes.
func EmptyIndex() *Index {
	return &Index{}
}

func (ix *Index) Len() int {
	return len(ix.entries)
}

func (ix *Index) Entries() []corpus.Entry {
	return ix.entries
}

func (ix *Index) Response(i int) string {
	return ix.responses[i]
}

// ByIntent returns the entries of one menu intent, in corpus order.
func (ix *Index) ByIntent(intent string) []corpus.Entry {
	var items []corpus.Entry
	for _, e := range ix.entries {
		if e.Intent == intent {
			items = append(items, e)
		}
	}
	return items
}

// BestMatch finds the arg-max cosine similarity between the query vector and
// every corpus vector. Returns (-1, 0) on an empty index.
func (ix *Index) BestMatch(query []float32) (int, float64) {
	best := -1
	bestScore := 0.0
	for i, vec := range ix.vectors {
		score := cosineSimilarity(query, vec)
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best, bestScore
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	// Providers hand out unit vectors, but dividing by the norms keeps the
	// score correct for arbitrary input.
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Holder hands out the current Index snapshot. Readers never block and never
// observe a half-built index: rebuilds happen off to the side and land in a
// single atomic pointer swap. The degraded flag is raised when a rebuild
// failed because the embedding model was unavailable; the matcher then
// reports no matches instead of erroring.
type Holder struct {
	current  atomic.Pointer[Index]
	degraded atomic.Bool
}

func NewHolder() *Holder {
	h := &Holder{}
	h.current.Store(EmptyIndex())
	return h
}

func (h *Holder) Current() *Index {
	return h.current.Load()
}

func (h *Holder) Swap(ix *Index) {
	h.current.Store(ix)
}

func (h *Holder) SetDegraded(v bool) {
	h.degraded.Store(v)
}

func (h *Holder) Degraded() bool {
	return h.degraded.Load()
}
