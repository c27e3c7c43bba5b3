package dialog

import (
	"context"
	"testing"
)

func TestBuildIndexAlignsSequences(t *testing.T) {
	entries := testCorpus()
	ix, err := BuildIndex(context.Background(), entries, testEmbedder())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	if ix.Len() != len(entries) {
		t.Fatalf("Len = %d, want %d", ix.Len(), len(entries))
	}
	if len(ix.questions) != len(ix.responses) || len(ix.responses) != len(ix.vectors) {
		t.Errorf("sequences misaligned: questions=%d responses=%d vectors=%d",
			len(ix.questions), len(ix.responses), len(ix.vectors))
	}
	for i, e := range entries {
		if ix.questions[i] != Normalize(e.Question) {
			t.Errorf("question %d not normalized: %q", i, ix.questions[i])
		}
		if ix.responses[i] != e.Response {
			t.Errorf("response %d mismatch", i)
		}
	}
}

func TestBuildIndexPropagatesEmbedderFailure(t *testing.T) {
	_, err := BuildIndex(context.Background(), testCorpus(), failingEmbedder{})
	if err == nil {
		t.Fatal("expected error when the embedder is down")
	}
}

func TestIndexByIntentPreservesCorpusOrder(t *testing.T) {
	ix, err := BuildIndex(context.Background(), testCorpus(), testEmbedder())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	items := ix.ByIntent("checkin_info")
	if len(items) != 1 || items[0].Id != 1 {
		t.Errorf("ByIntent(checkin_info) = %#v", items)
	}
	if got := ix.ByIntent("no_such_intent"); len(got) != 0 {
		t.Errorf("unknown intent should yield no items, got %#v", got)
	}
}

func TestBestMatchEmptyIndex(t *testing.T) {
	idx, score := EmptyIndex().BestMatch([]float32{1, 0, 0})
	if idx != -1 || score != 0 {
		t.Errorf("BestMatch on empty index = (%d, %f), want (-1, 0)", idx, score)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 0, 0}, b: []float32{1, 0, 0}, want: 1},
		{name: "orthogonal", a: []float32{1, 0, 0}, b: []float32{0, 1, 0}, want: 0},
		{name: "opposite", a: []float32{1, 0, 0}, b: []float32{-1, 0, 0}, want: -1},
		{name: "zero vector", a: []float32{0, 0, 0}, b: []float32{1, 0, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosineSimilarity = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestHolderSwapIsAtomicSnapshot(t *testing.T) {
	h := NewHolder()
	if h.Current().Len() != 0 {
		t.Fatal("fresh holder must serve an empty index")
	}

	before := h.Current()
	ix, err := BuildIndex(context.Background(), testCorpus(), testEmbedder())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	h.Swap(ix)

	if before.Len() != 0 {
		t.Error("previous snapshot mutated by swap")
	}
	if h.Current().Len() != len(testCorpus()) {
		t.Errorf("new snapshot not visible, Len = %d", h.Current().Len())
	}
}
