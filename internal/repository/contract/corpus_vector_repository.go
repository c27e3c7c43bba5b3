package contract

import "context"

// CorpusVectorRepository caches corpus embeddings by content hash so index
// rebuilds skip the embedding API for unchanged questions.
type CorpusVectorRepository interface {
	Get(ctx context.Context, contentHash string) ([]float32, bool, error)
	Save(ctx context.Context, contentHash string, embedding []float32) error
	// PruneExcept drops cached vectors for entries that no longer exist.
	PruneExcept(ctx context.Context, contentHashes []string) error
}
