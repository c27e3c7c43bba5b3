package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-paraiso-be/internal/pkg/logger"
	"hotel-paraiso-be/pkg/corpus"
	"hotel-paraiso-be/pkg/dialog"
	"hotel-paraiso-be/pkg/embedding"
)

type stubProvider struct {
	calls int
	fail  bool
}

func (p *stubProvider) Embed(_ context.Context, text string) ([]float32, error) {
	p.calls++
	if p.fail {
		return nil, embedding.ErrModelUnavailable
	}
	return []float32{float32(len(text)), 1, 0}, nil
}

type memVectorRepo struct {
	vectors map[string][]float32
	pruned  [][]string
}

func newMemVectorRepo() *memVectorRepo {
	return &memVectorRepo{vectors: make(map[string][]float32)}
}

func (r *memVectorRepo) Get(_ context.Context, hash string) ([]float32, bool, error) {
	vec, ok := r.vectors[hash]
	return vec, ok, nil
}

func (r *memVectorRepo) Save(_ context.Context, hash string, vec []float32) error {
	r.vectors[hash] = vec
	return nil
}

func (r *memVectorRepo) PruneExcept(_ context.Context, hashes []string) error {
	r.pruned = append(r.pruned, hashes)
	keep := make(map[string]bool, len(hashes))
	for _, h := range hashes {
		keep[h] = true
	}
	for h := range r.vectors {
		if !keep[h] {
			delete(r.vectors, h)
		}
	}
	return nil
}

func newTestConsumer(t *testing.T, provider embedding.Provider, vectors *memVectorRepo) (IConsumerService, *dialog.Holder) {
	t.Helper()
	svc, _, _ := newTestCorpusService(t, seedEntries())
	holder := dialog.NewHolder()
	consumer := NewConsumerService(nil, "REINDEX_CORPUS", svc, provider, vectors,
		holder, logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log")))
	return consumer, holder
}

func TestConsumerRebuildSwapsIndex(t *testing.T) {
	provider := &stubProvider{}
	vectors := newMemVectorRepo()
	consumer, holder := newTestConsumer(t, provider, vectors)

	require.NoError(t, consumer.Rebuild(context.Background()))

	assert.Equal(t, 2, holder.Current().Len())
	assert.False(t, holder.Degraded())
	assert.Equal(t, 2, provider.calls)
	assert.Len(t, vectors.vectors, 2)
}

func TestConsumerRebuildUsesCachedVectors(t *testing.T) {
	provider := &stubProvider{}
	vectors := newMemVectorRepo()
	consumer, _ := newTestConsumer(t, provider, vectors)

	require.NoError(t, consumer.Rebuild(context.Background()))
	require.NoError(t, consumer.Rebuild(context.Background()))

	// Second pass must be answered from the cache alone.
	assert.Equal(t, 2, provider.calls)
	require.Len(t, vectors.pruned, 2)
	assert.Len(t, vectors.pruned[1], 2)
}

func TestConsumerRebuildModelUnavailable(t *testing.T) {
	provider := &stubProvider{}
	vectors := newMemVectorRepo()
	consumer, holder := newTestConsumer(t, provider, vectors)

	require.NoError(t, consumer.Rebuild(context.Background()))
	previous := holder.Current()

	provider.fail = true
	vectors.vectors = make(map[string][]float32)
	err := consumer.Rebuild(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, embedding.ErrModelUnavailable)

	// The previous snapshot keeps serving, flagged as degraded.
	assert.True(t, holder.Degraded())
	assert.Same(t, previous, holder.Current())

	provider.fail = false
	require.NoError(t, consumer.Rebuild(context.Background()))
	assert.False(t, holder.Degraded())
}

func TestConsumerRebuildWithoutVectorRepo(t *testing.T) {
	provider := &stubProvider{}
	svc, _, _ := newTestCorpusService(t, seedEntries())
	holder := dialog.NewHolder()
	consumer := NewConsumerService(nil, "REINDEX_CORPUS", svc, provider, nil,
		holder, logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log")))

	require.NoError(t, consumer.Rebuild(context.Background()))
	assert.Equal(t, 2, holder.Current().Len())
}

func TestImportThenRebuildPrunesStaleVectors(t *testing.T) {
	provider := &stubProvider{}
	vectors := newMemVectorRepo()
	svc, _, _ := newTestCorpusService(t, seedEntries())
	holder := dialog.NewHolder()
	consumer := NewConsumerService(nil, "REINDEX_CORPUS", svc, provider, vectors,
		holder, logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log")))

	require.NoError(t, consumer.Rebuild(context.Background()))
	require.Len(t, vectors.vectors, 2)

	_, err := svc.Import(context.Background(), []corpus.Entry{
		{Id: 1, Question: "¿hay estacionamiento?", Response: "Sí, sin costo.", Intent: "servicios_info"},
	})
	require.NoError(t, err)

	require.NoError(t, consumer.Rebuild(context.Background()))
	assert.Equal(t, 1, holder.Current().Len())
	assert.Len(t, vectors.vectors, 1)
}
