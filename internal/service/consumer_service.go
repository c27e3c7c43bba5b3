package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"hotel-paraiso-be/internal/pkg/logger"
	"hotel-paraiso-be/internal/repository/contract"
	"hotel-paraiso-be/pkg/dialog"
	"hotel-paraiso-be/pkg/embedding"
)

// IConsumerService rebuilds the semantic index. Rebuild embeds every corpus
// question (reusing cached vectors where the content hash matches) and swaps
// the result in atomically; Consume runs rebuilds off the reindex topic.
type IConsumerService interface {
	Consume(ctx context.Context) error
	Rebuild(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topic      string
	corpus     ICorpusService
	provider   embedding.Provider
	vectors    contract.CorpusVectorRepository
	holder     *dialog.Holder
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topic string,
	corpusService ICorpusService,
	provider embedding.Provider,
	vectors contract.CorpusVectorRepository,
	holder *dialog.Holder,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topic:      topic,
		corpus:     corpusService,
		provider:   provider,
		vectors:    vectors,
		holder:     holder,
		logger:     log,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", s.topic, err)
	}
	s.logger.Info("ConsumerService", "listening for reindex requests", map[string]interface{}{"topic": s.topic})

	for msg := range messages {
		if err := s.Rebuild(ctx); err != nil {
			s.logger.Error("ConsumerService", "reindex failed", map[string]interface{}{"error": err.Error()})
		}
		msg.Ack()
	}
	return nil
}

func (s *consumerService) Rebuild(ctx context.Context) error {
	entries := s.corpus.Items()
	cache := &cachingEmbedder{
		provider: s.provider,
		vectors:  s.vectors,
		logger:   s.logger,
	}

	index, err := dialog.BuildIndex(ctx, entries, cache)
	if err != nil {
		// Keep serving the previous snapshot but flag the matcher as
		// degraded so conversations fall back to the contact form.
		s.holder.SetDegraded(true)
		if errors.Is(err, embedding.ErrModelUnavailable) {
			s.logger.Error("ConsumerService", "embedding model unavailable, semantic matching degraded", map[string]interface{}{"error": err.Error()})
		}
		return fmt.Errorf("build index: %w", err)
	}

	s.holder.Swap(index)
	s.holder.SetDegraded(false)
	s.logger.Info("ConsumerService", "semantic index rebuilt", map[string]interface{}{
		"items":  index.Len(),
		"cached": cache.hits,
	})

	if s.vectors != nil && len(cache.hashes) > 0 {
		if err := s.vectors.PruneExcept(ctx, cache.hashes); err != nil {
			s.logger.Warn("ConsumerService", "failed to prune stale cached vectors", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

// cachingEmbedder fronts the embedding provider with the pgvector cache,
// keyed by the md5 of the already-normalized question text.
type cachingEmbedder struct {
	provider embedding.Provider
	vectors  contract.CorpusVectorRepository
	logger   logger.ILogger
	hashes   []string
	hits     int
}

func (c *cachingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	sum := md5.Sum([]byte(text))
	hash := hex.EncodeToString(sum[:])
	c.hashes = append(c.hashes, hash)

	if c.vectors != nil {
		vec, ok, err := c.vectors.Get(ctx, hash)
		if err != nil {
			c.logger.Warn("ConsumerService", "vector cache lookup failed", map[string]interface{}{"error": err.Error()})
		} else if ok {
			c.hits++
			return vec, nil
		}
	}

	vec, err := c.provider.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if c.vectors != nil {
		if err := c.vectors.Save(ctx, hash, vec); err != nil {
			c.logger.Warn("ConsumerService", "failed to cache vector", map[string]interface{}{"error": err.Error()})
		}
	}
	return vec, nil
}
