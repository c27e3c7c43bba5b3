package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// CorpusVector caches corpus question embeddings keyed by a hash of the
// normalized text, so a reindex only re-embeds entries whose text changed.
type CorpusVector struct {
	ContentHash string          `gorm:"column:content_hash;type:varchar(32);primaryKey"`
	Embedding   pgvector.Vector `gorm:"column:embedding;type:vector(768)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}

func (CorpusVector) TableName() string {
	return "corpus_vectors"
}
