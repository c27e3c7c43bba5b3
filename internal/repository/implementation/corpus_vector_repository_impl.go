package implementation

import (
	"context"
	"errors"

	"hotel-paraiso-be/internal/model"
	"hotel-paraiso-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CorpusVectorRepositoryImpl struct {
	db *gorm.DB
}

func NewCorpusVectorRepository(db *gorm.DB) contract.CorpusVectorRepository {
	return &CorpusVectorRepositoryImpl{db: db}
}

func (r *CorpusVectorRepositoryImpl) Get(ctx context.Context, contentHash string) ([]float32, bool, error) {
	var m model.CorpusVector
	err := r.db.WithContext(ctx).First(&m, "content_hash = ?", contentHash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return m.Embedding.Slice(), true, nil
}

func (r *CorpusVectorRepositoryImpl) Save(ctx context.Context, contentHash string, embedding []float32) error {
	m := model.CorpusVector{
		ContentHash: contentHash,
		Embedding:   pgvector.NewVector(embedding),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding"}),
		}).
		Create(&m).Error
}

func (r *CorpusVectorRepositoryImpl) PruneExcept(ctx context.Context, contentHashes []string) error {
	if len(contentHashes) == 0 {
		return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.CorpusVector{}).Error
	}
	return r.db.WithContext(ctx).
		Where("content_hash NOT IN ?", contentHashes).
		Delete(&model.CorpusVector{}).Error
}
