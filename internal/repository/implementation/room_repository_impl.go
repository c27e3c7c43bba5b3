package implementation

import (
	"context"

	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/mapper"
	"hotel-paraiso-be/internal/model"
	"hotel-paraiso-be/internal/repository/contract"
	"hotel-paraiso-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RoomRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomMapper
}

func NewRoomRepository(db *gorm.DB) contract.RoomRepository {
	return &RoomRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomMapper(),
	}
}

func (r *RoomRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Habitacion, error) {
	var models []*model.Habitacion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("numero ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RoomRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Habitacion{}).Count(&count).Error
	return count, err
}
