package contract

import (
	"context"

	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/repository/specification"
)

type RoomRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Habitacion, error)
	Count(ctx context.Context) (int64, error)
}
