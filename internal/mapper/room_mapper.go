package mapper

import (
	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/model"
)

type RoomMapper struct{}

func NewRoomMapper() *RoomMapper {
	return &RoomMapper{}
}

func (m *RoomMapper) ToEntity(h *model.Habitacion) *entity.Habitacion {
	return &entity.Habitacion{
		Id:         h.Id,
		Numero:     h.Numero,
		Tipo:       h.Tipo,
		Precio:     h.Precio,
		Disponible: h.Disponible,
	}
}

func (m *RoomMapper) ToEntities(models []*model.Habitacion) []*entity.Habitacion {
	entities := make([]*entity.Habitacion, len(models))
	for i, h := range models {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
