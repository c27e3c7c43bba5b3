package service

import (
	"context"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/repository/contract"
	"hotel-paraiso-be/internal/repository/specification"
)

type IRoomService interface {
	AvailableRooms(ctx context.Context) ([]dto.RoomResponse, error)
}

type roomService struct {
	rooms contract.RoomRepository
}

func NewRoomService(rooms contract.RoomRepository) IRoomService {
	return &roomService{rooms: rooms}
}

func (s *roomService) AvailableRooms(ctx context.Context) ([]dto.RoomResponse, error) {
	habitaciones, err := s.rooms.FindAll(ctx, specification.Disponible{})
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoomResponse, 0, len(habitaciones))
	for _, h := range habitaciones {
		out = append(out, dto.RoomResponse{
			Numero:     h.Numero,
			Tipo:       h.Tipo,
			Precio:     h.Precio,
			Disponible: h.Disponible,
		})
	}
	return out, nil
}
