package mapper

import (
	"time"

	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/model"

	"gorm.io/datatypes"
)

type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(e *entity.Ticket) *model.Ticket {
	return &model.Ticket{
		Id:              e.Id,
		CodigoTicket:    e.CodigoTicket,
		NombreCliente:   e.NombreCliente,
		TelefonoCliente: e.TelefonoCliente,
		CorreoCliente:   e.CorreoCliente,
		FechaEntrada:    toDate(e.FechaEntrada),
		FechaSalida:     toDate(e.FechaSalida),
		Estado:          e.Estado,
		Mensaje:         e.Mensaje,
		FechaCreacion:   e.FechaCreacion,
	}
}

func (m *TicketMapper) ToEntity(t *model.Ticket) *entity.Ticket {
	return &entity.Ticket{
		Id:              t.Id,
		CodigoTicket:    t.CodigoTicket,
		NombreCliente:   t.NombreCliente,
		TelefonoCliente: t.TelefonoCliente,
		CorreoCliente:   t.CorreoCliente,
		FechaEntrada:    fromDate(t.FechaEntrada),
		FechaSalida:     fromDate(t.FechaSalida),
		Estado:          t.Estado,
		Mensaje:         t.Mensaje,
		FechaCreacion:   t.FechaCreacion,
	}
}

func (m *TicketMapper) ToEntities(models []*model.Ticket) []*entity.Ticket {
	entities := make([]*entity.Ticket, len(models))
	for i, t := range models {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
