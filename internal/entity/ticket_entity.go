package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TicketEstadoPendiente = "pendiente"

	TicketTipoReserva = "reserva"
	TicketTipoQueja   = "queja"
)

type Ticket struct {
	Id              uuid.UUID
	CodigoTicket    string
	NombreCliente   string
	TelefonoCliente string
	CorreoCliente   string
	FechaEntrada    *time.Time
	FechaSalida     *time.Time
	Estado          string
	Mensaje         string
	FechaCreacion   time.Time
}
