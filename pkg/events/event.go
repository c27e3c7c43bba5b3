package events

import "time"

// Event is the contract for everything published on the NATS bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// EventTicketCreated is published whenever an intake form produces a ticket.
const EventTicketCreated = "TICKET_CREATED"

type TicketCreatedEvent struct {
	Codigo     string
	Tipo       string // "reserva" | "queja"
	Nombre     string
	OccurredAt time.Time
}

func NewTicketCreated(codigo, tipo, nombre string) TicketCreatedEvent {
	return TicketCreatedEvent{
		Codigo:     codigo,
		Tipo:       tipo,
		Nombre:     nombre,
		OccurredAt: time.Now(),
	}
}

func (e TicketCreatedEvent) EventType() string {
	return EventTicketCreated
}

func (e TicketCreatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"codigo_ticket":  e.Codigo,
		"tipo":           e.Tipo,
		"nombre_cliente": e.Nombre,
		"occurred_at":    e.OccurredAt,
	}
}

func (e TicketCreatedEvent) Timestamp() time.Time {
	return e.OccurredAt
}
