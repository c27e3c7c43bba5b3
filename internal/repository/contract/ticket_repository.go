package contract

import (
	"context"

	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/repository/specification"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	// LastCode returns the most recently created ticket code ("" when the
	// table is empty). Both ticket families share one counter.
	LastCode(ctx context.Context) (string, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ticket, error)
	Count(ctx context.Context) (int64, error)
}
