package service

import (
	"context"

	"hotel-paraiso-be/internal/pkg/logger"
	"hotel-paraiso-be/internal/websocket"
	"hotel-paraiso-be/pkg/events"
	"hotel-paraiso-be/pkg/nats"
)

// INotificationService relays ticket events from the NATS stream to the
// admin websocket hub.
type INotificationService interface {
	Start() error
}

type notificationService struct {
	subscriber *nats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewNotificationService(subscriber *nats.Subscriber, hub *websocket.Hub, log logger.ILogger) INotificationService {
	return &notificationService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (s *notificationService) Start() error {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "NATS unavailable, ticket notifications disabled", nil)
		return nil
	}
	subject := "events." + events.EventTicketCreated
	return s.subscriber.Subscribe(subject, "ticket-notifier", func(ctx context.Context, _ string, payload map[string]interface{}) error {
		return s.hub.Broadcast(ctx, map[string]interface{}{
			"type": events.EventTicketCreated,
			"data": payload,
		})
	})
}
