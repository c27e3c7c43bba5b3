package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IPublisherService requests a corpus reindex on the in-process bus. The
// consumer service does the actual embedding work in the background while
// readers keep the previous index snapshot.
type IPublisherService interface {
	PublishReindex(ctx context.Context) error
}

type publisherService struct {
	topic     string
	publisher message.Publisher
}

func NewPublisherService(topic string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topic:     topic,
		publisher: publisher,
	}
}

func (s *publisherService) PublishReindex(_ context.Context) error {
	msg := message.NewMessage(watermill.NewUUID(), []byte("{}"))
	return s.publisher.Publish(s.topic, msg)
}
