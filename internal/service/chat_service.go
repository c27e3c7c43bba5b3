package service

import (
	"context"

	"hotel-paraiso-be/internal/pkg/logger"
	"hotel-paraiso-be/pkg/dialog"
)

type IChatService interface {
	SendMessage(ctx context.Context, sessionID, message string) dialog.Reply
}

type chatService struct {
	router *dialog.Router
	logger logger.ILogger
}

func NewChatService(router *dialog.Router, log logger.ILogger) IChatService {
	return &chatService{
		router: router,
		logger: log,
	}
}

func (s *chatService) SendMessage(ctx context.Context, sessionID, message string) dialog.Reply {
	if sessionID == "" {
		sessionID = "default"
	}
	reply := s.router.Handle(ctx, sessionID, message)
	s.logger.Info("ChatService", "message handled", map[string]interface{}{
		"session": sessionID,
		"source":  reply.Source,
	})
	return reply
}
