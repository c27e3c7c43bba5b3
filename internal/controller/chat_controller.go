package controller

import (
	"github.com/gofiber/fiber/v2"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/pkg/serverutils"
	"hotel-paraiso-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.SendMessage)
}

// SendMessage answers one conversation turn. The body is the raw reply the
// widget renders, not the standard envelope; the widget predates it.
func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reply := c.chatService.SendMessage(ctx.Context(), req.Session, req.Message)
	return ctx.JSON(reply)
}
