package handler

import (
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"

	ws "hotel-paraiso-be/internal/websocket"
)

// NotificationHandler exposes the admin notification stream over websocket.
type NotificationHandler struct {
	hub *ws.Hub
}

func NewNotificationHandler(hub *ws.Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	r.Use("/admin/ws", func(ctx *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	r.Get("/admin/ws", fiberws.New(func(conn *fiberws.Conn) {
		client := ws.NewClient(h.hub, conn)
		client.Register()
		go client.WritePump()
		client.ReadPump()
	}))
}
