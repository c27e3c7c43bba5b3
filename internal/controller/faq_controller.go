package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/pkg/serverutils"
	"hotel-paraiso-be/internal/service"
	"hotel-paraiso-be/pkg/dialog"
)

type IFaqController interface {
	RegisterRoutes(r fiber.Router)
	Menu(ctx *fiber.Ctx) error
	MenuIntent(ctx *fiber.Ctx) error
	Item(ctx *fiber.Ctx) error
	Rooms(ctx *fiber.Ctx) error
}

type faqController struct {
	corpusService service.ICorpusService
	roomService   service.IRoomService
}

func NewFaqController(corpusService service.ICorpusService, roomService service.IRoomService) IFaqController {
	return &faqController{
		corpusService: corpusService,
		roomService:   roomService,
	}
}

func (c *faqController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/faq")
	h.Get("/menu", c.Menu)
	h.Get("/menu/:intent", c.MenuIntent)
	h.Get("/:id", c.Item)

	r.Get("/rooms", c.Rooms)
}

func (c *faqController) Menu(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{
		"menu":    dialog.RenderMainMenu(),
		"intents": c.corpusService.IntentCounts(),
	}))
}

func (c *faqController) MenuIntent(ctx *fiber.Ctx) error {
	intent := ctx.Params("intent")
	entries := c.corpusService.ItemsByIntent(intent)

	items := make([]dto.FaqItemResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FaqItemResponse{
			Id:       e.Id,
			Question: e.Question,
		})
	}
	return ctx.JSON(serverutils.SuccessResponse(items))
}

func (c *faqController) Item(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	entry, ok := c.corpusService.ItemById(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "item not found")
	}
	return ctx.JSON(serverutils.SuccessResponse(dto.FaqItemResponse{
		Id:       entry.Id,
		Question: entry.Question,
		Answer:   entry.Response,
	}))
}

func (c *faqController) Rooms(ctx *fiber.Ctx) error {
	rooms, err := c.roomService.AvailableRooms(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(rooms))
}
