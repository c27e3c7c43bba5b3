package controller

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/pkg/serverutils"
	"hotel-paraiso-be/internal/service"
	"hotel-paraiso-be/pkg/corpus"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Tickets(ctx *fiber.Ctx) error
	Items(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	UpdateItem(ctx *fiber.Ctx) error
	DeleteItem(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService  service.IAdminService
	corpusService service.ICorpusService
}

func NewAdminController(adminService service.IAdminService, corpusService service.ICorpusService) IAdminController {
	return &adminController{
		adminService:  adminService,
		corpusService: corpusService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Post("/login", c.Login)

	protected := h.Group("", serverutils.JwtMiddleware)
	protected.Get("/stats", c.Stats)
	protected.Get("/tickets", c.Tickets)
	protected.Get("/items", c.Items)
	protected.Post("/items", c.AddItem)
	protected.Put("/items/:id", c.UpdateItem)
	protected.Delete("/items/:id", c.DeleteItem)
	protected.Get("/export", c.Export)
	protected.Post("/import", c.Import)
	protected.Get("/logs", c.Logs)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	stats, err := c.adminService.Stats(ctx.Context(), c.corpusService.Stats())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(stats))
}

func (c *adminController) Tickets(ctx *fiber.Ctx) error {
	tickets, err := c.adminService.Tickets(ctx.Context(), ctx.Query("estado"), ctx.Query("tipo"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(tickets))
}

func (c *adminController) Items(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse(c.corpusService.Items()))
}

func (c *adminController) AddItem(ctx *fiber.Ctx) error {
	var entry corpus.Entry
	if err := ctx.BodyParser(&entry); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := c.corpusService.Add(ctx.Context(), entry); err != nil {
		if errors.Is(err, service.ErrDuplicateId) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.MessageResponse("item created"))
}

func (c *adminController) UpdateItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	var req dto.UpdateItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := c.corpusService.Update(ctx.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ctx.JSON(serverutils.MessageResponse("item updated"))
}

func (c *adminController) DeleteItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	if err := c.corpusService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return ctx.JSON(serverutils.MessageResponse("item deleted"))
}

func (c *adminController) Export(ctx *fiber.Ctx) error {
	return ctx.Download(c.corpusService.ExportPath(), "dataset.json")
}

// Import replaces the whole dataset from an uploaded JSON file.
func (c *adminController) Import(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable file")
	}
	defer file.Close()

	var entries []corpus.Entry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is not a valid dataset")
	}

	n, err := c.corpusService.Import(ctx.Context(), entries)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ctx.JSON(serverutils.SuccessResponse(dto.ImportResponse{Imported: n}))
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.adminService.Logs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(logs))
}
