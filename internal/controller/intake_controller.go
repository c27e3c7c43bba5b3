package controller

import (
	"github.com/gofiber/fiber/v2"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/pkg/serverutils"
	"hotel-paraiso-be/internal/service"
)

type IIntakeController interface {
	RegisterRoutes(r fiber.Router)
	SubmitContact(ctx *fiber.Ctx) error
	SubmitReservation(ctx *fiber.Ctx) error
	SubmitComplaint(ctx *fiber.Ctx) error
}

type intakeController struct {
	intakeService service.IIntakeService
}

func NewIntakeController(intakeService service.IIntakeService) IIntakeController {
	return &intakeController{
		intakeService: intakeService,
	}
}

func (c *intakeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/intake")
	h.Post("/contacto", c.SubmitContact)
	h.Post("/fecha", c.SubmitReservation)
	h.Post("/queja", c.SubmitComplaint)
}

func (c *intakeController) SubmitContact(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reply := c.intakeService.SubmitContact(ctx.Context(), &req)
	return ctx.JSON(dto.IntakeReply{Reply: reply})
}

func (c *intakeController) SubmitReservation(ctx *fiber.Ctx) error {
	var req dto.ReservationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reply, err := c.intakeService.SubmitReservation(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.IntakeReply{Reply: reply})
}

func (c *intakeController) SubmitComplaint(ctx *fiber.Ctx) error {
	var req dto.ComplaintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reply, err := c.intakeService.SubmitComplaint(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.IntakeReply{Reply: reply})
}
