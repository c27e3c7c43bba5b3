package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/pkg/logger"
	"hotel-paraiso-be/internal/pkg/mailer"
	"hotel-paraiso-be/internal/repository/contract"
	"hotel-paraiso-be/pkg/events"
	"hotel-paraiso-be/pkg/nats"
)

const (
	reservationCodePrefix = "Res"
	complaintCodePrefix   = "QJ"

	contactSentReply   = "✅ Gracias por tu mensaje. El personal del hotel te contactará pronto."
	contactFailedReply = "❌ Hubo un problema al enviar tu mensaje. Intenta más tarde."
	reservationReply   = "📅 Tu solicitud de reserva fue enviada correctamente. El personal del hotel te contactará pronto."
)

// IIntakeService handles the three forms the conversation can hand off to.
// Each method returns the confirmation line the chat widget shows verbatim.
type IIntakeService interface {
	SubmitContact(ctx context.Context, req *dto.ContactRequest) string
	SubmitReservation(ctx context.Context, req *dto.ReservationRequest) (string, error)
	SubmitComplaint(ctx context.Context, req *dto.ComplaintRequest) (string, error)
}

type intakeService struct {
	tickets   contract.TicketRepository
	mail      mailer.IEmailService
	publisher *nats.Publisher
	logger    logger.ILogger
}

func NewIntakeService(tickets contract.TicketRepository, mail mailer.IEmailService, publisher *nats.Publisher, log logger.ILogger) IIntakeService {
	return &intakeService{
		tickets:   tickets,
		mail:      mail,
		publisher: publisher,
		logger:    log,
	}
}

func (s *intakeService) SubmitContact(_ context.Context, req *dto.ContactRequest) string {
	if err := s.mail.SendContactMessage(req.Nombre, req.Correo, req.Mensaje); err != nil {
		s.logger.Error("IntakeService", "failed to forward contact message", map[string]interface{}{
			"correo": req.Correo,
			"error":  err.Error(),
		})
		return contactFailedReply
	}
	s.logger.Info("IntakeService", "contact message forwarded", map[string]interface{}{"correo": req.Correo})
	return contactSentReply
}

func (s *intakeService) SubmitReservation(ctx context.Context, req *dto.ReservationRequest) (string, error) {
	entrada, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		return "", fmt.Errorf("parse fecha_inicio: %w", err)
	}
	salida, err := time.Parse("2006-01-02", req.FechaFinal)
	if err != nil {
		return "", fmt.Errorf("parse fecha_final: %w", err)
	}

	codigo := s.nextTicketCode(ctx, reservationCodePrefix)
	ticket := &entity.Ticket{
		Id:              uuid.New(),
		CodigoTicket:    codigo,
		NombreCliente:   req.Nombre,
		TelefonoCliente: req.Numero,
		CorreoCliente:   req.Correo,
		FechaEntrada:    &entrada,
		FechaSalida:     &salida,
		Estado:          entity.TicketEstadoPendiente,
		FechaCreacion:   time.Now(),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return "", fmt.Errorf("create reservation ticket: %w", err)
	}

	s.afterTicketCreated(ctx, ticket, entity.TicketTipoReserva,
		fmt.Sprintf("solicitud de reserva del %s al %s", req.FechaInicio, req.FechaFinal))
	return reservationReply, nil
}

func (s *intakeService) SubmitComplaint(ctx context.Context, req *dto.ComplaintRequest) (string, error) {
	codigo := s.nextTicketCode(ctx, complaintCodePrefix)
	ticket := &entity.Ticket{
		Id:              uuid.New(),
		CodigoTicket:    codigo,
		NombreCliente:   req.Nombre,
		TelefonoCliente: req.Telefono,
		CorreoCliente:   req.Correo,
		Estado:          entity.TicketEstadoPendiente,
		Mensaje:         req.Motivo,
		FechaCreacion:   time.Now(),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return "", fmt.Errorf("create complaint ticket: %w", err)
	}

	s.afterTicketCreated(ctx, ticket, entity.TicketTipoQueja, "queja registrada")
	return fmt.Sprintf("✔ Gracias %s, tu queja fue registrada.", req.Nombre), nil
}

// nextTicketCode continues the shared Res-NNN / QJ-NNN sequence from the
// most recent ticket. A lookup failure restarts the numbering rather than
// blocking the form.
func (s *intakeService) nextTicketCode(ctx context.Context, prefix string) string {
	last, err := s.tickets.LastCode(ctx)
	if err != nil {
		s.logger.Warn("IntakeService", "failed to read last ticket code", map[string]interface{}{"error": err.Error()})
		return fmt.Sprintf("%s-000", prefix)
	}
	next := 1
	if parts := strings.SplitN(last, "-", 2); len(parts) == 2 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, next)
}

func (s *intakeService) afterTicketCreated(ctx context.Context, ticket *entity.Ticket, tipo, descripcion string) {
	s.logger.Info("IntakeService", "ticket created", map[string]interface{}{
		"codigo": ticket.CodigoTicket,
		"tipo":   tipo,
	})

	if s.publisher != nil {
		event := events.NewTicketCreated(ticket.CodigoTicket, tipo, ticket.NombreCliente)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("IntakeService", "failed to publish ticket event", map[string]interface{}{
				"codigo": ticket.CodigoTicket,
				"error":  err.Error(),
			})
		}
	}

	if err := s.mail.SendTicketConfirmation(ticket.CorreoCliente, ticket.CodigoTicket, descripcion); err != nil {
		s.logger.Warn("IntakeService", "failed to send ticket confirmation email", map[string]interface{}{
			"codigo": ticket.CodigoTicket,
			"error":  err.Error(),
		})
	}
}
