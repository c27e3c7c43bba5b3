package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/pkg/logger"
	"hotel-paraiso-be/internal/repository/contract"
	"hotel-paraiso-be/internal/repository/specification"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const adminTokenTTL = 12 * time.Hour

type IAdminService interface {
	Login(password string) (*dto.AdminLoginResponse, error)
	Stats(ctx context.Context, corpusStats *dto.StatsResponse) (*dto.StatsResponse, error)
	Tickets(ctx context.Context, estado, tipo string) ([]dto.TicketResponse, error)
	Logs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	passwordHash string
	jwtSecret    string
	tickets      contract.TicketRepository
	logger       logger.ILogger
}

func NewAdminService(passwordHash, jwtSecret string, tickets contract.TicketRepository, log logger.ILogger) IAdminService {
	return &adminService{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		tickets:      tickets,
		logger:       log,
	}
}

func (s *adminService) Login(password string) (*dto.AdminLoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.logger.Warn("AdminService", "rejected admin login attempt", nil)
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(adminTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}
	s.logger.Info("AdminService", "admin logged in", nil)
	return &dto.AdminLoginResponse{Token: token}, nil
}

// Stats enriches the corpus counters with ticket volume from the database.
func (s *adminService) Stats(ctx context.Context, corpusStats *dto.StatsResponse) (*dto.StatsResponse, error) {
	if s.tickets != nil {
		total, err := s.tickets.Count(ctx)
		if err != nil {
			s.logger.Warn("AdminService", "failed to count tickets", map[string]interface{}{"error": err.Error()})
		} else {
			corpusStats.TotalTickets = total
		}
	}
	return corpusStats, nil
}

// Tickets lists the intake queue, newest first, optionally narrowed to one
// state or to one family ("reserva" / "queja").
func (s *adminService) Tickets(ctx context.Context, estado, tipo string) ([]dto.TicketResponse, error) {
	specs := []specification.Specification{specification.NewestFirst{}}
	if estado != "" {
		specs = append(specs, specification.ByEstado{Estado: estado})
	}
	switch tipo {
	case entity.TicketTipoReserva:
		specs = append(specs, specification.ByCodigoPrefix{Prefix: "Res-"})
	case entity.TicketTipoQueja:
		specs = append(specs, specification.ByCodigoPrefix{Prefix: "QJ-"})
	}

	tickets, err := s.tickets.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		res := dto.TicketResponse{
			CodigoTicket:    t.CodigoTicket,
			NombreCliente:   t.NombreCliente,
			TelefonoCliente: t.TelefonoCliente,
			CorreoCliente:   t.CorreoCliente,
			Estado:          t.Estado,
			Mensaje:         t.Mensaje,
			FechaCreacion:   t.FechaCreacion.Format(time.RFC3339),
		}
		if t.FechaEntrada != nil {
			res.FechaEntrada = t.FechaEntrada.Format("2006-01-02")
		}
		if t.FechaSalida != nil {
			res.FechaSalida = t.FechaSalida.Format("2006-01-02")
		}
		out = append(out, res)
	}
	return out, nil
}

func (s *adminService) Logs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return s.logger.GetLogs(level, limit, offset)
}
