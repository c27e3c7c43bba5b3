package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/pkg/logger"
)

func newTestAdmin(t *testing.T, tickets *fakeTicketRepo) IAdminService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAdminService(string(hash), "test-secret", tickets,
		logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log")))
}

func TestAdminLogin(t *testing.T) {
	svc := newTestAdmin(t, &fakeTicketRepo{})

	res, err := svc.Login("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	token, err := jwt.Parse(res.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["role"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	svc := newTestAdmin(t, &fakeTicketRepo{})

	_, err := svc.Login("changeme")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminStats(t *testing.T) {
	repo := &fakeTicketRepo{created: []*entity.Ticket{{CodigoTicket: "Res-001"}}}
	svc := newTestAdmin(t, repo)

	stats, err := svc.Stats(context.Background(), &dto.StatsResponse{TotalItems: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalItems)
	assert.Equal(t, int64(1), stats.TotalTickets)
}

func TestAdminTickets(t *testing.T) {
	entrada := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeTicketRepo{created: []*entity.Ticket{
		{
			CodigoTicket:  "Res-001",
			NombreCliente: "Luis",
			Estado:        entity.TicketEstadoPendiente,
			FechaEntrada:  &entrada,
			FechaCreacion: time.Now(),
		},
		{
			CodigoTicket:  "QJ-002",
			NombreCliente: "Marta",
			Estado:        entity.TicketEstadoPendiente,
			Mensaje:       "ruido",
			FechaCreacion: time.Now(),
		},
	}}
	svc := newTestAdmin(t, repo)

	tickets, err := svc.Tickets(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "2026-09-10", tickets[0].FechaEntrada)
	assert.Empty(t, tickets[1].FechaEntrada)
	assert.Equal(t, "ruido", tickets[1].Mensaje)
}
