package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/pkg/logger"
	"hotel-paraiso-be/internal/repository/specification"
)

type fakeTicketRepo struct {
	created     []*entity.Ticket
	lastCodeErr error
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) error {
	r.created = append(r.created, ticket)
	return nil
}

func (r *fakeTicketRepo) LastCode(_ context.Context) (string, error) {
	if r.lastCodeErr != nil {
		return "", r.lastCodeErr
	}
	if len(r.created) == 0 {
		return "", nil
	}
	return r.created[len(r.created)-1].CodigoTicket, nil
}

func (r *fakeTicketRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Ticket, error) {
	return r.created, nil
}

func (r *fakeTicketRepo) Count(context.Context) (int64, error) {
	return int64(len(r.created)), nil
}

type fakeMailer struct {
	contactErr    error
	contacts      int
	confirmations []string
}

func (m *fakeMailer) SendContactMessage(_, _, _ string) error {
	m.contacts++
	return m.contactErr
}

func (m *fakeMailer) SendTicketConfirmation(_, codigo, _ string) error {
	m.confirmations = append(m.confirmations, codigo)
	return nil
}

func newTestIntake(t *testing.T) (IIntakeService, *fakeTicketRepo, *fakeMailer) {
	t.Helper()
	repo := &fakeTicketRepo{}
	mail := &fakeMailer{}
	svc := NewIntakeService(repo, mail, nil, logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log")))
	return svc, repo, mail
}

func TestSubmitContact(t *testing.T) {
	svc, _, mail := newTestIntake(t)

	reply := svc.SubmitContact(context.Background(), &dto.ContactRequest{
		Nombre: "Ana", Correo: "ana@example.com", Mensaje: "hola",
	})
	assert.Equal(t, "✅ Gracias por tu mensaje. El personal del hotel te contactará pronto.", reply)
	assert.Equal(t, 1, mail.contacts)
}

func TestSubmitContactMailerFailure(t *testing.T) {
	svc, _, mail := newTestIntake(t)
	mail.contactErr = errors.New("smtp down")

	reply := svc.SubmitContact(context.Background(), &dto.ContactRequest{
		Nombre: "Ana", Correo: "ana@example.com", Mensaje: "hola",
	})
	assert.Equal(t, "❌ Hubo un problema al enviar tu mensaje. Intenta más tarde.", reply)
}

func TestSubmitReservation(t *testing.T) {
	svc, repo, mail := newTestIntake(t)

	reply, err := svc.SubmitReservation(context.Background(), &dto.ReservationRequest{
		Nombre:      "Luis",
		Correo:      "luis@example.com",
		Numero:      "600123123",
		FechaInicio: "2026-09-10",
		FechaFinal:  "2026-09-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "📅 Tu solicitud de reserva fue enviada correctamente. El personal del hotel te contactará pronto.", reply)

	require.Len(t, repo.created, 1)
	ticket := repo.created[0]
	assert.Equal(t, "Res-001", ticket.CodigoTicket)
	assert.Equal(t, entity.TicketEstadoPendiente, ticket.Estado)
	require.NotNil(t, ticket.FechaEntrada)
	assert.Equal(t, "2026-09-10", ticket.FechaEntrada.Format("2006-01-02"))
	assert.Equal(t, []string{"Res-001"}, mail.confirmations)
}

func TestSubmitReservationBadDate(t *testing.T) {
	svc, repo, _ := newTestIntake(t)

	_, err := svc.SubmitReservation(context.Background(), &dto.ReservationRequest{
		Nombre:      "Luis",
		Correo:      "luis@example.com",
		Numero:      "600123123",
		FechaInicio: "10/09/2026",
		FechaFinal:  "2026-09-12",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestSubmitComplaint(t *testing.T) {
	svc, repo, _ := newTestIntake(t)

	reply, err := svc.SubmitComplaint(context.Background(), &dto.ComplaintRequest{
		Nombre:   "Marta",
		Correo:   "marta@example.com",
		Telefono: "600321321",
		Motivo:   "ruido en el pasillo",
	})
	require.NoError(t, err)
	assert.Equal(t, "✔ Gracias Marta, tu queja fue registrada.", reply)

	require.Len(t, repo.created, 1)
	ticket := repo.created[0]
	assert.Equal(t, "QJ-001", ticket.CodigoTicket)
	assert.Equal(t, "ruido en el pasillo", ticket.Mensaje)
	assert.Nil(t, ticket.FechaEntrada)
}

// Reservations and complaints share one numeric sequence.
func TestTicketCodesShareOneSequence(t *testing.T) {
	svc, repo, _ := newTestIntake(t)

	_, err := svc.SubmitReservation(context.Background(), &dto.ReservationRequest{
		Nombre: "a", Correo: "a@example.com", Numero: "1",
		FechaInicio: "2026-09-10", FechaFinal: "2026-09-11",
	})
	require.NoError(t, err)

	_, err = svc.SubmitComplaint(context.Background(), &dto.ComplaintRequest{
		Nombre: "b", Correo: "b@example.com", Telefono: "2", Motivo: "x",
	})
	require.NoError(t, err)

	_, err = svc.SubmitReservation(context.Background(), &dto.ReservationRequest{
		Nombre: "c", Correo: "c@example.com", Numero: "3",
		FechaInicio: "2026-09-10", FechaFinal: "2026-09-11",
	})
	require.NoError(t, err)

	codes := []string{repo.created[0].CodigoTicket, repo.created[1].CodigoTicket, repo.created[2].CodigoTicket}
	assert.Equal(t, []string{"Res-001", "QJ-002", "Res-003"}, codes)
}

func TestTicketCodeLookupFailure(t *testing.T) {
	svc, repo, _ := newTestIntake(t)
	repo.lastCodeErr = errors.New("db down")

	_, err := svc.SubmitComplaint(context.Background(), &dto.ComplaintRequest{
		Nombre: "b", Correo: "b@example.com", Telefono: "2", Motivo: "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "QJ-000", repo.created[0].CodigoTicket)
}
