package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// IEmailService relays guest messages to the hotel inbox and sends ticket
// confirmations. Both are fire-and-forget side effects: callers only get a
// success/failure signal, never a hard dependency on delivery.
type IEmailService interface {
	SendContactMessage(nombre, correo, mensaje string) error
	SendTicketConfirmation(toEmail, codigo, descripcion string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	hotelInbox  string
}

func NewEmailService(host string, port int, username, password, senderName, hotelInbox string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		hotelInbox:  hotelInbox,
	}
}

func (s *emailService) SendContactMessage(nombre, correo, mensaje string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", s.hotelInbox)
	m.SetHeader("Subject", fmt.Sprintf("Nuevo mensaje de contacto - %s", nombre))

	body := fmt.Sprintf(`
		<html>
		  <body>
			<h2>Nuevo mensaje de contacto</h2>
			<p><b>Nombre:</b> %s</p>
			<p><b>Correo:</b> %s</p>
			<p><b>Mensaje:</b></p>
			<p>%s</p>
		  </body>
		</html>
	`, nombre, correo, mensaje)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendTicketConfirmation(toEmail, codigo, descripcion string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Hotel Paraíso Azul - Ticket %s", codigo))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hemos recibido tu solicitud</h2>
			<p>Tu número de ticket es:</p>
			<h1 style="color: #2196F3;">%s</h1>
			<p>%s</p>
			<p>El personal del hotel te contactará pronto.</p>
		</div>
	`, codigo, descripcion)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
