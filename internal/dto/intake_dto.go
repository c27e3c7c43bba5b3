package dto

// ContactRequest carries the direct-contact form the chatbot hands off to.
type ContactRequest struct {
	Nombre  string `json:"nombre" validate:"required"`
	Correo  string `json:"correo" validate:"required,email"`
	Mensaje string `json:"mensaje" validate:"required"`
}

// ReservationRequest is the booking form (formulario_fecha).
type ReservationRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Correo      string `json:"correo" validate:"required,email"`
	Numero      string `json:"numero" validate:"required"`
	FechaInicio string `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFinal  string `json:"fecha_final" validate:"required,datetime=2006-01-02"`
}

// ComplaintRequest is the complaint form (formulario_queja).
type ComplaintRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Correo   string `json:"correo" validate:"required,email"`
	Telefono string `json:"telefono" validate:"required"`
	Motivo   string `json:"motivo" validate:"required"`
}

// IntakeReply is the human-readable confirmation returned to the widget.
type IntakeReply struct {
	Reply string `json:"reply"`
}
