package dto

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type TicketResponse struct {
	CodigoTicket    string `json:"codigo_ticket"`
	NombreCliente   string `json:"nombre_cliente"`
	TelefonoCliente string `json:"telefono_cliente"`
	CorreoCliente   string `json:"correo_cliente"`
	FechaEntrada    string `json:"fecha_entrada,omitempty"`
	FechaSalida     string `json:"fecha_salida,omitempty"`
	Estado          string `json:"estado"`
	Mensaje         string `json:"mensaje,omitempty"`
	FechaCreacion   string `json:"fecha_creacion"`
}

type RoomResponse struct {
	Numero     int     `json:"numero"`
	Tipo       string  `json:"tipo"`
	Precio     float64 `json:"precio"`
	Disponible bool    `json:"disponible"`
}
