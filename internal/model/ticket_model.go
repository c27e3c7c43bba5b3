package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Ticket mirrors the existing "tickets" table: both reservation requests and
// complaints land here, distinguished by their code prefix (Res- / QJ-).
type Ticket struct {
	Id              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CodigoTicket    string          `gorm:"column:codigo_ticket;type:varchar(20);not null;uniqueIndex"`
	NombreCliente   string          `gorm:"column:nombre_cliente;type:varchar(255);not null"`
	TelefonoCliente string          `gorm:"column:telefono_cliente;type:varchar(50)"`
	CorreoCliente   string          `gorm:"column:correo_cliente;type:varchar(255)"`
	FechaEntrada    *datatypes.Date `gorm:"column:fecha_entrada"`
	FechaSalida     *datatypes.Date `gorm:"column:fecha_salida"`
	Estado          string          `gorm:"column:estado;type:varchar(30);not null"`
	Mensaje         string          `gorm:"column:mensaje;type:text"`
	FechaCreacion   time.Time       `gorm:"column:fecha_creacion;autoCreateTime"`
}

func (Ticket) TableName() string {
	return "tickets"
}
