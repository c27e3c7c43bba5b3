package model

import "github.com/google/uuid"

// Habitacion is the room inventory table the public /rooms endpoint reads.
type Habitacion struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero     int       `gorm:"column:numero;not null;uniqueIndex"`
	Tipo       string    `gorm:"column:tipo;type:varchar(100);not null"`
	Precio     float64   `gorm:"column:precio;not null"`
	Disponible bool      `gorm:"column:disponible;not null;default:true"`
}

func (Habitacion) TableName() string {
	return "habitaciones"
}
