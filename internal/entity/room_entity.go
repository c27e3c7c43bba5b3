package entity

import "github.com/google/uuid"

type Habitacion struct {
	Id         uuid.UUID
	Numero     int
	Tipo       string
	Precio     float64
	Disponible bool
}
