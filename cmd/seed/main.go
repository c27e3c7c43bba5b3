package main

import (
	"log"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"hotel-paraiso-be/internal/config"
	"hotel-paraiso-be/internal/model"
	"hotel-paraiso-be/pkg/database"
)

// Seeds the room inventory the public /rooms endpoint serves. Idempotent:
// rows are matched on the unique room number.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	rooms := []model.Habitacion{
		{Id: uuid.New(), Numero: 101, Tipo: "Individual", Precio: 45, Disponible: true},
		{Id: uuid.New(), Numero: 102, Tipo: "Individual", Precio: 45, Disponible: true},
		{Id: uuid.New(), Numero: 201, Tipo: "Doble", Precio: 70, Disponible: true},
		{Id: uuid.New(), Numero: 202, Tipo: "Doble", Precio: 70, Disponible: false},
		{Id: uuid.New(), Numero: 301, Tipo: "Suite", Precio: 120, Disponible: true},
		{Id: uuid.New(), Numero: 302, Tipo: "Suite familiar", Precio: 150, Disponible: true},
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "numero"}},
		DoUpdates: clause.AssignmentColumns([]string{"tipo", "precio", "disponible"}),
	}).Create(&rooms).Error
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	color.Green("✅ Seeded %d habitaciones", len(rooms))
}
