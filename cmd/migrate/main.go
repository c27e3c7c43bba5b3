package main

import (
	"log"

	"github.com/fatih/color"

	"hotel-paraiso-be/internal/config"
	"hotel-paraiso-be/internal/model"
	"hotel-paraiso-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	// The vector cache needs pgvector before AutoMigrate sees the column.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to create pgvector extension: %v", err)
	}

	err = db.AutoMigrate(
		&model.Ticket{},
		&model.Habitacion{},
		&model.CorpusVector{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	color.Green("✅ Migration complete: tickets, habitaciones, corpus_vectors")
}
