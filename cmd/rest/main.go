package main

import (
	"context"
	"log"

	"hotel-paraiso-be/internal/bootstrap"
	"hotel-paraiso-be/internal/config"
	"hotel-paraiso-be/internal/server"
	"hotel-paraiso-be/internal/tracer"
	"hotel-paraiso-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background workers: reindex consumer and the notification hub.
	go func() {
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()
	go container.WebSocketHub.Run(context.Background())
	if err := container.NotificationService.Start(); err != nil {
		log.Printf("Ticket notifications unavailable: %v", err)
	}

	// Build the first index before taking traffic. A failure leaves the
	// bot running degraded (menus and forms only) instead of crashing.
	if err := container.ConsumerService.Rebuild(context.Background()); err != nil {
		log.Printf("Initial index build failed, running degraded: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
