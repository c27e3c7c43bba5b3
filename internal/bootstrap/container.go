package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotel-paraiso-be/internal/config"
	"hotel-paraiso-be/internal/controller"
	"hotel-paraiso-be/internal/handler"
	"hotel-paraiso-be/internal/pkg/logger"
	"hotel-paraiso-be/internal/pkg/mailer"
	"hotel-paraiso-be/internal/repository/implementation"
	"hotel-paraiso-be/internal/repository/memory"
	"hotel-paraiso-be/internal/service"
	"hotel-paraiso-be/internal/websocket"
	"hotel-paraiso-be/pkg/corpus"
	"hotel-paraiso-be/pkg/dialog"
	"hotel-paraiso-be/pkg/embedding"
	pkgNats "hotel-paraiso-be/pkg/nats"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	IntakeController controller.IIntakeController
	FaqController    controller.IFaqController
	AdminController  controller.IAdminController

	// Background services (run by main.go)
	ConsumerService     service.IConsumerService
	NotificationService service.INotificationService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.HotelInbox,
	)

	// In-process event bus for reindex requests.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		log.Printf("[INFO] Using embedding provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using embedding provider: GEMINI")
	}

	// NATS for ticket events. The bot keeps working without it.
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS subscriber: %v", err)
	}

	// Redis fan-out for the admin dashboard; local-only without it.
	var rdb *redis.Client
	if opts, err := redis.ParseURL(cfg.App.RedisURL); err != nil {
		log.Printf("[WARN] Invalid Redis URL, notifications stay in-process: %v", err)
	} else {
		rdb = redis.NewClient(opts)
	}

	// Repositories
	ticketRepo := implementation.NewTicketRepository(db)
	roomRepo := implementation.NewRoomRepository(db)
	vectorRepo := implementation.NewCorpusVectorRepository(db)
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Chat.SessionTTLMinutes) * time.Minute)

	// Dialog core
	holder := dialog.NewHolder()
	matcher := dialog.NewMatcher(holder, embeddingProvider)
	router := dialog.NewRouter(sessionRepo, matcher, holder, cfg.Chat.MatchThreshold)

	// Services
	corpusStore := corpus.NewStore(cfg.Chat.CorpusFilePath)
	publisherService := service.NewPublisherService(cfg.App.ReindexTopic, pubSub)
	corpusService, err := service.NewCorpusService(corpusStore, publisherService, holder, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load corpus: %v", err)
	}
	consumerService := service.NewConsumerService(pubSub, cfg.App.ReindexTopic, corpusService, embeddingProvider, vectorRepo, holder, sysLogger)
	chatService := service.NewChatService(router, sysLogger)
	intakeService := service.NewIntakeService(ticketRepo, emailService, natsPub, sysLogger)
	roomService := service.NewRoomService(roomRepo)
	adminService := service.NewAdminService(cfg.Admin.PasswordHash, cfg.Admin.JWTSecret, ticketRepo, sysLogger)

	// Notification hub
	hubLogger := logger.NewIsolatedLogger("logs/notifications.log")
	hub := websocket.NewHub(rdb, hubLogger)
	notificationService := service.NewNotificationService(natsSub, hub, hubLogger)

	return &Container{
		ChatController:   controller.NewChatController(chatService),
		IntakeController: controller.NewIntakeController(intakeService),
		FaqController:    controller.NewFaqController(corpusService, roomService),
		AdminController:  controller.NewAdminController(adminService, corpusService),

		ConsumerService:     consumerService,
		NotificationService: notificationService,

		NotificationHandler: handler.NewNotificationHandler(hub),
		WebSocketHub:        hub,

		Logger: sysLogger,
	}
}
