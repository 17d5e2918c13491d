package api

import (
	"context"
	"log"

	"github.com/StayNest/booking_service/config"
	"github.com/StayNest/booking_service/infra/queue"
	"github.com/StayNest/booking_service/internal/api/rest/handlers"
	"github.com/StayNest/booking_service/internal/clients/twilio"
	"github.com/StayNest/booking_service/internal/domain"
	"github.com/StayNest/booking_service/internal/helper"
	"github.com/StayNest/booking_service/internal/repository"
	"github.com/StayNest/booking_service/internal/services"
	"github.com/StayNest/booking_service/pkg/retry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260829

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.BookingConfirmation{},
		&domain.PaymentReceipt{},
		&domain.Review{},
		&domain.Amenity{},
		&domain.ActionLog{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	smsClient := twilio.New(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFromNumber,
	)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)
	actionLogRepo := repository.NewActionLogRepository(db)

	// ---------- Services ----------
	logPolicy := retry.NewPolicy(cfg.LogRetryAttempts, cfg.LogRetryDelay)
	actionLogSvc := services.NewActionLogService(actionLogRepo, kafkaProducer, logPolicy)
	userSvc := services.NewUserService(userRepo, authHelper, actionLogSvc)
	bookingSvc := services.NewBookingService(bookingRepo, receiptRepo, actionLogSvc)
	otpSvc := services.NewOTPService(smsClient)
	reviewSvc := services.NewReviewService(reviewRepo, amenityRepo)

	// ---------- Audit ingest (external producers) ----------
	if cfg.KafkaIngestTopic != "" && cfg.KafkaGroupID != "" {
		consumer := queue.NewKafkaConsumer(
			cfg.KafkaBroker,
			cfg.KafkaIngestTopic,
			cfg.KafkaGroupID,
			actionLogSvc,
		)
		go consumer.Listen(context.Background())
		log.Println("audit ingest consumer started on", cfg.KafkaIngestTopic)
	}

	// ---------- Handlers ----------
	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(app)
	handlers.NewBookingHandler(bookingSvc).SetupRoutes(app)
	handlers.NewOTPHandler(otpSvc).SetupRoutes(app)
	handlers.NewReviewHandler(reviewSvc).SetupRoutes(app)
	handlers.NewLogHandler(actionLogSvc).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
