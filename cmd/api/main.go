package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/tikaramspirits/tikaram-api/internal/config"
	"github.com/tikaramspirits/tikaram-api/internal/infra/database"
	"github.com/tikaramspirits/tikaram-api/internal/infra/http/handlers"
	"github.com/tikaramspirits/tikaram-api/internal/infra/http/middleware"
	"github.com/tikaramspirits/tikaram-api/internal/infra/integration/geoip"
	"github.com/tikaramspirits/tikaram-api/internal/infra/mail"
	"github.com/tikaramspirits/tikaram-api/internal/infra/queue"
	"github.com/tikaramspirits/tikaram-api/internal/usecase"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	runMigrations(cfg)

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	reviewRepo := database.NewReviewRepository(db)
	storeRepo := database.NewStoreRepository(db)
	eventRepo := database.NewEventRepository(db)
	inquiryRepo := database.NewInquiryRepository(db)
	trafficRepo := database.NewTrafficLogRepository(db)
	recipeRepo := database.NewRecipeRepository(db)

	// Outbound services
	mailSender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	geoClient := geoip.NewClient(cfg.GeoAPIURL)

	// Verification emails go through RabbitMQ when it is configured, and
	// straight over SMTP when it is not.
	var producer usecase.LeadEventProducerInterface
	var rabbitMQ *queue.RabbitMQ
	if cfg.AMQPURL != "" {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.WithError(err).Fatal("Could not connect to RabbitMQ")
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	}

	// Use cases
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo, producer, mailSender, cfg.SiteURL)
	verifyLeadUC := usecase.NewVerifyLeadUseCase(leadRepo, cfg.SiteURL)
	submitReviewUC := usecase.NewSubmitReviewUseCase(reviewRepo)
	trackVisitUC := usecase.NewTrackVisitUseCase(geoClient, trafficRepo)

	// Handlers
	leadHandler := handlers.NewLeadHandler(captureLeadUC, verifyLeadUC)
	reviewHandler := handlers.NewReviewHandler(submitReviewUC, reviewRepo)
	storeHandler := handlers.NewStoreHandler(storeRepo)
	eventHandler := handlers.NewEventHandler(eventRepo)
	inquiryHandler := handlers.NewInquiryHandler(inquiryRepo)
	recipeHandler := handlers.NewRecipeHandler(recipeRepo)
	trackingHandler := handlers.NewTrackingHandler(trackVisitUC)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, cfg.SMTPHost, cfg.GeoAPIURL)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Session-ID"},
	}))

	r.Post("/leads", leadHandler.Capture)
	r.Get("/leads/verify", leadHandler.Verify)
	r.Post("/reviews", reviewHandler.Submit)
	r.Get("/reviews", reviewHandler.List)
	r.Get("/stores", storeHandler.List)
	r.Get("/events", eventHandler.List)
	r.Get("/recipes", recipeHandler.List)
	r.Post("/inquiries", inquiryHandler.Submit)
	r.Post("/track-location", trackingHandler.Handle)
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("Tikaram site API listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

func runMigrations(cfg *config.Config) {
	dbURL := cfg.DatabaseURL
	if strings.Contains(dbURL, "?") {
		dbURL += "&x-migrations-table=tikaram_schema_migrations"
	} else {
		dbURL += "?x-migrations-table=tikaram_schema_migrations"
	}

	m, err := migrate.New(cfg.MigrationsPath, dbURL)
	if err != nil {
		log.WithError(err).Fatal("Could not create migration instance")
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.WithError(err).Fatal("Could not apply migrations")
	}
	log.Info("Database migrations applied")
}
