package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/vetco-health/vetco-api/internal/config"
	"github.com/vetco-health/vetco-api/internal/email"
	"github.com/vetco-health/vetco-api/internal/handler"
	appointmentHandler "github.com/vetco-health/vetco-api/internal/handler/appointment"
	authHandler "github.com/vetco-health/vetco-api/internal/handler/auth"
	dashboardHandler "github.com/vetco-health/vetco-api/internal/handler/dashboard"
	doctorHandler "github.com/vetco-health/vetco-api/internal/handler/doctor"
	messageHandler "github.com/vetco-health/vetco-api/internal/handler/message"
	patientHandler "github.com/vetco-health/vetco-api/internal/handler/patient"
	recordHandler "github.com/vetco-health/vetco-api/internal/handler/record"
	"github.com/vetco-health/vetco-api/internal/middleware"
	"github.com/vetco-health/vetco-api/internal/repository/postgres"
	"github.com/vetco-health/vetco-api/internal/router"
	appointmentService "github.com/vetco-health/vetco-api/internal/service/appointment"
	authService "github.com/vetco-health/vetco-api/internal/service/auth"
	dashboardService "github.com/vetco-health/vetco-api/internal/service/dashboard"
	doctorService "github.com/vetco-health/vetco-api/internal/service/doctor"
	eventService "github.com/vetco-health/vetco-api/internal/service/event"
	messageService "github.com/vetco-health/vetco-api/internal/service/message"
	patientService "github.com/vetco-health/vetco-api/internal/service/patient"
	recordService "github.com/vetco-health/vetco-api/internal/service/record"
	"github.com/vetco-health/vetco-api/pkg/auth"
	"github.com/vetco-health/vetco-api/pkg/logger"
	"github.com/vetco-health/vetco-api/pkg/messaging/redis"
	"github.com/vetco-health/vetco-api/pkg/metrics"
	"github.com/vetco-health/vetco-api/pkg/worker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	recordRepo := postgres.NewRecordRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	jwtSvc, err := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize JWT service")
	}

	var emailSvc email.Service = email.Noop{}
	if cfg.SMTP.Enabled {
		emailSvc = email.NewSMTPService(cfg.SMTP)
	}

	// Services
	eventSvc := eventService.NewService(outboxRepo)
	authSvc := authService.NewService(userRepo, jwtSvc, emailSvc)
	appointmentSvc := appointmentService.NewService(appointmentRepo, eventSvc, emailSvc)
	messageSvc := messageService.NewService(messageRepo, eventSvc)
	patientSvc := patientService.NewService(patientRepo)
	recordSvc := recordService.NewService(recordRepo, eventSvc)
	doctorSvc := doctorService.NewService(doctorRepo)
	dashboardSvc := dashboardService.NewService(appointmentRepo, recordRepo)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	// Router
	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		doctorHandler.NewHandler(doctorSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		dashboardHandler.NewHandler(dashboardSvc),
		messageHandler.NewHandler(messageSvc),
		recordHandler.NewHandler(recordSvc),
		patientHandler.NewHandler(patientSvc),
		handler.NewHandler(db),
		router.Config{
			RateLimit:     100,
			RateBurst:     200,
			CORSOrigins:   cfg.CORS.Origins,
			MetricsPrefix: "vetco_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Event dispatch: outbox rows drain to the redis broker in-process.
	broker, err := redis.NewRedisBroker(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	outboxProcessor := worker.NewOutboxProcessor(
		outboxRepo,
		broker,
		worker.OutboxProcessorConfig{},
		logger.NewLogger(nil),
		metrics.NewMetrics("vetco", "api"),
	)
	go outboxProcessor.Start(ctx)

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
