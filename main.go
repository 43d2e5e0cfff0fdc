package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelbooking/config"
	"hotelbooking/jobs"
	"hotelbooking/models"
	"hotelbooking/routes"
	"hotelbooking/services"
	"hotelbooking/services/logger"
	"hotelbooking/services/notification"
	"hotelbooking/utils"
)

// @title Hotel Booking Admin API
// @version 1.0
// @description Quản lý đặt phòng khách sạn
// @BasePath /
func main() {
	config.LoadEnv()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	out, closeLog, err := utils.OpenLogFile(cfg.Log.Dir, time.Now())
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()
	appLogger := logger.New(out, logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, AddSource: cfg.Log.AddSource})

	loc, err := cfg.Booking.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}
	weekStart, err := cfg.Booking.WeekStartDay()
	if err != nil {
		log.Fatalf("Failed to parse week start: %v", err)
	}
	models.DefaultLocation = loc

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, m, c, err := config.InitApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	var bookings services.BookingStore = services.NewGormBookingStore(config.DB)
	if cfg.Kafka.Enabled {
		publisher := services.NewKafkaPublisher(services.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
		defer publisher.Close()
		bookings = services.NewPublishingBookingStore(bookings, publisher, appLogger)
	}
	var search *services.IndexingBookingStore
	if cfg.Elastic.Enabled {
		indexer, err := services.NewElasticIndexer(services.ElasticConfig{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
			Index:     cfg.Elastic.Index,
		})
		if err != nil {
			log.Fatalf("Failed to initialize search index: %v", err)
		}
		search = services.NewIndexingBookingStore(bookings, indexer, appLogger)
		bookings = search
	}
	cache := services.NewRedisCache(config.RedisClient)
	cachedBookings := services.NewCachedBookingStore(bookings, cache, appLogger)

	customers := services.NewGormCustomerStore(config.DB)
	pages := services.NewPageRegistry(services.PageDeps{
		Bookings:  cachedBookings,
		Customers: customers,
		Notifier:  notification.NewMelodyService(m),
		Logger:    appLogger,
		Location:  loc,
		WeekStart: weekStart,
	}, cache, cfg.Booking.PageIdleTTL)

	tokens := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	auth := services.NewAuthService(services.NewGormStaffStore(config.DB), tokens)

	cronDeps := jobs.Deps{Pages: pages, Cache: cachedBookings, Logger: appLogger}
	if search != nil {
		cronDeps.Search = search
	}
	if err := jobs.InitCronJobs(c, cronDeps); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, routes.Deps{
		Pages:     pages,
		Customers: customers,
		Auth:      auth,
		Tokens:    tokens,
		Redis:     config.RedisClient,
	})

	srv := &http.Server{Addr: ":" + cfg.App.Port, Handler: router}
	go func() {
		appLogger.Info("Server starting on port %s...", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown: %v", err)
	}
	m.Close()
}
