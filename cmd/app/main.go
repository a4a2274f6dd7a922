package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avioline/skybook/api"
	"github.com/avioline/skybook/config"
	"github.com/avioline/skybook/internal/bootstrap"
	"github.com/avioline/skybook/internal/cache"
	"github.com/avioline/skybook/internal/kafka"
	"github.com/avioline/skybook/internal/repository"
	"github.com/avioline/skybook/internal/service/auth"
	"github.com/avioline/skybook/internal/service/booking"
	"github.com/avioline/skybook/internal/service/flights"
	"github.com/avioline/skybook/internal/service/wallet"
	"github.com/avioline/skybook/internal/ticket"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	walletRepo := repository.NewWalletRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	renderer := ticket.NewRenderer(cfg.Tickets.Dir, cfg.Tickets.BaseURL)

	authService := auth.NewAuthService(userRepo, cfg.Wallet.StartingBalanceCents)
	walletService := wallet.NewWalletService(walletRepo)
	flightService := flights.NewFlightService(flightRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		walletRepo,
		userRepo,
		renderer,
		producer,
		cfg.Kafka.BookingTopic,
		cfg.Booking.PNRMaxAttempts,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	router := api.NewRouter(
		cfg.Tickets.Dir,
		cfg.HTTP.StaticDir,
		api.NewAuthHandler(authService),
		api.NewWalletHandler(walletService),
		api.NewFlightHandler(flightService),
		api.NewBookingHandler(bookingService),
	)

	if err := bootstrap.Run(ctx, cfg.HTTP.Address, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
