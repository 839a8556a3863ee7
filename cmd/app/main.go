package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"littlelemon/cmd"
	"littlelemon/internal/adapters/out/kafka"
	"littlelemon/internal/adapters/out/postgres/migrations"
	"littlelemon/internal/adapters/out/redis/menucache"
	"littlelemon/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const serviceName = "littlelemon"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger()
	configs := getConfigs()

	if err := migrations.Up(configs.DSN()); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	menuCache, closeCache := newMenuCache(ctx, configs, logger)
	defer closeCache()

	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, menuCache, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter(ctx)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}
	startWebServer(ctx, e, configs.HTTPPort, logger)
}

func newLogger() *slog.Logger {
	hostname, _ := os.Hostname()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("service", serviceName, "hostname", hostname)
	slog.SetDefault(logger)
	return logger
}

func getConfigs() cmd.Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		MenuCacheTTL:           durationEnv("MENU_CACHE_TTL", menucache.DefaultTTL),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOr("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		OutboxRelaySchedule:    os.Getenv("OUTBOX_RELAY_SCHEDULE"),
		OutboxRelayBatch:       intEnv("OUTBOX_RELAY_BATCH", 0),
	}
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return n
}

// newMenuCache returns a nil cache when REDIS_ADDR is unset or unreachable.
func newMenuCache(ctx context.Context, configs cmd.Config, logger *slog.Logger) (cmd.MenuCache, func()) {
	if configs.RedisAddr == "" {
		logger.Info("Menu cache disabled: REDIS_ADDR is not set")
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Menu cache disabled: redis unreachable", "addr", configs.RedisAddr, "error", err)
		_ = client.Close()
		return nil, func() {}
	}

	return menucache.NewRedisMenuCache(client, configs.MenuCacheTTL, logger), func() { _ = client.Close() }
}

// newPublisher returns a nil publisher when KAFKA_HOST is unset, which leaves
// order events in the outbox.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	brokers := configs.KafkaBrokers()
	if len(brokers) == 0 {
		logger.Info("Outbox relay disabled: KAFKA_HOST is not set")
		return nil, func() {}
	}

	publisher, err := kafka.NewOrderEventPublisher(
		brokers, configs.KafkaOrderChangedTopic, kafka.DefaultBreakerSettings(), logger,
	)
	if err != nil {
		log.Fatalf("Failed to create kafka publisher: %v", err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close kafka publisher", "error", err)
		}
	}
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
