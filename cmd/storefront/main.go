package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/GantalaAvinash/mobile-store/internal/cart"
	"github.com/GantalaAvinash/mobile-store/internal/catalog"
	"github.com/GantalaAvinash/mobile-store/internal/checkout"
	"github.com/GantalaAvinash/mobile-store/internal/identity"
	"github.com/GantalaAvinash/mobile-store/internal/notification"
	"github.com/GantalaAvinash/mobile-store/internal/notification/email"
	httptransport "github.com/GantalaAvinash/mobile-store/internal/transport/http"
	"github.com/GantalaAvinash/mobile-store/internal/transport/http/handler"
	"github.com/GantalaAvinash/mobile-store/pkg/config"
	"github.com/GantalaAvinash/mobile-store/pkg/db"
	"github.com/GantalaAvinash/mobile-store/pkg/kafka"
	"github.com/GantalaAvinash/mobile-store/pkg/utils"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	tp, err := utils.InitTracer(ctx, "mobile-store")
	if err != nil {
		log.Fatalf("Failed to init trace: %v", err)
	}

	logger, err := config.NewLogger(config.LoggerConfig{
		Level: "info",
		Env:   cfg.Env,
	})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("error syncing logger: %v", err)
		}
	}()

	pool, err := db.NewPostgresDB(cfg.Postgres.URL)
	if err != nil {
		log.Fatalf("Error creating new postgres DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})

	kafkaProducer, err := kafka.NewProducer(cfg.Kafka.Brokers)
	if err != nil {
		log.Fatalf("error creating kafka producer: %v", err)
	}
	defer func() {
		if err := kafkaProducer.Close(); err != nil {
			log.Printf("error closing kafka producer: %v", err)
		}
	}()

	logger.Info("mobile store started!")

	catalogRepository := catalog.NewRepository(pool, logger)
	catalogService := catalog.NewService(catalogRepository, logger)
	cachedCatalogService := catalog.NewCachedService(catalogService, rdb)

	cartStore := cart.NewRedisStore(rdb)
	cartService := cart.NewService(cartStore, logger)

	cartService.Subscribe(func(userID string, snapshot cart.Cart) {
		logger.Debug("Cart changed",
			zap.String("user_id", userID),
			zap.Int("item_count", snapshot.ItemCount),
			zap.Int64("total", snapshot.Total),
		)
	})

	checkoutService := checkout.NewService(cartService, kafkaProducer, cfg.Kafka.OrderTopic, logger)

	identityRepository := identity.NewRepository(pool, logger)
	sessionObserver := identity.NewSessionObserver()
	identityProvider := identity.NewProvider(identityRepository, sessionObserver, cfg.Sessions.TTL, logger)

	sessionObserver.Subscribe(func(user *identity.User) {
		if user == nil {
			logger.Info("Session ended")
			return
		}
		logger.Info("Session started", zap.String("uid", user.UID))
	})

	emailSender := email.NewSMTPSender(cfg.SMTP, logger)
	orderConsumer := notification.NewConsumer(emailSender, cfg.Kafka.OrderTopic, logger)

	go orderConsumer.Start(ctx, cfg.Kafka.Brokers)

	app := fiber.New(fiber.Config{
		ReadTimeout: cfg.HTTP.Timeout,
	})

	app.Use(otelfiber.Middleware())

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.Limiter.Max,
		Expiration: cfg.Limiter.Expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Try again later.",
			})
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("Mobile Store is alive!")
	})

	handlers := &httptransport.Handlers{
		Auth:     handler.NewAuthHandler(identityProvider, logger),
		Catalog:  handler.NewCatalogHandler(cachedCatalogService, logger),
		Cart:     handler.NewCartHandler(cartService, cachedCatalogService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
	}

	httptransport.RegisterRoutes(app, handlers, identityProvider)

	go func() {
		log.Println("HTTP Service listening on: " + cfg.HTTP.Port)
		if err := app.Listen(cfg.HTTP.Port); err != nil {
			log.Fatalf("Error listening on HTTP port %v: %v\n", cfg.HTTP.Port, err)
		}
	}()

	<-ctx.Done()

	log.Println("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP app: %v\n", err)
	} else {
		log.Println("HTTP App stopped gracefully")
	}

	pool.Close()
	log.Println("Closed db pool successfully")

	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down telemetry: %v\n", err)
	} else {
		log.Println("Telemetry stopped correctly")
	}
}
