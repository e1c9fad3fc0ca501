package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tableside/internal/catalog"
	"tableside/internal/handlers"
	"tableside/internal/middleware"
	"tableside/internal/models"
	"tableside/internal/repositories"
	"tableside/internal/services"
	"tableside/pkg/rabbitmq"

	"github.com/spf13/viper"
)

// Config holds the externally supplied application settings.
type Config struct {
	JWTSecret  string
	CORSOrigin string
	StrictFlow bool
}

// NewApp wires repositories, services, and handlers into a Fiber app.
func NewApp(db *gorm.DB, publisher services.EventPublisher, cfg Config) *fiber.App {
	// --- Repositories ---
	orderRepo := repositories.NewGORMOrderRepository(db)
	staffRepo := repositories.NewGORMStaffRepository(db)

	// --- Services ---
	orderService := services.NewOrderService(orderRepo, publisher, cfg.StrictFlow)
	authService := services.NewAuthService(staffRepo, cfg.JWTSecret)

	// The menu catalog is fixed at deploy time.
	menu := catalog.Default()

	// --- Handlers ---
	menuHandler := handlers.NewMenuHandler(menu)
	orderHandler := handlers.NewOrderHandler(orderService, middleware.AuthRequired(authService))
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,PATCH",
		AllowCredentials: true,
	}))

	// --- API Routes ---
	api := app.Group("/api")
	menuHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// openDatabase opens the configured GORM backend and migrates the
// schema.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Staff{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "tableside.db")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("STRICT_STATUS_FLOW", false)
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// With no broker URL configured the service runs standalone and
	// order events are simply not published.
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; order events will not be published")
	}

	app := NewApp(db, publisher, Config{
		JWTSecret:  viper.GetString("JWT_SECRET"),
		CORSOrigin: viper.GetString("CORS_ORIGIN"),
		StrictFlow: viper.GetBool("STRICT_STATUS_FLOW"),
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received order event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
