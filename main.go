package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inventario/internal/cache"
	"inventario/internal/handlers"
	"inventario/internal/models"
	"inventario/internal/repositories"
	"inventario/internal/services"
	"inventario/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "inventario.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("USER_LIST_CACHE_TTL", 10)
	viper.SetDefault("SEED_DATABASE", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	listTTL := time.Duration(viper.GetInt("USER_LIST_CACHE_TTL")) * time.Second

	// --- Database ---
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.UserProduct{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// With no RABBITMQ_URL the service runs without messaging; the services
	// treat a nil publisher as a no-op.
	var events services.EventPublisher
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient

		log.Println("Starting RabbitMQ consumer for entity events...")
		if consumerErr := mqClient.ConsumeEntityEvents(func(msg amqp.Delivery) error {
			log.Printf("Received entity event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	linkRepo := repositories.NewGORMLinkRepository(db)
	reportRepo := repositories.NewGORMReportRepository(db)

	if viper.GetBool("SEED_DATABASE") {
		seedDatabase(userRepo, productRepo, linkRepo)
	}

	// --- Cache ---
	// One instance per process, injected into the user service so every user
	// mutation can invalidate the list entry.
	listCache := cache.New()

	// --- Services ---
	userService := services.NewUserService(userRepo, linkRepo, listCache, listTTL, events)
	productService := services.NewProductService(productRepo, events)
	relationService := services.NewRelationService(linkRepo, userRepo, productRepo, events)
	reportService := services.NewReportService(reportRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	relationHandler := handlers.NewRelationHandler(relationService)
	reportHandler := handlers.NewReportHandler(reportService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	userHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	relationHandler.RegisterRoutes(app)
	reportHandler.RegisterRoutes(app)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "API funcionando!",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

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

// openDatabase opens a GORM connection with the configured driver.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}
