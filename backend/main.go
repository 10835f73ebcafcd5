package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"hakwon/backend/config"
	"hakwon/backend/middleware"
	"hakwon/backend/notify"
	"hakwon/backend/routes"
	"hakwon/backend/store"
	"hakwon/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Select the collection store
	var st store.Store
	switch cfg.DataBackend {
	case "memory":
		memStore, err := store.NewMemoryStore()
		if err != nil {
			log.Fatalf("Error seeding memory store: %v", err)
		}
		st = memStore
	default:
		db, err := utils.InitDB(cfg)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}
		gormStore := store.NewGormStore(db)
		if err := gormStore.Migrate(); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
		st = gormStore
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-User-ID",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, cfg, notify.NewLogNotifier(logger))

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
