package main

import (
	"log"

	"project/backend/catalog"
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/routes"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Load the bilingual question catalog. A broken catalog means the
	// service cannot score anything, so this is fatal.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Error loading question catalog: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, cat, cfg, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
