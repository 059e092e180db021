package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/http/middleware"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/http/routes"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/config"

	"github.com/gofiber/fiber/v2"

	_ "github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/docs" // Swagger docs
)

// @title LJMDI Membership API
// @version 1.0
// @description Community association membership management API

// @contact.name API Support
// @contact.email support@ljmdi.org

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Seed the administrator account
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("Warning: failed to seed admin account: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "LJMDI Membership API v1.0",
		ErrorHandler: middleware.ErrorHandler(cfg),
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
