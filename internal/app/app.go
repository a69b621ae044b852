package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mural-backend/internal/db"
	"mural-backend/internal/handlers"
	"mural-backend/internal/services"
	"mural-backend/internal/storage"
	"mural-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Init DB
	connString := utils.GetEnv("DATABASE_URL", "")
	if connString == "" {
		// Fallback to individual vars
		connString = "postgres://" + utils.GetEnv("POSTGRES_USER", "postgres") + ":" +
			utils.GetEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			utils.GetEnv("POSTGRES_HOST", "localhost") + ":" +
			utils.GetEnv("POSTGRES_PORT", "5432") + "/" +
			utils.GetEnv("POSTGRES_DB", "muraldb") + "?sslmode=disable"
	}

	if err := db.InitDB(connString, utils.GetEnvInt("DB_POOL_SIZE", 10)); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.CloseDB()

	if err := db.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	// Binary storage for uploads
	store, driver, err := storage.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Services
	photoService := services.NewPhotoService()

	// Fiber App. The body limit leaves headroom over the per-file cap so the
	// handler can answer 413 with a readable message instead of a cut
	// connection.
	app := fiber.New(fiber.Config{
		BodyLimit: handlers.MaxUploadBytes + 1<<20,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api.Get("/photos", handlers.ListPhotosHandler(photoService))
	api.Post("/upload", handlers.UploadPhotoHandler(photoService, store))
	api.Put("/photos/:id", handlers.UpdateCaptionHandler(photoService))
	api.Delete("/photos/:id", handlers.DeletePhotoHandler(photoService, store))

	// Uploaded files, read-only. Local disk is served statically; other
	// drivers stream through the storage client so URLs stay identical.
	if local, ok := store.(*storage.LocalStorage); ok && driver == "local" {
		app.Static("/uploads", local.Dir())
	} else {
		app.Get("/uploads/:file", handlers.ServeUploadHandler(store))
	}

	// Client page and assets
	app.Static("/", utils.GetEnv("WEB_DIR", "web"))

	// Start Server
	port := utils.GetEnv("PORT", "3001")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Println("Server shutdown complete")
}
