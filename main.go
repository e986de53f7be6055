package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"intelliforms_backend/bootstrap"
	"intelliforms_backend/config"
	"intelliforms_backend/middleware"
	"intelliforms_backend/pkg/logging"
	"intelliforms_backend/routes"
	"intelliforms_backend/worker"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	logging.Init()
	cfg := config.LoadConfig()

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := app.Shutdown(); err != nil {
			log.Println("shutdown error:", err)
		}
	}()

	fiberApp := fiber.New(fiber.Config{
		// multipart uploads up to the file limit plus form overhead
		BodyLimit: int(cfg.MaxFileSize) + 1<<20,
	})
	fiberApp.Use(middleware.Logger())
	fiberApp.Use(middleware.CORS())
	routes.RegisterFormRoutes(fiberApp, app.Handlers.UploadHandler, app.Handlers.FormHandler, cfg.APIKey)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go worker.Start(ctx, app.Infrastructure.Queue, app.Services.PipelineService, cfg.QueueTopic)

	port := cfg.HttpPort
	if port == "" {
		port = "3000"
	}
	log.Println("Server running on http://localhost:" + port)
	log.Fatal(fiberApp.Listen(":" + port))
}
