package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/suar-net/suar-dash/internal/config"
	"github.com/suar-net/suar-dash/internal/handler"
	"github.com/suar-net/suar-dash/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from OS")
	}

	logger := log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig("1212")
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	backend, err := server.NewBackend(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to start backend: %v", err)
	}

	opts := handler.RouterOptions{AllowedOrigins: cfg.CORS.AllowedOrigins}
	backend.Mount(&opts)

	server.Run(cfg.Server, handler.SetupRouter(opts), logger, server.Hooks{
		Close: []func(){backend.Close},
	})
}
