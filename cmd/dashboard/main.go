package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/suar-net/suar-dash/internal/apiclient"
	"github.com/suar-net/suar-dash/internal/config"
	"github.com/suar-net/suar-dash/internal/handler"
	"github.com/suar-net/suar-dash/internal/server"
	"github.com/suar-net/suar-dash/internal/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from OS")
	}

	logger := log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig("8080")
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	client := apiclient.New(cfg.API.Origin(), cfg.API.Timeout)
	visits := view.NewVisits(client, logger, view.DefaultVisitLimit)
	renderer := view.Renderer{
		Location:   cfg.Display.Location,
		TimeLayout: cfg.Display.TimeLayout,
		Logger:     logger,
	}

	opts := handler.RouterOptions{
		Dashboard:      handler.NewDashboardHandler(visits, renderer, logger),
		Health:         handler.NewHealthHandler(nil, logger),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}
	// Deletes may target this server's own /api, so they finish before it stops.
	hooks := server.Hooks{Drain: []func(){visits.Wait}}

	// Production builds use an empty API prefix, so the API has to live on
	// this origin.
	if cfg.API.BaseURL == "" {
		if cfg.DB.Enabled() {
			backend, err := server.NewBackend(cfg, logger)
			if err != nil {
				logger.Fatalf("Failed to start backend: %v", err)
			}
			backend.Mount(&opts)
			hooks.Close = append(hooks.Close, backend.Close)
		} else {
			logger.Println("WARN: DB_HOST is not set; /api must be served on this origin by another process")
		}
	}

	logger.Printf("Dashboard reads proxy requests from %s", cfg.API.Origin())
	server.Run(cfg.Server, handler.SetupRouter(opts), logger, hooks)
}
