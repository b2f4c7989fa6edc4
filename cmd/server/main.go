package main

import (
	"flag"
	"net/http"

	"github.com/go-chi/cors"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/anslagstavla/internal/app"
	"github.com/shrimpsizemoose/anslagstavla/internal/handlers"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	if service.Config.Database.AutoMigrate {
		if err := service.Store.ApplyMigrations(service.Config.Database.MigrationsDir); err != nil {
			logger.Error.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	roster, err := app.LoadRoster(service.Config.Seed.RosterPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load roster: %v", err)
	}
	if err := service.SeedRoster(roster); err != nil {
		logger.Error.Fatalf("Failed to seed roster: %v", err)
	}

	handler := cors.Handler(cors.Options{
		AllowedOrigins:   service.Config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})(handlers.NewRouter(service))

	logger.Info.Printf("Starting anslagstavla server on %s", service.Config.Server.Addr)
	logger.Info.Printf("Admin panel: http://localhost%s/admin/", service.Config.Server.Addr)
	if err := http.ListenAndServe(service.Config.Server.Addr, handler); err != nil {
		logger.Error.Fatalf("Anslagstavla server failed: %v", err)
	}
}
