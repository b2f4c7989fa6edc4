// Applies the versioned SQL migrations once, at deployment time. The server
// can also run them itself at startup when database.auto_migrate is set.
package main

import (
	"flag"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/anslagstavla/internal/app"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}

	store, err := app.NewStore(config.Database.DSN)
	if err != nil {
		logger.Error.Fatalf("Failed to init store: %v", err)
	}
	defer store.Close()

	if err := store.ApplyMigrations(config.Database.MigrationsDir); err != nil {
		logger.Error.Fatalf("Failed to apply migrations: %v", err)
	}

	logger.Info.Printf("Migrations from %s applied", config.Database.MigrationsDir)
}
