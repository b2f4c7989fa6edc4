package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/anslagstavla/internal/auth"
)

type Config struct {
	Server struct {
		Addr           string   `toml:"addr"`
		PublicDir      string   `toml:"public_dir"`
		AdminDir       string   `toml:"admin_dir"`
		AllowedOrigins []string `toml:"allowed_origins"`
	} `toml:"server"`

	Database struct {
		DSN           string `toml:"dsn"`
		MigrationsDir string `toml:"migrations_dir"`
		AutoMigrate   bool   `toml:"auto_migrate"`
	} `toml:"database"`

	Session struct {
		Backend    string `toml:"backend"` // "memory" or "redis"
		RedisURL   string `toml:"redis_url"`
		CookieName string `toml:"cookie_name"`
	} `toml:"session"`

	Seed struct {
		RosterPath string `toml:"roster_path"`
	} `toml:"seed"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	if config.Server.Addr == "" {
		return nil, fmt.Errorf("server addr is not specified in config, use a value like :3000")
	}
	if config.Database.DSN == "" {
		return nil, fmt.Errorf("database dsn is not specified in config")
	}

	if config.Server.PublicDir == "" {
		config.Server.PublicDir = "public"
	}
	if config.Server.AdminDir == "" {
		config.Server.AdminDir = "admin"
	}
	if config.Database.MigrationsDir == "" {
		config.Database.MigrationsDir = "./migrations"
	}
	if config.Session.Backend == "" {
		config.Session.Backend = "memory"
	}
	if config.Session.CookieName == "" {
		config.Session.CookieName = auth.DefaultCookieName
	}

	return &config, nil
}
