package app

import (
	"fmt"
	"strings"

	"github.com/shrimpsizemoose/anslagstavla/internal/auth"
	"github.com/shrimpsizemoose/anslagstavla/internal/store"
	"github.com/shrimpsizemoose/anslagstavla/internal/store/postgres"
	"github.com/shrimpsizemoose/anslagstavla/internal/store/sqlite"
)

func NewStore(dsn string) (store.Store, error) {
	dbType := store.DBTypeSQLite
	if strings.HasPrefix(dsn, "postgres") {
		dbType = store.DBTypePostgres
	}

	switch dbType {
	case store.DBTypePostgres:
		return postgres.NewPostgresStore(dsn)
	case store.DBTypeSQLite:
		return sqlite.NewSQLiteStore(dsn)
	default:
		return nil, fmt.Errorf("unable to determine database type from DSN: %s", dsn)
	}
}

func NewSessionStore(config *Config) (auth.SessionStore, error) {
	switch config.Session.Backend {
	case "memory":
		return auth.NewMemoryStore(auth.SessionTTL), nil
	case "redis":
		return auth.NewRedisStore(config.Session.RedisURL, auth.SessionTTL)
	default:
		return nil, fmt.Errorf("unknown session backend: %s", config.Session.Backend)
	}
}
