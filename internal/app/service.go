package app

import (
	"fmt"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/anslagstavla/internal/auth"
	"github.com/shrimpsizemoose/anslagstavla/internal/models"
	"github.com/shrimpsizemoose/anslagstavla/internal/store"
)

type Service struct {
	Config   *Config
	Store    store.Store
	Sessions auth.SessionStore
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := NewStore(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	sessions, err := NewSessionStore(config)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to init session store: %w", err)
	}

	return &Service{
		Config:   config,
		Store:    store,
		Sessions: sessions,
	}, nil
}

// Session resolves the caller's session from the request cookie. The token is
// returned even when no session is found under it, so a login handler can
// reuse it. Both are zero when the request carries no cookie.
func (s *Service) Session(r *http.Request) (string, *models.Session) {
	cookie, err := r.Cookie(s.Config.Session.CookieName)
	if err != nil {
		return "", nil
	}

	session, err := s.Sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		logger.Debug.Printf("Session lookup failed for token %s: %v", cookie.Value, err)
		return cookie.Value, nil
	}
	return cookie.Value, session
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if err := s.Sessions.Close(); err != nil {
		errs = append(errs, fmt.Errorf("sessions: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
