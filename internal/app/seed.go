package app

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/anslagstavla/internal/models"
)

// Roster is the declarative seed data loaded at bootstrap: one admin account
// and the fixed student list. Passwords in the file are plain text and are
// hashed before the row is first written; existing rows are never touched.
type Roster struct {
	Admin struct {
		Username string `toml:"username" validate:"required"`
		Password string `toml:"password" validate:"required"`
	} `toml:"admin"`

	Students []RosterStudent `toml:"students" validate:"dive"`
}

type RosterStudent struct {
	Login      string `toml:"login" validate:"required"`
	Password   string `toml:"password" validate:"required"`
	LastName   string `toml:"last_name" validate:"required"`
	FirstName  string `toml:"first_name" validate:"required"`
	MiddleName string `toml:"middle_name" validate:"required"`
}

func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading roster file: %w", err)
	}

	var roster Roster
	if err := toml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("error reading roster file %s: %w", path, err)
	}

	validate := validator.New()
	if err := validate.Struct(&roster); err != nil {
		return nil, fmt.Errorf("invalid roster file %s: %w", path, err)
	}

	return &roster, nil
}

// SeedRoster find-or-creates the admin and every student by their unique key.
// Running it twice against the same store is a no-op the second time.
func (s *Service) SeedRoster(roster *Roster) error {
	admin, err := s.Store.GetAdminByUsername(roster.Admin.Username)
	if err != nil {
		return fmt.Errorf("failed to look up admin %s: %w", roster.Admin.Username, err)
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(roster.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if err := s.Store.CreateAdmin(&models.Admin{
			Username: roster.Admin.Username,
			Password: string(hash),
		}); err != nil {
			return fmt.Errorf("failed to seed admin %s: %w", roster.Admin.Username, err)
		}
		logger.Info.Printf("Seeded admin account %s", roster.Admin.Username)
	}

	created := 0
	for _, rs := range roster.Students {
		student, err := s.Store.GetStudentByLogin(rs.Login)
		if err != nil {
			return fmt.Errorf("failed to look up student %s: %w", rs.Login, err)
		}
		if student != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(rs.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", rs.Login, err)
		}
		if err := s.Store.CreateStudent(&models.Student{
			Login:      rs.Login,
			Password:   string(hash),
			LastName:   rs.LastName,
			FirstName:  rs.FirstName,
			MiddleName: rs.MiddleName,
		}); err != nil {
			return fmt.Errorf("failed to seed student %s: %w", rs.Login, err)
		}
		created++
	}

	logger.Info.Printf("Roster ready: %d of %d students created", created, len(roster.Students))
	return nil
}
