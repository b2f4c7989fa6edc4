package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/shrimpsizemoose/anslagstavla/internal/models"
	"github.com/shrimpsizemoose/anslagstavla/internal/store"
)

type PostgresStore struct {
	store.BaseStore
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresStore{BaseStore: store.BaseStore{
		DB: db,
		Converter: func(query string) string {
			out := query
			for i := 1; strings.Contains(out, "?"); i++ {
				out = strings.Replace(out, "?", fmt.Sprintf("$%d", i), 1)
			}
			return out
		},
	}}, nil
}

func (s *PostgresStore) ApplyMigrations(dir string) error {
	return s.BaseStore.ApplyMigrations(dir, nil)
}

func (s *PostgresStore) CreateNews(n *models.News) error {
	if n.CreatedAt == 0 {
		n.CreatedAt = time.Now().Unix()
	}
	err := s.DB.QueryRow(`
		INSERT INTO news (title, url, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, n.Title, n.URL, n.CreatedAt).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateEvent(e *models.CalendarEvent) error {
	err := s.DB.QueryRow(`
		INSERT INTO calendar_events (date, title)
		VALUES ($1, $2)
		RETURNING id
	`, e.Date, e.Title).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateStudent(student *models.Student) error {
	err := s.DB.QueryRow(`
		INSERT INTO students (login, password, last_name, first_name, middle_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, student.Login, student.Password, student.LastName, student.FirstName, student.MiddleName).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateAdmin(admin *models.Admin) error {
	err := s.DB.QueryRow(`
		INSERT INTO admins (username, password)
		VALUES ($1, $2)
		RETURNING id
	`, admin.Username, admin.Password).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}
