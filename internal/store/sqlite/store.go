// internal/store/sqlite/store.go
package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/shrimpsizemoose/anslagstavla/internal/models"
	"github.com/shrimpsizemoose/anslagstavla/internal/store"
)

type SQLiteStore struct {
	store.BaseStore
}

func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &SQLiteStore{BaseStore: store.BaseStore{
		DB: db,
		Converter: func(query string) string {
			return query
		},
	}}, nil
}

func (s *SQLiteStore) ApplyMigrations(dir string) error {
	return s.BaseStore.ApplyMigrations(dir, translateToSQLite)
}

// translateToSQLite converts Postgres SQL to SQLite dialect
func translateToSQLite(sql string) string {
	replacements := map[string]string{
		"BIGSERIAL PRIMARY KEY": "INTEGER PRIMARY KEY AUTOINCREMENT",
		"BIGINT":                "INTEGER",
		"TRUE":                  "1",
		"FALSE":                 "0",
		"now()":                 "CURRENT_TIMESTAMP",
	}
	result := sql
	for from, to := range replacements {
		result = strings.ReplaceAll(result, from, to)
	}
	return result
}

func (s *SQLiteStore) CreateNews(n *models.News) error {
	if n.CreatedAt == 0 {
		n.CreatedAt = time.Now().Unix()
	}
	res, err := s.DB.NamedExec(`
		INSERT INTO news (title, url, created_at)
		VALUES (:title, :url, :created_at)
	`, n)
	if err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	n.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}

func (s *SQLiteStore) CreateEvent(e *models.CalendarEvent) error {
	res, err := s.DB.NamedExec(`
		INSERT INTO calendar_events (date, title)
		VALUES (:date, :title)
	`, e)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *SQLiteStore) CreateStudent(student *models.Student) error {
	res, err := s.DB.NamedExec(`
		INSERT INTO students (login, password, last_name, first_name, middle_name)
		VALUES (:login, :password, :last_name, :first_name, :middle_name)
	`, student)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	student.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (s *SQLiteStore) CreateAdmin(admin *models.Admin) error {
	res, err := s.DB.NamedExec(`
		INSERT INTO admins (username, password)
		VALUES (:username, :password)
	`, admin)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	admin.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}
