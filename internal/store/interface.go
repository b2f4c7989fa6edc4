package store

import (
	"database/sql"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/anslagstavla/internal/models"
)

type Store interface {
	Close() error
	ApplyMigrations(dir string) error

	CreateNews(n *models.News) error
	ListNews() ([]models.News, error)
	DeleteNews(id int64) (bool, error)

	CreateEvent(e *models.CalendarEvent) error
	GetEvent(id int64) (*models.CalendarEvent, error)
	ListEvents() ([]models.CalendarEvent, error)
	UpdateEvent(e *models.CalendarEvent) error
	DeleteEvent(id int64) (bool, error)

	CreateStudent(s *models.Student) error
	GetStudentByLogin(login string) (*models.Student, error)

	CreateAdmin(a *models.Admin) error
	GetAdminByUsername(username string) (*models.Admin, error)
}

// BaseStore provides common functionality for different DB implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory in file-name order,
// translating dialect if needed. Migration files are written to be safe to re-run.
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".sql") {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *BaseStore) ListNews() ([]models.News, error) {
	var news []models.News
	err := s.DB.Select(&news, `
		SELECT id, title, url, created_at
		FROM news
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return news, nil
}

func (s *BaseStore) DeleteNews(id int64) (bool, error) {
	query := s.Converter(`DELETE FROM news WHERE id = ?`)
	res, err := s.DB.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}
	return affected > 0, nil
}

func (s *BaseStore) GetEvent(id int64) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	query := s.Converter(`
		SELECT id, date, title
		FROM calendar_events
		WHERE id = ?
	`)

	err := s.DB.Get(&event, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (s *BaseStore) ListEvents() ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	err := s.DB.Select(&events, `
		SELECT id, date, title
		FROM calendar_events
		ORDER BY date ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *BaseStore) UpdateEvent(e *models.CalendarEvent) error {
	query := s.Converter(`
		UPDATE calendar_events
		SET date = ?, title = ?
		WHERE id = ?
	`)
	if _, err := s.DB.Exec(query, e.Date, e.Title, e.ID); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteEvent(id int64) (bool, error) {
	query := s.Converter(`DELETE FROM calendar_events WHERE id = ?`)
	res, err := s.DB.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete event: %w", err)
	}
	return affected > 0, nil
}

func (s *BaseStore) GetStudentByLogin(login string) (*models.Student, error) {
	var student models.Student
	query := s.Converter(`
		SELECT id, login, password, last_name, first_name, middle_name
		FROM students
		WHERE login = ?
	`)

	err := s.DB.Get(&student, query, login)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

func (s *BaseStore) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	query := s.Converter(`
		SELECT id, username, password
		FROM admins
		WHERE username = ?
	`)

	err := s.DB.Get(&admin, query, username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}
