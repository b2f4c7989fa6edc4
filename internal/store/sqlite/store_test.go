// internal/store/sqlite/store_test.go
package sqlite

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/anslagstavla/internal/models"
)

// setupTestDB creates an in-memory SQLite database with the real migrations
// applied, so the dialect translation is exercised too
func setupTestDB(t *testing.T) (*SQLiteStore, func()) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err, "Failed to create store")

	err = s.ApplyMigrations("../../../migrations")
	require.NoError(t, err, "Failed to apply migrations")

	cleanup := func() {
		err := s.Close()
		require.NoError(t, err, "Failed to close database")
	}

	return s, cleanup
}

func TestMain(m *testing.M) {
	log.Println("Starting SQLite store tests...")
	code := m.Run()
	log.Println("Finished SQLite store tests")
	os.Exit(code)
}

func TestMigrationsAreRerunnable(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	err := s.ApplyMigrations("../../../migrations")
	require.NoError(t, err, "Second migration run should be a no-op")
}

func TestNewsOperations(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	items := []models.News{
		{Title: "Осенний семестр", URL: "https://example.org/fall", CreatedAt: now.Add(-2 * time.Hour).Unix()},
		{Title: "День открытых дверей", URL: "https://example.org/openday", CreatedAt: now.Unix()},
		{Title: "Расписание консультаций", URL: "https://example.org/consult", CreatedAt: now.Add(-1 * time.Hour).Unix()},
	}

	t.Run("create assigns ids", func(t *testing.T) {
		for i := range items {
			err := s.CreateNews(&items[i])
			require.NoError(t, err)
			assert.NotZero(t, items[i].ID)
		}
	})

	t.Run("create fills created_at when missing", func(t *testing.T) {
		item := models.News{Title: "Без даты", URL: "https://example.org/x"}
		err := s.CreateNews(&item)
		require.NoError(t, err)
		assert.NotZero(t, item.CreatedAt)
		_, err = s.DB.Exec(`DELETE FROM news WHERE id = ?`, item.ID)
		require.NoError(t, err)
	})

	t.Run("list is newest first", func(t *testing.T) {
		news, err := s.ListNews()
		require.NoError(t, err)
		require.Len(t, news, 3)
		assert.Equal(t, "День открытых дверей", news[0].Title)
		assert.Equal(t, "Расписание консультаций", news[1].Title)
		assert.Equal(t, "Осенний семестр", news[2].Title)
	})

	t.Run("delete existing", func(t *testing.T) {
		deleted, err := s.DeleteNews(items[0].ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		news, err := s.ListNews()
		require.NoError(t, err)
		assert.Len(t, news, 2)
	})

	t.Run("delete non-existent", func(t *testing.T) {
		deleted, err := s.DeleteNews(99999)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestEventOperations(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	events := []models.CalendarEvent{
		{Date: "2025-03-10", Title: "Защита курсовых"},
		{Date: "2025-02-01", Title: "Начало семестра"},
		{Date: "2025-06-20", Title: "Госэкзамен"},
	}

	t.Run("create", func(t *testing.T) {
		for i := range events {
			err := s.CreateEvent(&events[i])
			require.NoError(t, err)
			assert.NotZero(t, events[i].ID)
		}
	})

	t.Run("list is date ascending", func(t *testing.T) {
		got, err := s.ListEvents()
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Начало семестра", got[0].Title)
		assert.Equal(t, "Защита курсовых", got[1].Title)
		assert.Equal(t, "Госэкзамен", got[2].Title)
	})

	t.Run("get existing", func(t *testing.T) {
		got, err := s.GetEvent(events[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, events[0].Title, got.Title)
		assert.Equal(t, events[0].Date, got.Date)
	})

	t.Run("get non-existent", func(t *testing.T) {
		got, err := s.GetEvent(99999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update", func(t *testing.T) {
		events[0].Date = "2025-03-12"
		events[0].Title = "Защита курсовых (перенос)"
		err := s.UpdateEvent(&events[0])
		require.NoError(t, err)

		got, err := s.GetEvent(events[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2025-03-12", got.Date)
		assert.Equal(t, "Защита курсовых (перенос)", got.Title)
	})

	t.Run("delete existing", func(t *testing.T) {
		deleted, err := s.DeleteEvent(events[2].ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("delete non-existent", func(t *testing.T) {
		deleted, err := s.DeleteEvent(99999)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestStudentOperations(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	student := models.Student{
		Login:      "kafedFITKB1",
		Password:   "$2a$10$notarealhashbutlongenough1234567890123456789012",
		LastName:   "Смирнов",
		FirstName:  "Артём",
		MiddleName: "Дмитриевич",
	}

	t.Run("create", func(t *testing.T) {
		err := s.CreateStudent(&student)
		require.NoError(t, err)
		assert.NotZero(t, student.ID)
	})

	t.Run("get by login", func(t *testing.T) {
		got, err := s.GetStudentByLogin("kafedFITKB1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, student.LastName, got.LastName)
		assert.Equal(t, student.Password, got.Password)
	})

	t.Run("get non-existent", func(t *testing.T) {
		got, err := s.GetStudentByLogin("not.exists")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate login is rejected", func(t *testing.T) {
		dup := student
		dup.ID = 0
		err := s.CreateStudent(&dup)
		assert.Error(t, err)
	})
}

func TestAdminOperations(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	admin := models.Admin{
		Username: "admin",
		Password: "$2a$10$notarealhashbutlongenough1234567890123456789012",
	}

	t.Run("create", func(t *testing.T) {
		err := s.CreateAdmin(&admin)
		require.NoError(t, err)
		assert.NotZero(t, admin.ID)
	})

	t.Run("get by username", func(t *testing.T) {
		got, err := s.GetAdminByUsername("admin")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, admin.Password, got.Password)
	})

	t.Run("get non-existent", func(t *testing.T) {
		got, err := s.GetAdminByUsername("root")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		dup := admin
		dup.ID = 0
		err := s.CreateAdmin(&dup)
		assert.Error(t, err)
	})
}
