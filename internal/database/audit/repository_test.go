package audit

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avelkov/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_audit_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return NewRepository(db), cleanup
}

func TestRepository_LogEvent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	event := &entities.AuditEvent{
		UserID:    1,
		EventType: entities.AuditEventAuth,
		Action:    "login",
		Status:    entities.AuditStatusSuccess,
	}

	require.NoError(t, repo.LogEvent(event))
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestRepository_GetEvents(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.LogEvent(&entities.AuditEvent{
			UserID:    1,
			EventType: entities.AuditEventBook,
			Action:    "book_create",
			Status:    entities.AuditStatusSuccess,
		}))
	}
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		UserID:    2,
		EventType: entities.AuditEventBook,
		Action:    "book_create",
		Status:    entities.AuditStatusSuccess,
	}))

	events, total, err := repo.GetEvents(1, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, events, 3)
}

func TestRepository_DeleteOldEvents(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		UserID:    1,
		EventType: entities.AuditEventAuth,
		Action:    "login",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		UserID:    1,
		EventType: entities.AuditEventAuth,
		Action:    "login",
		Status:    entities.AuditStatusSuccess,
	}))

	deleted, err := repo.DeleteOldEvents(time.Now().Add(-24 * time.Hour))

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, total, err := repo.GetEvents(1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
