package audit

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbaudit "github.com/avelkov/bookshelf/internal/database/audit"
	"github.com/avelkov/bookshelf/internal/entities"
)

func setupTestService(t *testing.T) (*Service, func()) {
	dbPath := "./test_audit_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	service := NewService(dbaudit.NewRepository(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return service, cleanup
}

func TestService_Log(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	err := service.Log(&entities.AuditEvent{
		UserID:    1,
		EventType: entities.AuditEventBook,
		Action:    "book_create",
		Status:    entities.AuditStatusSuccess,
	})
	require.NoError(t, err)

	events, total, err := service.GetEvents(1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "book_create", events[0].Action)
}

func TestService_LogBookRecordsFailure(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	service.LogBook(1, "book_update", 42, "Dune", errors.New("update failed"))

	// LogBook writes in the background
	require.Eventually(t, func() bool {
		_, total, err := service.GetEvents(1, 10, 0)
		return err == nil && total == 1
	}, 2*time.Second, 10*time.Millisecond)

	events, _, err := service.GetEvents(1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, entities.AuditStatusFailed, events[0].Status)
	assert.Equal(t, "update failed", events[0].ErrorMsg)
	require.NotNil(t, events[0].EntityID)
	assert.Equal(t, uint(42), *events[0].EntityID)
}

func TestService_DeleteOldEvents(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	old := &entities.AuditEvent{
		UserID:    1,
		EventType: entities.AuditEventAuth,
		Action:    "login",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: time.Now().Add(-40 * 24 * time.Hour),
	}
	require.NoError(t, service.Log(old))

	recent := &entities.AuditEvent{
		UserID:    1,
		EventType: entities.AuditEventAuth,
		Action:    "login",
		Status:    entities.AuditStatusSuccess,
	}
	require.NoError(t, service.Log(recent))

	deleted, err := service.DeleteOldEvents(30 * 24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, total, err := service.GetEvents(1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "aaaaaaa...", truncate(strings.Repeat("a", 20), 10))
}
