package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avelkov/bookshelf/internal/entities"
)

func TestNewDatabase_TranslatesUniqueViolations(t *testing.T) {
	dbPath := "./test_database_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer func() {
		db.Close()
		os.Remove(dbPath)
	}()

	err = db.DB.Create(&entities.User{Username: "alice", PasswordHash: "x"}).Error
	require.NoError(t, err)

	err = db.DB.Create(&entities.User{Username: "alice", PasswordHash: "y"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
