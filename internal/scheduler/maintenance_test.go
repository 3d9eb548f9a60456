package scheduler

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelkov/bookshelf/internal/config"
	"github.com/avelkov/bookshelf/internal/tasks"
)

func newTestTaskClient(t *testing.T) *tasks.Client {
	cfg := tasks.DefaultConfig()
	cfg.Workers = 1

	client, err := tasks.NewClient(filepath.Join(t.TempDir(), "test.db"), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestMaintenanceScheduler_StartStop(t *testing.T) {
	s := NewMaintenanceScheduler(newTestTaskClient(t), config.Audit{
		RetentionDays:   30,
		CleanupSchedule: "0 3 * * *",
	})

	err := s.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, s.IsRunning())

	next := s.GetNextRunTime()
	require.NotNil(t, next)
	assert.False(t, next.IsZero())

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())
}

func TestMaintenanceScheduler_InvalidSchedule(t *testing.T) {
	s := NewMaintenanceScheduler(newTestTaskClient(t), config.Audit{
		RetentionDays:   30,
		CleanupSchedule: "not a schedule",
	})

	err := s.Start(context.Background())
	assert.Error(t, err)
	assert.False(t, s.IsRunning())
}

func TestMaintenanceScheduler_EmptyScheduleIsNoop(t *testing.T) {
	s := NewMaintenanceScheduler(newTestTaskClient(t), config.Audit{RetentionDays: 30})

	err := s.Start(context.Background())
	require.NoError(t, err)
	assert.False(t, s.IsRunning())
}
