// Package scheduler runs periodic maintenance on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/avelkov/bookshelf/internal/config"
	"github.com/avelkov/bookshelf/internal/tasks"
)

// MaintenanceScheduler periodically enqueues the audit trail cleanup task.
type MaintenanceScheduler struct {
	taskClient *tasks.Client
	config     config.Audit

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewMaintenanceScheduler creates a new scheduler instance.
func NewMaintenanceScheduler(taskClient *tasks.Client, cfg config.Audit) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		taskClient: taskClient,
		config:     cfg,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *MaintenanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.config.CleanupSchedule == "" {
		log.Printf("Maintenance scheduler: no cleanup schedule configured, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.CleanupSchedule, func() {
		s.enqueueCleanup()
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.CleanupSchedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Maintenance scheduler: started with schedule '%s'", s.config.CleanupSchedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Maintenance scheduler: stopped")
}

// RunNow enqueues an immediate cleanup.
func (s *MaintenanceScheduler) RunNow() {
	s.enqueueCleanup()
}

// IsRunning returns whether the scheduler is active.
func (s *MaintenanceScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next cleanup will be enqueued.
func (s *MaintenanceScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *MaintenanceScheduler) enqueueCleanup() {
	if s.taskClient == nil {
		return
	}

	_, err := s.taskClient.Add(tasks.CleanupAuditEventsTask{
		RetentionDays: s.config.RetentionDays,
	}).Save()
	if err != nil {
		log.Printf("Maintenance scheduler: failed to enqueue audit cleanup: %v", err)
		return
	}

	log.Printf("Maintenance scheduler: enqueued audit cleanup (retention %d days)", s.config.RetentionDays)
}
