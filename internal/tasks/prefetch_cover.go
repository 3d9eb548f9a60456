package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// CoverFetcher downloads and caches a cover image for a book.
type CoverFetcher interface {
	Prefetch(bookID uint, coverURL string) error
}

// PrefetchCoverTask downloads a book's cover image into the local cache so
// the first page load doesn't wait on openlibrary.org.
type PrefetchCoverTask struct {
	BookID   uint   `json:"book_id"`
	CoverURL string `json:"cover_url"`
}

// Config returns the queue configuration for cover prefetch tasks.
func (t PrefetchCoverTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prefetch_cover",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PrefetchCoverProcessor creates a processor function for PrefetchCoverTask.
func PrefetchCoverProcessor(fetcher CoverFetcher) backlite.QueueProcessor[PrefetchCoverTask] {
	return func(ctx context.Context, task PrefetchCoverTask) error {
		if fetcher == nil {
			return fmt.Errorf("cover fetcher not configured")
		}
		if task.CoverURL == "" {
			return nil
		}

		if err := fetcher.Prefetch(task.BookID, task.CoverURL); err != nil {
			return fmt.Errorf("prefetch cover for book %d: %w", task.BookID, err)
		}

		log.Printf("[TASK] Prefetched cover for book %d", task.BookID)
		return nil
	}
}

// NewPrefetchCoverQueue creates a backlite queue for cover prefetch tasks.
func NewPrefetchCoverQueue(fetcher CoverFetcher) backlite.Queue {
	return backlite.NewQueue(PrefetchCoverProcessor(fetcher))
}
