package store

import (
	"context"
	"time"
)

// Store reads transcript segments and manages recording intervals.
// Segments are written by the external dispatcher; this client never
// mutates them.
type Store interface {
	// QueryByTimeRange returns all segments fully inside [start, end],
	// ordered by start time. Fails with apperror.NotFoundError when the
	// range holds no segments.
	QueryByTimeRange(ctx context.Context, start, end time.Time) ([]TranscriptSegment, error)

	// QueryByKeyword returns all segments whose text contains keyword
	// (case-insensitive substring), ordered by start time. Fails with
	// apperror.NotFoundError when nothing matches.
	QueryByKeyword(ctx context.Context, keyword string) ([]TranscriptSegment, error)

	// ListIntervals returns the configured recording intervals.
	ListIntervals(ctx context.Context) ([]Interval, error)

	// CreateInterval adds a recording interval. Times are "HH:MM".
	CreateInterval(ctx context.Context, startTime, endTime string) (Interval, error)

	// DeleteInterval removes an interval by id.
	DeleteInterval(ctx context.Context, id int64) error
}
