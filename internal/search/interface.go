package search

import (
	"context"
	"time"
)

// Engine runs the two transcript query pipelines: time-range aggregation and
// keyword search, both ending in a summarization call.
type Engine interface {
	// AnalyzeRange summarizes every segment inside [start, end]. Only the
	// summary is returned; the caller already knows the window.
	AnalyzeRange(ctx context.Context, start, end time.Time) (string, error)

	// SearchKeyword summarizes all segments matching keyword and returns
	// them with per-segment playback metadata.
	SearchKeyword(ctx context.Context, keyword string) (*Result, error)
}

// SegmentInfo is the per-match payload the dashboard uses to drive playback.
type SegmentInfo struct {
	SegmentFilename string  `json:"segment_filename"`
	OffsetSecs      float64 `json:"offset_secs"`
	DurationSecs    float64 `json:"duration_secs"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Text            string  `json:"text"`
}

// Result is the keyword-search response: one summary plus every matched
// segment in store order.
type Result struct {
	Summary  string        `json:"summary"`
	Segments []SegmentInfo `json:"segments"`
}
