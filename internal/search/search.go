package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rako024/transcript-archive/internal/store"
	"github.com/Rako024/transcript-archive/pkg/apperror"
)

func (e *implEngine) AnalyzeRange(ctx context.Context, start, end time.Time) (string, error) {
	if !start.Before(end) {
		return "", apperror.InvalidInput("start_time must be before end_time")
	}

	segments, err := e.store.QueryByTimeRange(ctx, start, end)
	if err != nil {
		return "", fmt.Errorf("query range: %w", err)
	}

	e.logger.Debug(ctx, "Range %s..%s matched %d segments",
		start.Format(time.RFC3339), end.Format(time.RFC3339), len(segments))

	summary, err := e.summarizer.Summarize(ctx, joinTexts(segments), "")
	if err != nil {
		return "", fmt.Errorf("summarize range: %w", err)
	}

	return summary, nil
}

func (e *implEngine) SearchKeyword(ctx context.Context, keyword string) (*Result, error) {
	if keyword == "" {
		return nil, apperror.InvalidInput("keyword is required")
	}

	segments, err := e.store.QueryByKeyword(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("query keyword: %w", err)
	}

	e.logger.Debug(ctx, "Keyword %q matched %d segments", keyword, len(segments))

	summary, err := e.summarizer.Summarize(ctx, joinTexts(segments), keyword)
	if err != nil {
		return nil, fmt.Errorf("summarize keyword: %w", err)
	}

	// One SegmentInfo per store row, in store order. Duplicate
	// filename/offset pairs stay duplicated.
	infos := make([]SegmentInfo, 0, len(segments))
	for _, seg := range segments {
		infos = append(infos, SegmentInfo{
			SegmentFilename: seg.SegmentFilename,
			OffsetSecs:      seg.OffsetSecs,
			DurationSecs:    seg.DurationSecs,
			StartTime:       seg.StartTime.Format(time.RFC3339),
			EndTime:         seg.EndTime.Format(time.RFC3339),
			Text:            seg.Text,
		})
	}

	return &Result{Summary: summary, Segments: infos}, nil
}

// joinTexts concatenates segment texts with single spaces, preserving the
// store's ordering. This exact string is what the summarizer sees.
func joinTexts(segments []store.TranscriptSegment) string {
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	return strings.Join(texts, " ")
}
