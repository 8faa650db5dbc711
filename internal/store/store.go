package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Rako024/transcript-archive/pkg/apperror"
)

const segmentColumns = `start_time, end_time, text, segment_filename, offset_secs, duration_secs`

const queryByRangeSQL = `
	SELECT ` + segmentColumns + `
	FROM transcripts
	WHERE start_time >= $1 AND end_time <= $2
	ORDER BY start_time`

const queryByKeywordSQL = `
	SELECT ` + segmentColumns + `
	FROM transcripts
	WHERE text ILIKE '%' || $1 || '%'
	ORDER BY start_time`

func (s *implStore) QueryByTimeRange(ctx context.Context, start, end time.Time) ([]TranscriptSegment, error) {
	segments, err := s.querySegments(ctx, queryByRangeSQL, start, end)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, apperror.NotFound("no transcripts between %s and %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return segments, nil
}

func (s *implStore) QueryByKeyword(ctx context.Context, keyword string) ([]TranscriptSegment, error) {
	// Keyword travels as a bound parameter; the wildcards are glued on in
	// SQL so user input never touches the query text.
	segments, err := s.querySegments(ctx, queryByKeywordSQL, keyword)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, apperror.NotFound("keyword %q not found", keyword)
	}
	return segments, nil
}

func (s *implStore) querySegments(ctx context.Context, sql string, args ...any) ([]TranscriptSegment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	defer rows.Close()

	var segments []TranscriptSegment
	for rows.Next() {
		var seg TranscriptSegment
		if err := rows.Scan(
			&seg.StartTime,
			&seg.EndTime,
			&seg.Text,
			&seg.SegmentFilename,
			&seg.OffsetSecs,
			&seg.DurationSecs,
		); err != nil {
			return nil, apperror.StoreUnavailable(fmt.Errorf("scan segment: %w", err))
		}
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	return segments, nil
}

func (s *implStore) ListIntervals(ctx context.Context) ([]Interval, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT id, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM intervals
		ORDER BY id`)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	defer rows.Close()

	intervals := []Interval{}
	for rows.Next() {
		var it Interval
		if err := rows.Scan(&it.ID, &it.StartTime, &it.EndTime); err != nil {
			return nil, apperror.StoreUnavailable(fmt.Errorf("scan interval: %w", err))
		}
		intervals = append(intervals, it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	return intervals, nil
}

func (s *implStore) CreateInterval(ctx context.Context, startTime, endTime string) (Interval, error) {
	for _, v := range []string{startTime, endTime} {
		if _, err := time.Parse("15:04", v); err != nil {
			return Interval{}, apperror.InvalidInput("interval time %q is not HH:MM", v)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO intervals (start_time, end_time)
		VALUES ($1::time, $2::time)
		RETURNING id`, startTime, endTime).Scan(&id)
	if err != nil {
		return Interval{}, apperror.StoreUnavailable(err)
	}

	return Interval{ID: id, StartTime: startTime, EndTime: endTime}, nil
}

func (s *implStore) DeleteInterval(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM intervals WHERE id = $1`, id)
	if err != nil {
		return apperror.StoreUnavailable(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("interval %d not found", id)
	}
	return nil
}
