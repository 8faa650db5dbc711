package store

import "time"

// TranscriptSegment is one row of the transcripts table: a transcribed unit
// of speech tied to a media file in the archive. OffsetSecs and DurationSecs
// locate the speech inside SegmentFilename.
type TranscriptSegment struct {
	StartTime       time.Time
	EndTime         time.Time
	Text            string
	SegmentFilename string
	OffsetSecs      float64
	DurationSecs    float64
}

// Interval is a daily recording window consumed by the dispatcher.
type Interval struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
