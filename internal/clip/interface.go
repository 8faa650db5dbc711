package clip

import (
	"context"
	"io"
)

// Engine extracts time-bounded MP4 clips from archived segment files by
// remuxing, never re-encoding.
type Engine interface {
	// Extract spawns the remux subprocess for [start, start+duration) of
	// videoFile (relative to the archive root) and returns its output as a
	// stream. The caller must Close the stream: Close terminates the
	// subprocess if it is still running and reaps it in every case.
	Extract(ctx context.Context, videoFile string, start, duration float64) (io.ReadCloser, error)
}
