package clip

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Rako024/transcript-archive/pkg/apperror"
)

func (e *implEngine) Extract(ctx context.Context, videoFile string, start, duration float64) (io.ReadCloser, error) {
	if start < 0 {
		return nil, apperror.InvalidInput("start must be >= 0")
	}
	if duration <= 0 {
		return nil, apperror.InvalidInput("duration must be > 0")
	}

	path, err := e.resolve(videoFile)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		return nil, apperror.NotFound("segment %q not found", videoFile)
	}

	// Probe before spawning the stream: once bytes are in flight a failure
	// cannot change the response status, so catch unreadable containers and
	// out-of-range seeks here.
	fileDur, err := e.probeDuration(ctx, path)
	if err != nil {
		return nil, apperror.InvalidInput("segment %q is not a readable media file", videoFile)
	}
	if start >= fileDur {
		return nil, apperror.InvalidInput("start %.2fs is beyond the segment duration %.2fs", start, fileDur)
	}

	return e.startStream(ctx, path, start, duration)
}

// resolve joins videoFile against the archive root and rejects anything that
// escapes it.
func (e *implEngine) resolve(videoFile string) (string, error) {
	root, err := filepath.Abs(e.root)
	if err != nil {
		return "", fmt.Errorf("resolve archive root: %w", err)
	}

	path := filepath.Join(root, videoFile)
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", apperror.InvalidInput("video_file escapes the archive root")
	}

	return path, nil
}

// probeDuration asks ffprobe for the container duration in seconds.
func (e *implEngine) probeDuration(ctx context.Context, path string) (float64, error) {
	out, err := e.executor.Execute(ctx, e.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	dur, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", out, err)
	}
	return dur, nil
}

// remuxArgs builds the ffmpeg invocation. The seek sits before -i so ffmpeg
// jumps to the keyframe without decoding skipped frames; streams are copied,
// ADTS audio is reframed for MP4, and fragmented-MOV flags let a valid
// header go out through the pipe before the total length is known.
func remuxArgs(path string, start, duration float64) []string {
	return []string{
		"-ss", formatSecs(start),
		"-i", path,
		"-t", formatSecs(duration),
		"-c", "copy",
		"-bsf:a", "aac_adtstoasc",
		"-movflags", "frag_keyframe+empty_moov",
		"-f", "mp4",
		"pipe:1",
	}
}

func formatSecs(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
