package clip

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Rako024/transcript-archive/internal/config"
	"github.com/Rako024/transcript-archive/internal/logger"
	"github.com/Rako024/transcript-archive/pkg/apperror"
)

type fakeExecutor struct {
	out      string
	err      error
	calls    int
	lastName string
	lastArgs []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls++
	f.lastName = name
	f.lastArgs = args
	return f.out, f.err
}

func newTestEngine(t *testing.T, probe *fakeExecutor, ffmpegPath string) (Engine, string) {
	t.Helper()
	root := t.TempDir()
	cfg := config.ArchiveConfig{
		Root:        root,
		FFmpegPath:  ffmpegPath,
		FFprobePath: "ffprobe",
	}
	return New(cfg, probe, logger.New("error")), root
}

func writeSegment(t *testing.T, root, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte("ts-bytes"), 0644); err != nil {
		t.Fatal(err)
	}
}

// fakeFFmpeg writes a small shell script standing in for ffmpeg.
func fakeFFmpeg(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractRejectsTraversal(t *testing.T) {
	probe := &fakeExecutor{out: "30.0"}
	e, _ := newTestEngine(t, probe, "ffmpeg")

	_, err := e.Extract(context.Background(), "../../etc/passwd", 0, 5)
	if !apperror.IsInvalidInput(err) {
		t.Errorf("Extract() error = %v, want InvalidInputError", err)
	}
	if probe.calls != 0 {
		t.Error("subprocess issued for a traversal path")
	}
}

func TestExtractMissingFile(t *testing.T) {
	probe := &fakeExecutor{out: "30.0"}
	e, _ := newTestEngine(t, probe, "ffmpeg")

	_, err := e.Extract(context.Background(), "seg_404.ts", 0, 5)
	if !apperror.IsNotFound(err) {
		t.Errorf("Extract() error = %v, want NotFoundError", err)
	}
	if probe.calls != 0 {
		t.Error("subprocess issued for a missing file")
	}
}

func TestExtractInvalidWindow(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		duration float64
	}{
		{"negative start", -1, 5},
		{"zero duration", 0, 0},
		{"negative duration", 0, -3},
	}

	probe := &fakeExecutor{out: "30.0"}
	e, root := newTestEngine(t, probe, "ffmpeg")
	writeSegment(t, root, "seg_001.ts")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(context.Background(), "seg_001.ts", tt.start, tt.duration)
			if !apperror.IsInvalidInput(err) {
				t.Errorf("Extract() error = %v, want InvalidInputError", err)
			}
		})
	}
	if probe.calls != 0 {
		t.Error("subprocess issued for an invalid window")
	}
}

func TestExtractStartBeyondDuration(t *testing.T) {
	probe := &fakeExecutor{out: "30.0\n"}
	e, root := newTestEngine(t, probe, "ffmpeg")
	writeSegment(t, root, "seg_001.ts")

	_, err := e.Extract(context.Background(), "seg_001.ts", 35, 5)
	if !apperror.IsInvalidInput(err) {
		t.Errorf("Extract() error = %v, want InvalidInputError", err)
	}
	if probe.calls != 1 || probe.lastName != "ffprobe" {
		t.Errorf("probe calls = %d via %q, want one ffprobe call", probe.calls, probe.lastName)
	}
}

func TestExtractUnreadableContainer(t *testing.T) {
	probe := &fakeExecutor{err: errors.New("moov atom not found")}
	e, root := newTestEngine(t, probe, "ffmpeg")
	writeSegment(t, root, "seg_001.ts")

	_, err := e.Extract(context.Background(), "seg_001.ts", 0, 5)
	if !apperror.IsInvalidInput(err) {
		t.Errorf("Extract() error = %v, want InvalidInputError", err)
	}
}

func TestRemuxArgs(t *testing.T) {
	args := remuxArgs("/archive/seg_001.ts", 10, 5)

	want := []string{
		"-ss", "10",
		"-i", "/archive/seg_001.ts",
		"-t", "5",
		"-c", "copy",
		"-bsf:a", "aac_adtstoasc",
		"-movflags", "frag_keyframe+empty_moov",
		"-f", "mp4",
		"pipe:1",
	}
	if len(args) != len(want) {
		t.Fatalf("len(args) = %d, want %d: %v", len(args), len(want), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestRemuxArgsFractionalSeconds(t *testing.T) {
	args := remuxArgs("x.ts", 12.5, 4.25)
	if args[1] != "12.5" || args[5] != "4.25" {
		t.Errorf("fractional seconds formatted as %q/%q", args[1], args[5])
	}
}

func TestExtractStreamsSubprocessOutput(t *testing.T) {
	script := fakeFFmpeg(t, `printf 'MP4DATA'`)
	probe := &fakeExecutor{out: "30.0"}
	e, root := newTestEngine(t, probe, script)
	writeSegment(t, root, "seg_001.ts")

	rc, err := e.Extract(context.Background(), "seg_001.ts", 10, 5)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "MP4DATA" {
		t.Errorf("stream = %q, want %q", data, "MP4DATA")
	}

	if err := rc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestExtractClientDisconnectKillsSubprocess(t *testing.T) {
	script := fakeFFmpeg(t, `printf 'X'
sleep 30`)
	probe := &fakeExecutor{out: "30.0"}
	e, root := newTestEngine(t, probe, script)
	writeSegment(t, root, "seg_001.ts")

	ctx, cancel := context.WithCancel(context.Background())
	rc, err := e.Extract(ctx, "seg_001.ts", 0, 5)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	buf := make([]byte, 1)
	if _, err := io.ReadFull(rc, buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	cancel()
	if err := rc.Close(); err != nil {
		t.Errorf("Close() after disconnect error = %v", err)
	}
}
