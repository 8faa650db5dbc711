package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// defaultTimeout bounds a single probe. A hung ffprobe on a truncated
// segment must not pin a request goroutine indefinitely.
const defaultTimeout = 15 * time.Second

type implExecutor struct {
	timeout time.Duration
}

// New creates an Executor with the default per-command timeout.
func New() Executor {
	return &implExecutor{timeout: defaultTimeout}
}

// NewWithTimeout creates an Executor that kills commands after d.
func NewWithTimeout(d time.Duration) Executor {
	return &implExecutor{timeout: d}
}

// Execute runs the command and returns its stdout. On failure the error
// carries the trailing stderr so callers can log what the tool reported.
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > 512 {
			msg = msg[len(msg)-512:]
		}
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return stdout.String(), nil
}
