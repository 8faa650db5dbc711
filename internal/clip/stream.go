package clip

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/Rako024/transcript-archive/internal/logger"
)

const killGracePeriod = 5 * time.Second

// stream is the live remux subprocess exposed as a ReadCloser. Reads come
// straight off ffmpeg's stdout; Close terminates the process group if it is
// still running and always reaps it.
type stream struct {
	ctx    context.Context
	cancel context.CancelFunc
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr *bytes.Buffer
	logger logger.Logger

	closeOnce sync.Once
	closeErr  error
}

// startStream spawns ffmpeg with its stdout attached before returning, so
// the first response byte can only follow a fully started process. The
// process runs in its own group; cancellation sends SIGTERM to the group and
// escalates to SIGKILL after the grace period.
func (e *implEngine) startStream(ctx context.Context, path string, start, duration float64) (io.ReadCloser, error) {
	procCtx, cancel := context.WithCancel(ctx)

	cmd := exec.CommandContext(procCtx, e.ffmpegPath, remuxArgs(path, start, duration)...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM); err != nil {
			// Group already gone: the stream was consumed to completion.
			return os.ErrProcessDone
		}
		return nil
	}
	cmd.WaitDelay = killGracePeriod

	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("attach stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}

	e.logger.Debug(ctx, "ffmpeg started (pid=%d): clip %s +%.2fs/%.2fs",
		cmd.Process.Pid, path, start, duration)

	return &stream{
		ctx:    ctx,
		cancel: cancel,
		cmd:    cmd,
		stdout: stdout,
		stderr: stderr,
		logger: e.logger,
	}, nil
}

func (s *stream) Read(p []byte) (int, error) {
	return s.stdout.Read(p)
}

// Close tears the subprocess down on every exit path: a client that read to
// EOF reaps a finished process, a client that disconnected early SIGTERMs a
// running one. Wait also closes the stdout pipe. A non-zero exit after bytes
// went out cannot change the response anymore, so it is logged.
func (s *stream) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		err := s.cmd.Wait()
		if err == nil {
			return
		}
		if s.ctx.Err() != nil {
			// Killed because the caller went away; expected.
			s.logger.Debug(s.ctx, "ffmpeg terminated after client disconnect: %v", err)
			return
		}
		s.logger.Error(s.ctx, "ffmpeg exited with error after streaming began: %v; stderr: %s",
			err, truncate(s.stderr.String(), 512))
		s.closeErr = fmt.Errorf("ffmpeg: %w", err)
	})
	return s.closeErr
}

func truncate(v string, n int) string {
	if len(v) <= n {
		return v
	}
	return v[:n] + "..."
}
