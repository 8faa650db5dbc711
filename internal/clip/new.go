package clip

import (
	"github.com/Rako024/transcript-archive/internal/config"
	"github.com/Rako024/transcript-archive/internal/logger"
	"github.com/Rako024/transcript-archive/pkg/executor"
)

type implEngine struct {
	root        string
	ffmpegPath  string
	ffprobePath string
	executor    executor.Executor
	logger      logger.Logger
}

// New creates an Engine rooted at cfg.Root. exec runs the ffprobe
// pre-checks; the streaming ffmpeg process is managed directly.
func New(cfg config.ArchiveConfig, exec executor.Executor, log logger.Logger) Engine {
	return &implEngine{
		root:        cfg.Root,
		ffmpegPath:  cfg.FFmpegPath,
		ffprobePath: cfg.FFprobePath,
		executor:    exec,
		logger:      log,
	}
}
