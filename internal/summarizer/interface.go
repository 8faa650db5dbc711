package summarizer

import (
	"context"

	"github.com/Rako024/transcript-archive/internal/config"
)

// Summarizer condenses matched transcript text via the external completion
// API. keyword is empty for time-range summaries and set for keyword
// searches, which focuses the instruction on the searched term.
type Summarizer interface {
	Summarize(ctx context.Context, fullText, keyword string) (string, error)
}

// Tunable is a Summarizer that accepts hot-reloaded generation settings.
type Tunable interface {
	Summarizer
	SetTunables(cfg config.SummarizerConfig)
}
