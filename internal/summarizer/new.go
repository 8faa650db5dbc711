package summarizer

import (
	"net/http"
	"sync"
	"time"

	"github.com/Rako024/transcript-archive/internal/config"
	"github.com/Rako024/transcript-archive/internal/logger"
)

type implSummarizer struct {
	apiURL string
	apiKey string
	client *http.Client
	logger logger.Logger

	mu       sync.RWMutex
	tunables config.SummarizerConfig
}

// New creates a Summarizer talking to the configured OpenAI-compatible
// completion endpoint. A single attempt per call; the HTTP client carries
// the configured timeout.
func New(cfg config.SummarizerConfig, log logger.Logger) Tunable {
	return &implSummarizer{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger:   log,
		tunables: cfg,
	}
}

// SetTunables swaps the reloadable knobs (model, max tokens, temperature).
// Endpoint and credential stay fixed for the process lifetime.
func (s *implSummarizer) SetTunables(cfg config.SummarizerConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tunables.Model = cfg.Model
	s.tunables.MaxTokens = cfg.MaxTokens
	s.tunables.Temperature = cfg.Temperature
}

func (s *implSummarizer) snapshot() config.SummarizerConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tunables
}
