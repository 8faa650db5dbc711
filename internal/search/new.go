package search

import (
	"github.com/Rako024/transcript-archive/internal/logger"
	"github.com/Rako024/transcript-archive/internal/store"
	"github.com/Rako024/transcript-archive/internal/summarizer"
)

type implEngine struct {
	store      store.Store
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates an Engine over the given store and summarizer.
func New(st store.Store, sum summarizer.Summarizer, log logger.Logger) Engine {
	return &implEngine{
		store:      st,
		summarizer: sum,
		logger:     log,
	}
}
