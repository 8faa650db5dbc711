// Package metrics exposes the service counters on a dedicated registry,
// mirroring what the transcription dispatcher reports on its side.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	SearchRequests    *prometheus.CounterVec
	AnalyzeRequests   prometheus.Counter
	ClipRequests      *prometheus.CounterVec
	SummarizeErrors   prometheus.Counter
	StoreErrors       prometheus.Counter
	ClipBytesStreamed prometheus.Counter
}

// New builds the counter set on a fresh registry so tests never collide on
// the global one.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		SearchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Keyword search requests by outcome.",
		}, []string{"outcome"}),
		AnalyzeRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "analyze_requests_total",
			Help: "Time-range analysis requests.",
		}),
		ClipRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clip_requests_total",
			Help: "Clip extraction requests by outcome.",
		}, []string{"outcome"}),
		SummarizeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "summarize_errors_total",
			Help: "Failed summarization calls.",
		}),
		StoreErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Transcript store failures.",
		}),
		ClipBytesStreamed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clip_bytes_streamed_total",
			Help: "Bytes of clip output written to clients.",
		}),
	}

	reg.MustRegister(
		m.SearchRequests,
		m.AnalyzeRequests,
		m.ClipRequests,
		m.SummarizeErrors,
		m.StoreErrors,
		m.ClipBytesStreamed,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
