package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rako024/transcript-archive/internal/clip"
	"github.com/Rako024/transcript-archive/internal/logger"
	"github.com/Rako024/transcript-archive/internal/metrics"
	"github.com/Rako024/transcript-archive/internal/search"
	"github.com/Rako024/transcript-archive/internal/store"
	"github.com/Rako024/transcript-archive/pkg/apperror"
)

// timestampLayouts are the accepted /analyze/ input forms: RFC 3339 plus the
// store-native renderings.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type Handler struct {
	search  search.Engine
	clips   clip.Engine
	store   store.Store
	metrics *metrics.Metrics
	logger  logger.Logger
}

func NewHandler(se search.Engine, ce clip.Engine, st store.Store, m *metrics.Metrics, log logger.Logger) *Handler {
	return &Handler{
		search:  se,
		clips:   ce,
		store:   st,
		metrics: m,
		logger:  log,
	}
}

type analyzeRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// Analyze handles POST /analyze/.
func (h *Handler) Analyze(c *gin.Context) {
	h.metrics.AnalyzeRequests.Inc()

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.InvalidInput("invalid request body: %v", err))
		return
	}

	start, err := parseTimestamp(req.StartTime)
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := parseTimestamp(req.EndTime)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.search.AnalyzeRange(c.Request.Context(), start, end)
	if err != nil {
		h.countFailure(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaryResponse{Summary: summary})
}

// Search handles GET /search/.
func (h *Handler) Search(c *gin.Context) {
	keyword := c.Query("keyword")

	result, err := h.search.SearchKeyword(c.Request.Context(), keyword)
	if err != nil {
		h.metrics.SearchRequests.WithLabelValues("error").Inc()
		h.countFailure(err)
		respondError(c, err)
		return
	}

	h.metrics.SearchRequests.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, result)
}

// VideoClip handles GET /video_clip/. The response body is ffmpeg's stdout;
// once the first byte is written a subprocess failure can no longer change
// the status line, it is only logged.
func (h *Handler) VideoClip(c *gin.Context) {
	videoFile := c.Query("video_file")
	if videoFile == "" {
		h.metrics.ClipRequests.WithLabelValues("error").Inc()
		respondError(c, apperror.InvalidInput("video_file is required"))
		return
	}

	start, err := parseFloatParam(c.Query("start"), "start")
	if err != nil {
		h.metrics.ClipRequests.WithLabelValues("error").Inc()
		respondError(c, err)
		return
	}
	duration, err := parseFloatParam(c.Query("duration"), "duration")
	if err != nil {
		h.metrics.ClipRequests.WithLabelValues("error").Inc()
		respondError(c, err)
		return
	}

	stream, err := h.clips.Extract(c.Request.Context(), videoFile, start, duration)
	if err != nil {
		h.metrics.ClipRequests.WithLabelValues("error").Inc()
		respondError(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "video/mp4")
	c.Status(http.StatusOK)

	n, err := io.Copy(c.Writer, stream)
	h.metrics.ClipBytesStreamed.Add(float64(n))
	if err != nil {
		// Usually the client going away mid-stream.
		h.logger.Debug(c.Request.Context(), "Clip stream ended early after %d bytes: %v", n, err)
		h.metrics.ClipRequests.WithLabelValues("aborted").Inc()
		return
	}

	h.metrics.ClipRequests.WithLabelValues("ok").Inc()
}

// ListIntervals handles GET /schedule/.
func (h *Handler) ListIntervals(c *gin.Context) {
	intervals, err := h.store.ListIntervals(c.Request.Context())
	if err != nil {
		h.countFailure(err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, intervals)
}

type intervalRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// CreateInterval handles POST /schedule/.
func (h *Handler) CreateInterval(c *gin.Context) {
	var req intervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.InvalidInput("invalid request body: %v", err))
		return
	}

	interval, err := h.store.CreateInterval(c.Request.Context(), req.StartTime, req.EndTime)
	if err != nil {
		h.countFailure(err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interval)
}

// DeleteInterval handles DELETE /schedule/:id.
func (h *Handler) DeleteInterval(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperror.InvalidInput("interval id must be an integer"))
		return
	}

	if err := h.store.DeleteInterval(c.Request.Context(), id); err != nil {
		h.countFailure(err)
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// countFailure feeds the dependency-failure counters.
func (h *Handler) countFailure(err error) {
	var (
		storeErr *apperror.StoreUnavailableError
		summErr  *apperror.SummarizationError
	)
	switch {
	case errors.As(err, &storeErr):
		h.metrics.StoreErrors.Inc()
	case errors.As(err, &summErr):
		h.metrics.SummarizeErrors.Inc()
	}
}

func parseTimestamp(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, apperror.InvalidInput("start_time and end_time are required")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, apperror.InvalidInput("timestamp %q is not RFC 3339 or %q", v, "2006-01-02 15:04:05")
}

func parseFloatParam(v, name string) (float64, error) {
	if v == "" {
		return 0, apperror.InvalidInput("%s is required", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, apperror.InvalidInput("%s must be a number", name)
	}
	return f, nil
}
