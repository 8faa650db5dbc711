package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Rako024/transcript-archive/internal/logger"
	"github.com/Rako024/transcript-archive/internal/metrics"
)

// NewRouter wires the archive API routes. Trailing slashes match the paths
// the dashboard already calls.
func NewRouter(h *Handler, m *metrics.Metrics, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(log))

	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.POST("/analyze/", h.Analyze)
	router.GET("/search/", h.Search)
	router.GET("/video_clip/", h.VideoClip)

	schedule := router.Group("/schedule")
	{
		schedule.GET("/", h.ListIntervals)
		schedule.POST("/", h.CreateInterval)
		schedule.DELETE("/:id", h.DeleteInterval)
	}

	return router
}
