package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RegisterRoutes registers the API endpoints:
//
//	POST /api/runs            - run a simulation
//	GET  /download/:filename  - download a result file
//	GET  /graph               - the run's graph as DOT
//	GET  /health              - liveness
func RegisterRoutes(r gin.IRouter, h *Handlers) {
	r.POST("/api/runs", h.HandleRun)
	r.GET("/download/:filename", h.HandleDownload)
	r.GET("/graph", h.HandleGraph)
	r.GET("/health", h.HandleHealth)
}

// NewRouter builds a gin engine with recovery, request IDs and request
// logging in front of the API.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	RegisterRoutes(router, h)

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		slog.Info("request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDHeader)
}
