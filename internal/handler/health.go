package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

// Pinger is what readiness needs from a customer source. Local to the handler
// package so tests can stub it without a repository.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	source  Pinger
	started time.Time
}

func NewHealthHandler(source Pinger) *HealthHandler {
	return &HealthHandler{source: source, started: time.Now()}
}

// Liveness never touches the source; a slow database must not get the pod killed.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// Readiness answers 503 while the customer source cannot be reached within readinessTimeout.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	start := time.Now()
	err := h.source.Ping(ctx)
	took := time.Since(start).Milliseconds()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "unavailable",
			"error":      err.Error(),
			"latency_ms": took,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "latency_ms": took})
}
