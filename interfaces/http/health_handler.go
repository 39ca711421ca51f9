package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type IHealthHandler interface {
	Health(c *gin.Context)
}

type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler takes the datastore ping so liveness reflects mongo
// reachability; a nil ping reports healthy unconditionally.
func NewHealthHandler(ping func(ctx context.Context) error) IHealthHandler {
	return &HealthHandler{ping: ping}
}

func (h *HealthHandler) Health(c *gin.Context) {
	mongoStatus := "ok"
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			mongoStatus = "unreachable"
		}
	}
	if mongoStatus != "ok" {
		respond(c, http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": mongoStatus}, "Service is degraded")
		return
	}
	respond(c, http.StatusOK, gin.H{"status": "ok", "mongo": mongoStatus}, "Service is healthy")
}
