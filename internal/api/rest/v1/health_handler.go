package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PingFunc checks that the database answers
type PingFunc func(ctx context.Context) error

const healthPingTimeout = 2 * time.Second

// HealthHandler reports liveness together with database reachability
type HealthHandler interface {
	Health(ctx *gin.Context)
}

type healthHandler struct {
	ping PingFunc
	log  logger.Logger
}

// NewHealthHandler creates a HealthHandler
func NewHealthHandler(ping PingFunc, log logger.Logger) HealthHandler {
	return &healthHandler{ping: ping, log: log}
}

func (h *healthHandler) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.ping(pingCtx); err != nil {
		h.log.Warn(fmt.Sprintf("health check: database unavailable: %v", err))
		ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "error", Database: "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
