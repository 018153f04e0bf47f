package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything that can report liveness (the session store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Reachability probes the portfolio backend.
type Reachability interface {
	Reachable(ctx context.Context) bool
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Sessions  string    `json:"sessions,omitempty"`
	Backend   string    `json:"backend,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	sessions    Pinger
	backend     Reachability
}

func NewHealthHandler(serviceName, version string, sessions Pinger, backend Reachability) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		sessions:    sessions,
		backend:     backend,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	sessionStatus := "disabled"
	if h.sessions != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.sessions.Ping(pingCtx); err != nil {
			sessionStatus = "down"
		} else {
			sessionStatus = "up"
		}
	}

	backendStatus := "disabled"
	if h.backend != nil {
		probeCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if h.backend.Reachable(probeCtx) {
			backendStatus = "up"
		} else {
			backendStatus = "down"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Sessions:  sessionStatus,
		Backend:   backendStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
