// Package http contains operational HTTP handlers
package http

import (
	"encoding/json"
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Handler serves liveness information
type Handler struct {
	service string
	started time.Time
	now     func() time.Time
}

// NewHandler creates a health handler for the named service
func NewHandler(service string) *Handler {
	return &Handler{
		service: service,
		started: time.Now(),
		now:     time.Now,
	}
}

// Register adds the health route
func (h *Handler) Register(r *router.Router) {
	r.GET("/health", h.Health)
}

// Health writes the liveness response
func (h *Handler) Health(ctx *fasthttp.RequestCtx) {
	body, err := json.Marshal(HealthResponse{
		Status:        "ok",
		Service:       h.service,
		UptimeSeconds: int64(h.now().Sub(h.started).Seconds()),
	})
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}
