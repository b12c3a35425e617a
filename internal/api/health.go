package api

import (
	"context"
	"net/http"
	"time"
)

// healthResponse reports overall status plus per-dependency results.
type healthResponse struct {
	Status      string            `json:"status"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Uptime      string            `json:"uptime"`
	Services    map[string]string `json:"services"`
}

// handleHealth pings Postgres and Redis with a short deadline. A failed
// dependency degrades the status but still answers 200 so load balancers can
// read the detail, unless the database itself is down.
func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	services := map[string]string{
		"database": "up",
		"cache":    "up",
	}
	status := "healthy"
	httpStatus := http.StatusOK

	if rt.pg != nil {
		if err := rt.pg.Ping(ctx); err != nil {
			services["database"] = "down"
			status = "unhealthy"
			httpStatus = http.StatusServiceUnavailable
		}
	}
	if rt.redis != nil {
		if err := rt.redis.Ping(ctx); err != nil {
			services["cache"] = "down"
			if status == "healthy" {
				status = "degraded"
			}
		}
	}

	rt.writeJSON(w, httpStatus, healthResponse{
		Status:      status,
		Version:     rt.cfg.App.Version,
		Environment: rt.cfg.App.Environment,
		Uptime:      time.Since(rt.startedAt).Round(time.Second).String(),
		Services:    services,
	})
}
