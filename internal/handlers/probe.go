package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// ReadinessChecker reports whether a dependency can serve traffic.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	checker ReadinessChecker
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(checker ReadinessChecker) *ProbeHandler {
	return &ProbeHandler{checker: checker}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the cache store is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.checker.Ready(c.Context()); err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "cache store unavailable")
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
