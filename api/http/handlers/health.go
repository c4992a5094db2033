package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc        health.ReadinessUseCase
	production bool
}

func NewHealthHandler(svc health.ReadinessUseCase, production bool) *HealthHandler {
	return &HealthHandler{svc: svc, production: production}
}

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "Task Manager API is running",
	})
}

// Ready: readiness check with DB ping.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		body := fiber.Map{"status": "not_ready"}
		if !h.production {
			body["details"] = err.Error()
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
