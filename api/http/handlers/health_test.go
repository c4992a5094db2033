package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/BuildWithPundalik/Task-Manager-Backend/api/http/handlers"
	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/health"
)

type failingChecker struct{}

func (failingChecker) Name() string { return "postgres" }
func (failingChecker) Check(_ context.Context) error {
	return errors.New("dial tcp 127.0.0.1:5432: connection refused")
}

func newReadyApp(production bool) *fiber.App {
	app := fiber.New()
	h := handlers.NewHealthHandler(health.NewService(failingChecker{}), production)
	app.Get("/ready", h.Ready)
	return app
}

func TestReadyFailureDetails(t *testing.T) {
	t.Run("development includes details", func(t *testing.T) {
		resp, body := doJSON(t, newReadyApp(false), http.MethodGet, "/ready", "", nil)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		require.Equal(t, "not_ready", body["status"])
		require.Contains(t, body["details"], "connection refused")
	})

	t.Run("production omits details", func(t *testing.T) {
		resp, body := doJSON(t, newReadyApp(true), http.MethodGet, "/ready", "", nil)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		require.Equal(t, "not_ready", body["status"])
		_, hasDetails := body["details"]
		require.False(t, hasDetails, "failure internals must not leak in production")
	})
}
