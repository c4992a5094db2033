package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BuildWithPundalik/Task-Manager-Backend/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. Task routes and
// the profile routes sit behind the auth middleware; /auth/verify performs
// its own authentication so its failure body can carry the valid flag.
func Register(app *fiber.App, auth *handlers.AuthHandler, tasks *handlers.TaskHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Get("/verify", auth.Verify)
	a.Get("/profile", authMW, auth.Profile)
	a.Put("/profile", authMW, auth.UpdateProfile)
	a.Put("/password", authMW, auth.ChangePassword)

	t := v1.Group("/tasks", authMW)
	t.Get("/", tasks.List)
	t.Get("/stats", tasks.Stats)
	t.Get("/:id", tasks.GetByID)
	t.Post("/", tasks.Create)
	t.Put("/:id", tasks.Update)
	t.Delete("/:id", tasks.Delete)
}
