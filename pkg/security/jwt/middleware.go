package jwt

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/auth"
)

// Locals keys set by the middleware for downstream handlers.
const (
	LocalUserID = "userId"
	LocalUser   = "user"
)

// NewAuthMiddleware returns a Fiber middleware that resolves the
// Authorization header through the auth service and stores the resulting
// account in request locals. Failures map to 401 through the apperror kinds.
func NewAuthMiddleware(uc auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := uc.Authenticate(c.Context(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			appErr := apperror.From(err)
			return c.Status(appErr.StatusCode()).JSON(fiber.Map{"message": appErr.Message})
		}
		c.Locals(LocalUserID, user.ID.String())
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser extracts the authenticated account stored by the middleware.
func CurrentUser(c *fiber.Ctx) (auth.User, bool) {
	user, ok := c.Locals(LocalUser).(auth.User)
	return user, ok
}
