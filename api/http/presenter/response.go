package presenter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
)

// ErrorResponse is the uniform error body. Errors lists per-field validation
// messages; Error carries internal detail and is populated only outside
// production.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// AppError maps a service failure to its HTTP status deterministically.
func AppError(c *fiber.Ctx, err error, production bool) error {
	appErr := apperror.From(err)
	resp := ErrorResponse{Message: appErr.Message, Errors: appErr.Fields}
	if !production && appErr.Err != nil {
		resp.Error = appErr.Err.Error()
	}
	return JSON(c, appErr.StatusCode(), resp)
}
