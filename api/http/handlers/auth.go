package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/BuildWithPundalik/Task-Manager-Backend/api/http/presenter"
	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/auth"
	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/security/jwt"
)

type AuthHandler struct {
	useCase    auth.UseCase
	production bool
}

func NewAuthHandler(useCase auth.UseCase, production bool) *AuthHandler {
	return &AuthHandler{useCase: useCase, production: production}
}

// userPayload is the only shape user data ever leaves the API in; the
// password hash has no path into it.
func userPayload(u auth.User) fiber.Map {
	return fiber.Map{
		"id":    u.ID.String(),
		"name":  u.Name,
		"email": u.Email,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := checkRequest(req); err != nil {
		return presenter.AppError(c, err, h.production)
	}

	result, err := h.useCase.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"message": "User created successfully",
		"token":   result.Token,
		"user":    userPayload(result.User),
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := checkRequest(req); err != nil {
		return presenter.AppError(c, err, h.production)
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "Login successful",
		"token":   result.Token,
		"user":    userPayload(result.User),
	})
}

// Profile returns the authenticated user's public fields.
// @Summary Get profile
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, ok := jwt.CurrentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "User not authenticated")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "Profile retrieved successfully",
		"user":    userPayload(user),
	})
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

// UpdateProfile changes name and/or email of the authenticated user.
// @Summary Update profile
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body updateProfileRequest true "fields to change"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := jwt.CurrentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "User not authenticated")
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := checkRequest(req); err != nil {
		return presenter.AppError(c, err, h.production)
	}

	updated, err := h.useCase.UpdateProfile(c.Context(), user.ID, req.Name, req.Email)
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "Profile updated successfully",
		"user":    userPayload(updated),
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// ChangePassword re-verifies the current password before rehashing.
// @Summary Change password
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body changePasswordRequest true "current and new password"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := jwt.CurrentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "User not authenticated")
	}
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := checkRequest(req); err != nil {
		return presenter.AppError(c, err, h.production)
	}

	if err := h.useCase.ChangePassword(c.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "Password updated successfully",
	})
}

// Verify authenticates the Authorization header itself so the failure body
// can carry the valid flag, unlike middleware-guarded routes.
// @Summary Verify token
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router  /auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	user, err := h.useCase.Authenticate(c.Context(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return presenter.JSON(c, http.StatusUnauthorized, fiber.Map{
			"valid":   false,
			"message": apperror.From(err).Message,
		})
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"valid":   true,
		"message": "Token is valid",
		"user":    userPayload(user),
	})
}
