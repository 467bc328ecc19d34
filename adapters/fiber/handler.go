package fiber

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/lborres/lawang"
)

// register handles POST {base}/register
func (a *Adapter) register(c fiber.Ctx) error {
	var input lawang.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.Register(c.Context(), input)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(result)
}

// login handles POST {base}/login
func (a *Adapter) login(c fiber.Ctx) error {
	var input lawang.LoginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.Login(c.Context(), input)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// health handles GET {base}/health with a store connectivity probe
func (a *Adapter) health(c fiber.Ctx) error {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := a.auth.Health(c.Context()); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"status":    "error",
			"database":  "disconnected",
			"timestamp": timestamp,
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":    "ok",
		"database":  "connected",
		"timestamp": timestamp,
	})
}

// me returns the claims of the authenticated caller
func (a *Adapter) me(c fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*lawang.Claims)
	if !ok {
		return handleAuthError(c, lawang.ErrMissingAuthHeader)
	}
	return c.Status(http.StatusOK).JSON(claims)
}

// handleAuthError maps authentication errors to appropriate HTTP responses
func handleAuthError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		// Don't leak store internals to clients
		return c.Status(status).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps lawang error types to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, lawang.ErrDuplicateEmail):
		return http.StatusConflict

	case errors.Is(err, lawang.ErrInvalidCredentials),
		errors.Is(err, lawang.ErrMissingAuthHeader),
		errors.Is(err, lawang.ErrInvalidToken),
		errors.Is(err, lawang.ErrTokenExpired):
		return http.StatusUnauthorized

	case errors.Is(err, lawang.ErrUsernameRequired),
		errors.Is(err, lawang.ErrEmailRequired),
		errors.Is(err, lawang.ErrPasswordRequired),
		errors.Is(err, lawang.ErrPasswordTooShort):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
