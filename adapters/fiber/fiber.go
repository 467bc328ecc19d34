package fiber

import (
	"github.com/gofiber/fiber/v3"
	"github.com/lborres/lawang"
)

type Adapter struct {
	app  *fiber.App
	auth lawang.AuthProvider
}

var _ lawang.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(l *lawang.Lawang) error {
	a.auth = l.Auth

	api := a.app.Group(l.BasePath)

	// Public routes
	api.Post("/register", a.register)
	api.Post("/login", a.login)
	api.Get("/health", a.health)

	// Protected routes, middleware first so handlers see claims
	api.Get("/me", a.requireAuth, a.me)

	return nil
}
