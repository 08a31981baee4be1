package routes

import (
	"jobboard/internal/delivery/http/handler"
	v1 "jobboard/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health       *handler.HealthHandler
	jobs         *handler.JobsHandler
	users        *handler.UserHandler
	auth         fiber.Handler
	optionalAuth fiber.Handler
}

func NewRegistry(health *handler.HealthHandler, jobs *handler.JobsHandler, users *handler.UserHandler, auth, optionalAuth fiber.Handler) *Registry {
	return &Registry{health: health, jobs: jobs, users: users, auth: auth, optionalAuth: optionalAuth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.jobs, r.users, r.auth, r.optionalAuth)
}
