package v1

import (
	"jobboard/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, jobs *handler.JobsHandler, users *handler.UserHandler, auth, optionalAuth fiber.Handler) {
	if r == nil {
		return
	}

	RegisterJobs(r, jobs, auth)
	RegisterUsers(r, users, auth, optionalAuth)
}
