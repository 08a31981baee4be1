package handler

import (
	"errors"
	"strings"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/profile"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	profiles usecase.ProfileResolver
}

func NewUserHandler(profiles usecase.ProfileResolver) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// RegisterRoutes mounts the identity routes. optionalAuth must let anonymous
// requests through.
func (h *UserHandler) RegisterRoutes(r fiber.Router, auth, optionalAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/check-auth", optionalAuth, h.CheckAuth)
	r.Get("/user/:id", auth, h.GetUser)
}

// CheckAuth never fails: an anonymous caller gets isAuthenticated false and
// an unresolvable profile falls back to the placeholder.
func (h *UserHandler) CheckAuth(c fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)
	if actor.IsZero() {
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AuthStatusResponse{})
	}

	p, err := h.profiles.Resolve(c.Context(), actor.String())
	if err != nil {
		p = profile.Unknown(actor.String())
	}

	user := dto.NewUserResponse(p)
	user.Email = middleware.EmailFromCtx(c)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AuthStatusResponse{
		IsAuthenticated: true,
		User:            &user,
	})
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	p, err := h.profiles.Resolve(c.Context(), id)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(p))
}

// mapProfileError reports every directory failure other than an unknown id
// as retryable.
func mapProfileError(err error) error {
	if errors.Is(err, profile.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	}
	return middleware.NewAppError(fiber.StatusServiceUnavailable, "Identity provider unavailable, retry later", nil, err)
}
