package handler

import (
	"context"
	"time"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is a dependency checked by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	storage Pinger
	cache   Pinger
}

// NewHealthHandler builds the probes. A nil storage pinger means in-memory
// storage; a nil cache pinger means caching is off.
func NewHealthHandler(storage, cache Pinger) *HealthHandler {
	return &HealthHandler{storage: storage, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Live)
	r.Get("/health/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// Ready fails only when storage is unreachable. The cache is reported but
// never blocks readiness.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"storage": "memory", "cache": "disabled"}

	if h.storage != nil {
		if err := h.storage.Ping(ctx); err != nil {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
		}
		status["storage"] = "up"
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			status["cache"] = "bypassed"
		} else {
			status["cache"] = "up"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
