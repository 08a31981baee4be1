package middleware

import (
	"errors"
	"strings"

	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxActorIDKey = "actor_id"
	CtxEmailKey   = "email"
)

// TokenValidator verifies a session token.
type TokenValidator interface {
	ValidateToken(tokenString string) (jwt.Claims, error)
}

type AuthMiddleware struct {
	jwt TokenValidator
}

func NewAuthMiddleware(v TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{jwt: v}
}

// Middleware rejects requests without a valid bearer token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Not authorized", nil, job.ErrUnauthenticated)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxActorIDKey, job.ActorID(claims.ActorID()))
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

// OptionalMiddleware identifies the caller when a valid bearer token is
// present and lets every other request through as anonymous.
func (m *AuthMiddleware) OptionalMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return c.Next()
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			return c.Next()
		}

		c.Locals(CtxActorIDKey, job.ActorID(claims.ActorID()))
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

// EmailFromCtx returns the email claim of the authenticated caller, if any.
func EmailFromCtx(c fiber.Ctx) string {
	email, _ := c.Locals(CtxEmailKey).(string)
	return email
}

// ActorFromCtx returns the authenticated actor, or the zero id when the
// request is anonymous.
func ActorFromCtx(c fiber.Ctx) job.ActorID {
	actor, _ := c.Locals(CtxActorIDKey).(job.ActorID)
	return actor
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
