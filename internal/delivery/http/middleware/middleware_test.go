package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logging.NewNop()).Middleware())
	app.Use(NewErrorMiddleware(logging.NewNop()).Middleware())
	for _, h := range handlers {
		app.Use(h)
	}
	return app
}

func decode(t *testing.T, resp *http.Response) response.SemanticResponse {
	t.Helper()
	defer resp.Body.Close()
	var out response.SemanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := map[string]bool{
		"":              false,
		"Bearer":        false,
		"Bearer ":       false,
		"Basic abc":     false,
		"Bearer abc":    true,
		"bearer  abc  ": true,
		"Bearer a b":    true,
	}
	for in, ok := range cases {
		_, got := bearerTokenFromHeader(in)
		assert.Equal(t, ok, got, "header %q", in)
	}
}

func TestAuthMiddleware_SetsActor(t *testing.T) {
	svc := jwt.NewHMACService("secret", "", time.Hour)
	app := newApp()
	app.Get("/me", NewAuthMiddleware(svc).Middleware(), func(c fiber.Ctx) error {
		return c.SendString(ActorFromCtx(c).String())
	})

	tok, err := svc.GenerateAccessToken("user_42", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	svc := jwt.NewHMACService("secret", "", time.Minute)
	app := newApp()
	app.Get("/me", NewAuthMiddleware(svc).Middleware(), func(c fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	expired := jwt.NewHMACService("secret", "", time.Nanosecond)
	tok, err := expired.GenerateAccessToken("user_42", "")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	for name, header := range map[string]string{
		"missing": "",
		"garbage": "Bearer not-a-token",
		"expired": "Bearer " + tok,
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set(fiber.HeaderAuthorization, header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		body := decode(t, resp)
		assert.Equal(t, http.StatusUnauthorized, body.Status, name)
	}
}

func TestOptionalMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("secret", "", time.Hour)
	app := newApp()
	app.Get("/who", NewAuthMiddleware(svc).OptionalMiddleware(), func(c fiber.Ctx) error {
		return c.SendString(ActorFromCtx(c).String() + "|" + EmailFromCtx(c))
	})

	tok, err := svc.GenerateAccessToken("user_7", "u7@example.com")
	require.NoError(t, err)

	cases := map[string]string{
		"":                   "|",
		"Bearer garbage":     "|",
		"Basic dXNlcjpwYXNz": "|",
		"Bearer " + tok:      "user_7|u7@example.com",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		if header != "" {
			req.Header.Set(fiber.HeaderAuthorization, header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, "header %q", header)
		assert.Equal(t, want, string(body), "header %q", header)
	}
}

func TestActorFromCtx_Anonymous(t *testing.T) {
	app := newApp()
	app.Get("/", func(c fiber.Ctx) error {
		assert.True(t, ActorFromCtx(c).IsZero())
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestErrorMiddleware_Envelope(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"app error", NewAppError(http.StatusForbidden, "Not authorized", nil, job.ErrForbidden), http.StatusForbidden, "Not authorized"},
		{"app error default message", NewAppError(http.StatusNotFound, "", nil, nil), http.StatusNotFound, response.MessageNotFound},
		{"service unavailable keeps message", NewAppError(http.StatusServiceUnavailable, "Storage unavailable, retry later", nil, job.ErrStorage), http.StatusServiceUnavailable, "Storage unavailable, retry later"},
		{"internal hides detail", NewAppError(http.StatusInternalServerError, "db password wrong", nil, nil), http.StatusInternalServerError, response.MessageInternalServerError},
		{"fiber error", fiber.NewError(http.StatusBadRequest, "bad input"), http.StatusBadRequest, "bad input"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, response.MessageInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.err
			app := newApp()
			app.Get("/", func(fiber.Ctx) error { return err })

			resp, rerr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, rerr)
			assert.Equal(t, tc.status, resp.StatusCode)
			body := decode(t, resp)
			assert.Equal(t, tc.status, body.Status)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newApp()
	app.Get("/", func(fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewAppError(http.StatusForbidden, "Not authorized", nil, job.ErrForbidden)
	assert.ErrorIs(t, err, job.ErrForbidden)
	assert.Equal(t, "Not authorized: forbidden", err.Error())
}
