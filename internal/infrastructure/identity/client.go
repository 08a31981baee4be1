package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/domain/profile"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"
)

var ErrNotConfigured = errors.New("identity provider not configured")

// Client reads user profiles from the identity provider's users API
// (GET {base}/v1/users/{id}, bearer API key).
type Client struct {
	http    *client.Client
	baseURL string
	timeout time.Duration
}

type userPayload struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	ImageURL  string `json:"image_url"`
}

func NewClient(cfg config.IdentityConfig) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	hc := client.New().SetTimeout(timeout)
	if cfg.APIKey != "" {
		hc.SetHeader(fiber.HeaderAuthorization, "Bearer "+cfg.APIKey)
	}
	hc.SetHeader(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	return &Client{http: hc, baseURL: base, timeout: timeout}
}

// Lookup implements profile.Directory.
func (c *Client) Lookup(ctx context.Context, userID string) (profile.Profile, error) {
	if c == nil || c.baseURL == "" {
		return profile.Profile{}, ErrNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profile.Profile{}, profile.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.http.Get(c.baseURL+"/v1/users/"+url.PathEscape(userID), client.Config{Ctx: ctx})
	if err != nil {
		return profile.Profile{}, fmt.Errorf("identity lookup %s: %w", userID, err)
	}
	defer resp.Close()

	switch status := resp.StatusCode(); {
	case status == fiber.StatusNotFound:
		return profile.Profile{}, profile.ErrNotFound
	case status < 200 || status > 299:
		return profile.Profile{}, fmt.Errorf("identity lookup %s: unexpected status %d", userID, status)
	}

	var u userPayload
	if err := resp.JSON(&u); err != nil {
		return profile.Profile{}, fmt.Errorf("identity lookup %s: decode: %w", userID, err)
	}

	id := u.ID
	if id == "" {
		id = userID
	}
	return profile.Profile{
		ID:          id,
		DisplayName: displayName(u),
		AvatarURL:   u.ImageURL,
	}, nil
}

func displayName(u userPayload) string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	if u := strings.TrimSpace(u.Username); u != "" {
		return u
	}
	return profile.UnknownDisplayName
}
