package app

import (
	"fmt"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func(), error) {
	c, cleanup, err := InitializeContainer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(cors.New(corsConfig(c.Config.App.CORSAllowOrigins)))
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var storage, cache handler.Pinger
	if c.DB != nil {
		storage = c.DB
	}
	if c.Config.Redis.Enabled && c.Cache != nil {
		cache = c.Cache
	}

	authMw := middleware.NewAuthMiddleware(c.Tokens)
	routes.NewRegistry(
		handler.NewHealthHandler(storage, cache),
		handler.NewJobsHandler(c.Jobs),
		handler.NewUserHandler(c.Profiles),
		authMw.Middleware(),
		authMw.OptionalMiddleware(),
	).Register(app)
}

// corsConfig allows credentials only for an explicit origin list.
func corsConfig(origins string) cors.Config {
	allow := splitOrigins(origins)
	wildcard := len(allow) == 0 || (len(allow) == 1 && allow[0] == "*")
	if wildcard {
		allow = []string{"*"}
	}

	return cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders:     []string{fiber.HeaderContentType, fiber.HeaderAuthorization},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: !wildcard,
	}
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
