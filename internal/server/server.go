package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/wichananm65/pet-shop-checkout/internal/address"
	"github.com/wichananm65/pet-shop-checkout/internal/logger"
	"github.com/wichananm65/pet-shop-checkout/internal/user"
)

// Deps are the storage backends and settings the api is assembled from.
type Deps struct {
	Users     user.Repository
	Addresses address.Repository
	Tokens    user.TokenConfig
	Log       zerolog.Logger
	// Registry receives the api's collectors. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// New builds the fiber app with public auth routes, jwt protected profile
// and address routes, /health and /metrics.
func New(d Deps) *fiber.App {
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	setupCORS(app)
	app.Use(logger.Fiber(d.Log))
	app.Use(newHTTPMetrics(reg).handler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	userHandler := user.NewHandler(user.NewService(d.Users), d.Tokens)
	userHandler.RegisterPublicRoutes(app)

	app.Use(user.RequireToken(d.Tokens))

	userHandler.RegisterProtectedRoutes(app)

	addressHandler := address.NewHandler(address.NewService(d.Addresses), address.NewMetrics(reg), d.Log)
	addressHandler.RegisterProtectedRoutes(app)

	return app
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + logger.RequestIDHeader,
	}))
}
