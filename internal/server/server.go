// Package server exposes the board renderer over HTTP.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kapu/boardpix/internal/config"
	"github.com/kapu/boardpix/internal/imgcache"
	"github.com/kapu/boardpix/internal/render"
)

type Server struct {
	cfg   *config.AppConfig
	cache imgcache.Cache
	log   *zap.Logger
}

func New(cfg *config.AppConfig, cache imgcache.Cache, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{cfg: cfg, cache: cache, log: log}
}

// App builds the fiber application with all routes mounted.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Set("X-Request-Id", id)
		start := time.Now()
		err := c.Next()
		s.log.Info("http request",
			zap.String("id", id),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		)
		return err
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Get("/board.png", s.renderBoard)
	api.Get("/themes", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"themes": render.ThemeNames()})
	})
	api.Get("/styles", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"styles": render.Styles()})
	})

	return app
}
