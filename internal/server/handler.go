package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kapu/boardpix/internal/board"
	"github.com/kapu/boardpix/internal/imgcache"
	"github.com/kapu/boardpix/internal/render"
)

// renderBoard serves GET /api/board.png. Renders are cached by the
// canonical query parameters; cache hits skip the renderer entirely.
func (s *Server) renderBoard(c *fiber.Ctx) error {
	fen := strings.TrimSpace(c.Query("fen"))
	if fen == "" {
		return badRequest(c, "fen query parameter is required")
	}

	size := c.QueryInt("size", s.cfg.DefaultSize)
	if size < 8 || size > 4096 {
		return badRequest(c, "size must be between 8 and 4096")
	}
	padding := c.QueryInt("padding", 0)
	if padding < 0 || padding > 512 {
		return badRequest(c, "padding must be between 0 and 512")
	}
	flipped := c.QueryBool("flipped", false)
	coords := c.QueryBool("coords", false)

	themeName := strings.TrimSpace(c.Query("theme", s.cfg.DefaultTheme))
	theme, err := render.ThemeByName(themeName)
	if err != nil {
		return badRequest(c, err.Error())
	}
	style := strings.TrimSpace(c.Query("style", s.cfg.DefaultStyle))
	if !render.HasStyle(style) {
		return badRequest(c, fmt.Sprintf("unknown style %q", style))
	}

	highlights, err := render.ParseSquareList(c.Query("highlight"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	arrows, err := render.ParseArrowList(c.Query("arrow"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	key := imgcache.Key(
		fen, strconv.Itoa(size), strconv.Itoa(padding),
		strconv.FormatBool(flipped), strconv.FormatBool(coords),
		themeName, style, c.Query("highlight"), c.Query("arrow"),
	)
	if buf, ok, err := s.cache.Get(c.Context(), key); err == nil && ok {
		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(buf)
	} else if err != nil {
		s.log.Warn("cache get failed", zap.Error(err))
	}

	r := render.New(render.Config{
		Size:        size,
		Padding:     render.Padding{Top: padding, Right: padding, Bottom: padding, Left: padding},
		Light:       theme.Light,
		Dark:        theme.Dark,
		Highlight:   theme.Highlight,
		Style:       style,
		Flipped:     flipped,
		Coordinates: coords,
	})
	if err := r.LoadFEN(fen); err != nil {
		if errors.Is(err, board.ErrParse) {
			return badRequest(c, err.Error())
		}
		return serverError(c, err)
	}
	r.SetHighlights(highlights...)
	r.SetArrows(arrows...)

	buf, err := r.Render(c.Context())
	if err != nil {
		if errors.Is(err, render.ErrAssetMissing) {
			return badRequest(c, err.Error())
		}
		return serverError(c, err)
	}

	if err := s.cache.Set(c.Context(), key, buf); err != nil {
		s.log.Warn("cache set failed", zap.Error(err))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
