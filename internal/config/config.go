package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kapu/boardpix/internal/render"
)

type AppConfig struct {
	Listen   string
	RedisURL string

	CacheTTLSec int

	DefaultSize  int
	DefaultTheme string
	DefaultStyle string
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Listen:       ":8340",
		CacheTTLSec:  3600,
		DefaultSize:  render.DefaultSize,
		DefaultTheme: render.DefaultTheme,
		DefaultStyle: render.DefaultStyle,
	}

	if v := strings.TrimSpace(os.Getenv("BOARDPIX_LISTEN")); v != "" {
		cfg.Listen = v
	}
	cfg.RedisURL = strings.TrimSpace(os.Getenv("BOARDPIX_REDIS_URL"))

	if v := strings.TrimSpace(os.Getenv("BOARDPIX_CACHE_TTL")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTLSec = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("BOARDPIX_SIZE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("BOARDPIX_THEME")); v != "" {
		cfg.DefaultTheme = v
	}
	if v := strings.TrimSpace(os.Getenv("BOARDPIX_STYLE")); v != "" {
		cfg.DefaultStyle = v
	}

	if _, err := render.ThemeByName(cfg.DefaultTheme); err != nil {
		return nil, fmt.Errorf("BOARDPIX_THEME: %w", err)
	}
	if !render.HasStyle(cfg.DefaultStyle) {
		return nil, fmt.Errorf("BOARDPIX_STYLE: unknown style %q (have %v)", cfg.DefaultStyle, render.Styles())
	}

	return cfg, nil
}
