package impl

import (
	"io"
	"log/slog"
	"time"

	"secureauth/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(demoMode bool) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{DemoMode: demoMode}
	cfg.Session = &config.SessionConfig{
		CookieName:  config.DefaultCookieName,
		TTL:         30 * time.Minute,
		JanitorTick: time.Minute,
	}

	return cfg
}
