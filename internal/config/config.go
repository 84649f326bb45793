// Package config reads server settings from flags, falling back to
// CHESSBOARD_* environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/benbeisheim/chessboard-backend/internal/view"
	"github.com/gofiber/fiber/v2/log"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr          string
	AllowOrigins  string
	DarkMode      bool // initial theme for new boards
	SessionTTL    time.Duration
	SweepInterval time.Duration
	PieceAssets   string
	LogLevel      string
}

// Load parses args (without the program name) on top of the environment.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("chessboard", flag.ContinueOnError)

	cfg := &Config{}
	fs.StringVar(&cfg.Addr, "addr", getenv("CHESSBOARD_ADDR", ":3000"), "listen address")
	fs.StringVar(&cfg.AllowOrigins, "allow-origins", getenv("CHESSBOARD_ALLOW_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	fs.BoolVar(&cfg.DarkMode, "dark", getenb("CHESSBOARD_DARK_MODE", true), "start new boards in dark mode")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", getenvd("CHESSBOARD_SESSION_TTL", 30*time.Minute), "drop boards idle this long (0 keeps them forever)")
	fs.DurationVar(&cfg.SweepInterval, "sweep-interval", getenvd("CHESSBOARD_SWEEP_INTERVAL", time.Minute), "how often idle boards are swept")
	fs.StringVar(&cfg.PieceAssets, "piece-assets", getenv("CHESSBOARD_PIECE_ASSETS", view.DefaultPieceAssetBase), "base URL of the piece images")
	fs.StringVar(&cfg.LogLevel, "log-level", getenv("CHESSBOARD_LOG_LEVEL", "info"), "trace, debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("%w: negative session ttl %s", ErrInvalidConfig, c.SessionTTL)
	}
	if c.SessionTTL > 0 && c.SweepInterval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive when session ttl is set", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.PieceAssets) == "" {
		return fmt.Errorf("%w: empty piece asset base", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel onto fiber's logger levels.
func (c *Config) Level() (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getenvd(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
		log.Warnf("ignoring %s=%q: not a duration", key, v)
	}
	return def
}
