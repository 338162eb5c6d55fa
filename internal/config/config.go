// Package config defines the service settings. Every setting is a command
// line flag that can also be supplied through an environment variable, and
// environment variables can in turn come from a .env.local file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const (
	defaultAddr            = ":8080"
	defaultLogLevel        = "info"
	defaultAsyncDelay      = time.Second
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxBodyBytes    = 1 << 20
	defaultRateLimitRPS    = 20
	defaultRateLimitBurst  = 40
)

type Config struct {
	Addr            string
	LogLevel        string
	LogPretty       bool
	SeedFile        string
	AsyncDelay      time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	RateLimitRPS    float64
	RateLimitBurst  int
	AllowedOrigins  []string
	EnableHSTS      bool
}

// LoadEnvFiles loads variables from the given dotenv files without
// overriding variables already set in the environment. Missing files are
// skipped.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Flags returns the command line flags backing Config.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Value:   defaultAddr,
			Usage:   "HTTP listen address",
			Sources: cli.EnvVars("APP_ADDR"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   defaultLogLevel,
			Usage:   "log level (debug, info, warn, error)",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.BoolFlag{
			Name:    "log-pretty",
			Usage:   "human-readable console logs instead of JSON",
			Sources: cli.EnvVars("LOG_PRETTY"),
		},
		&cli.StringFlag{
			Name:    "seed-file",
			Usage:   "YAML file with the startup books and users (built-in seed when empty)",
			Sources: cli.EnvVars("SEED_FILE"),
		},
		&cli.DurationFlag{
			Name:    "async-delay",
			Value:   defaultAsyncDelay,
			Usage:   "delay applied by GET /books/async",
			Sources: cli.EnvVars("ASYNC_DELAY"),
		},
		&cli.DurationFlag{
			Name:    "read-timeout",
			Value:   defaultReadTimeout,
			Sources: cli.EnvVars("HTTP_READ_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:    "write-timeout",
			Value:   defaultWriteTimeout,
			Sources: cli.EnvVars("HTTP_WRITE_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:    "idle-timeout",
			Value:   defaultIdleTimeout,
			Sources: cli.EnvVars("HTTP_IDLE_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:    "shutdown-timeout",
			Value:   defaultShutdownTimeout,
			Usage:   "grace period for in-flight requests on shutdown",
			Sources: cli.EnvVars("SHUTDOWN_TIMEOUT"),
		},
		&cli.IntFlag{
			Name:    "max-body-bytes",
			Value:   defaultMaxBodyBytes,
			Usage:   "largest accepted request body",
			Sources: cli.EnvVars("MAX_BODY_BYTES"),
		},
		&cli.FloatFlag{
			Name:    "rate-limit-rps",
			Value:   defaultRateLimitRPS,
			Usage:   "requests per second allowed per client, 0 disables rate limiting",
			Sources: cli.EnvVars("RATE_LIMIT_RPS"),
		},
		&cli.IntFlag{
			Name:    "rate-limit-burst",
			Value:   defaultRateLimitBurst,
			Sources: cli.EnvVars("RATE_LIMIT_BURST"),
		},
		&cli.StringSliceFlag{
			Name:    "cors-origins",
			Usage:   "origins allowed to call the API from a browser (\"*\" for any)",
			Sources: cli.EnvVars("CORS_ALLOWED_ORIGINS"),
		},
		&cli.BoolFlag{
			Name:    "enable-hsts",
			Usage:   "send Strict-Transport-Security",
			Sources: cli.EnvVars("ENABLE_HSTS"),
		},
	}
}

// FromCommand reads the parsed flags of cmd into a Config.
func FromCommand(cmd *cli.Command) (Config, error) {
	cfg := Config{
		Addr:            cmd.String("addr"),
		LogLevel:        cmd.String("log-level"),
		LogPretty:       cmd.Bool("log-pretty"),
		SeedFile:        cmd.String("seed-file"),
		AsyncDelay:      cmd.Duration("async-delay"),
		ReadTimeout:     cmd.Duration("read-timeout"),
		WriteTimeout:    cmd.Duration("write-timeout"),
		IdleTimeout:     cmd.Duration("idle-timeout"),
		ShutdownTimeout: cmd.Duration("shutdown-timeout"),
		MaxBodyBytes:    int64(cmd.Int("max-body-bytes")),
		RateLimitRPS:    cmd.Float("rate-limit-rps"),
		RateLimitBurst:  int(cmd.Int("rate-limit-burst")),
		AllowedOrigins:  cmd.StringSlice("cors-origins"),
		EnableHSTS:      cmd.Bool("enable-hsts"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("addr must not be empty")
	case c.AsyncDelay < 0:
		return errors.New("async-delay must not be negative")
	case c.MaxBodyBytes <= 0:
		return errors.New("max-body-bytes must be positive")
	case c.RateLimitRPS < 0:
		return errors.New("rate-limit-rps must not be negative")
	case c.RateLimitRPS > 0 && c.RateLimitBurst <= 0:
		return errors.New("rate-limit-burst must be positive when rate limiting is enabled")
	}
	return nil
}
