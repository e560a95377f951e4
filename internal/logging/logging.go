// Package logging provides a zerolog wrapper with opinionated defaults.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the root logger
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// FromEnv builds Options from RELSLURP_LOG_* variables
func FromEnv() Options {
	return Options{
		Level:  strings.ToLower(getenv("RELSLURP_LOG_LEVEL", "warn")),
		Format: strings.ToLower(getenv("RELSLURP_LOG_FORMAT", "console")),
	}
}

var (
	once sync.Once
	root atomic.Pointer[zerolog.Logger]
)

// Get returns the process-wide root logger
func Get() *zerolog.Logger {
	if root.Load() == nil {
		Init(FromEnv())
	}
	return root.Load()
}

// Init configures zerolog and builds the root logger, safe to call once
func Init(opt Options) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stderr
		if opt.Writer != nil {
			w = opt.Writer
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		log := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp().Logger()
		root.Store(&log)
	})
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
