package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	DefaultAddr           = ":8080"
	DefaultEnvironment    = "local"
	DefaultVerifyDelay    = 1500 * time.Millisecond
	DefaultRequestTimeout = 30 * time.Second
)

// Server captures process level configuration.
type Server struct {
	Addr           string
	Environment    string
	LogLevel       slog.Level
	VerifyDelay    time.Duration
	RequestTimeout time.Duration
	// CodesFile and ProductsFile override the embedded reference data when set.
	CodesFile    string
	ProductsFile string
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Unparseable values fall back to their defaults; each fallback is described
// in the returned warnings so the caller can log them once a logger exists.
func FromEnv() (Server, []string) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Server, []string) {
	var warnings []string
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}
	duration := func(key string, def time.Duration) time.Duration {
		raw := get(key, "")
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a valid duration, using %s", key, raw, def))
			return def
		}
		return d
	}

	cfg := Server{
		Addr:           get("FITCORE_ADDR", DefaultAddr),
		Environment:    get("FITCORE_ENV", DefaultEnvironment),
		VerifyDelay:    duration("VERIFY_DELAY", DefaultVerifyDelay),
		RequestTimeout: duration("REQUEST_TIMEOUT", DefaultRequestTimeout),
		CodesFile:      get("CODES_FILE", ""),
		ProductsFile:   get("PRODUCTS_FILE", ""),
	}

	level, err := ParseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		warnings = append(warnings, err.Error()+", using info")
	}
	cfg.LogLevel = level

	return cfg, warnings
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
