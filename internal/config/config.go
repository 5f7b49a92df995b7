package config

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = 8000
	defaultServiceName = "roster-api"
)

type Config struct {
	Env          string
	Port         int
	CORSOrigins  []string
	OTLPEndpoint string
	// OTLPInsecure disables TLS to the collector. Defaults to true only for loopback endpoints.
	OTLPInsecure bool
	ServiceName  string
}

// TracingEnabled is true only when an OTLP endpoint was configured.
func (c Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}

// Load reads an optional .env file, then the process environment.
// Values already in the environment win over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not read .env file", "err", err)
	}

	return FromEnv()
}

func FromEnv() Config {
	endpoint := getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	return Config{
		Env:          getEnv("APP_ENV", "dev"),
		Port:         getEnvPort("PORT", defaultPort),
		CORSOrigins:  ParseOrigins(os.Getenv("CORS_ORIGINS")),
		OTLPEndpoint: endpoint,
		OTLPInsecure: getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", isLoopback(endpoint)),
		ServiceName:  getEnv("OTEL_SERVICE_NAME", defaultServiceName),
	}
}

// ParseOrigins splits a comma-separated allow-list, dropping blanks.
func ParseOrigins(raw string) []string {
	out := []string{}

	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}

	return out
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

// getEnvPort falls back on unset, non-numeric or out-of-range values.
func getEnvPort(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	num, err := strconv.Atoi(v)
	if err != nil || num < 1 || num > 65535 {
		slog.Warn("ignoring invalid port", "key", key, "value", v, "fallback", fallback)
		return fallback
	}

	return num
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("ignoring invalid bool", "key", key, "value", v, "fallback", fallback)
		return fallback
	}

	return b
}

// isLoopback reports whether a host:port endpoint points at this machine.
func isLoopback(endpoint string) bool {
	host := endpoint
	if h, _, err := net.SplitHostPort(endpoint); err == nil {
		host = h
	}
	if host == "localhost" {
		return true
	}

	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
