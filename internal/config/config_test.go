package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "")

	cfg := FromEnv()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 8000, cfg.Port)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, "roster-api", cfg.ServiceName)
	assert.False(t, cfg.TracingEnabled())
	assert.False(t, cfg.OTLPInsecure)
}

func TestFromEnv_Port(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"9090", 9090},
		{" 8081 ", 8081},
		{"abc", 8000},
		{"80.5", 8000},
		{"-1", 8000},
		{"70000", 8000},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("PORT", tt.raw)
			assert.Equal(t, tt.want, FromEnv().Port)
		})
	}
}

func TestFromEnv_Tracing(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("OTEL_SERVICE_NAME", "roster-test")

	cfg := FromEnv()
	assert.True(t, cfg.TracingEnabled())
	assert.Equal(t, "collector:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "roster-test", cfg.ServiceName)
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseOrigins(" a, ,b "))
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"},
		ParseOrigins("http://localhost:5173,https://app.example.com"))
	assert.Empty(t, ParseOrigins(""))
	assert.Empty(t, ParseOrigins(" , ,"))
}

func TestFromEnv_OTLPInsecure(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		flag     string
		want     bool
	}{
		{"localhost_defaults_insecure", "localhost:4317", "", true},
		{"loopback_ip_defaults_insecure", "127.0.0.1:4317", "", true},
		{"ipv6_loopback_defaults_insecure", "[::1]:4317", "", true},
		{"remote_defaults_to_tls", "collector.internal:4317", "", false},
		{"flag_forces_insecure", "collector.internal:4317", "true", true},
		{"flag_forces_tls_on_loopback", "localhost:4317", "false", false},
		{"bad_flag_keeps_default", "localhost:4317", "maybe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", tt.endpoint)
			t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", tt.flag)

			cfg := FromEnv()
			assert.True(t, cfg.TracingEnabled())
			assert.Equal(t, tt.want, cfg.OTLPInsecure)
		})
	}
}
