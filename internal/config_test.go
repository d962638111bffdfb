package internal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/violintec/common-login/internal"
)

func validConfig() internal.Config {
	return internal.Config{
		Server: internal.ServerConfig{
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  time.Minute,
		},
		Database: internal.DatabaseConfig{
			Host:         "localhost",
			Name:         "common_login",
			User:         "root",
			Port:         5432,
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Security: internal.SecurityConfig{
			JWTSecret:           "0123456789abcdef0123456789abcdef",
			AccessTokenDuration: time.Hour,
		},
		Logging: internal.LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidateFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*internal.Config)
		wantErr string
	}{
		{
			name:    "invalid server port",
			mutate:  func(c *internal.Config) { c.Server.Port = 0 },
			wantErr: "server config",
		},
		{
			name:    "missing database host",
			mutate:  func(c *internal.Config) { c.Database.Host = "" },
			wantErr: "database config",
		},
		{
			name:    "idle conns exceed open conns",
			mutate:  func(c *internal.Config) { c.Database.MaxIdleConns = 20 },
			wantErr: "database config",
		},
		{
			name:    "short jwt secret",
			mutate:  func(c *internal.Config) { c.Security.JWTSecret = "short" },
			wantErr: "security config",
		},
		{
			name:    "token ttl below a minute",
			mutate:  func(c *internal.Config) { c.Security.AccessTokenDuration = time.Second },
			wantErr: "security config",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *internal.Config) { c.Logging.Level = "verbose" },
			wantErr: "logging config",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *internal.Config) { c.Logging.Format = "xml" },
			wantErr: "logging config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := validConfig()
	dsn := cfg.Database.GetDSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "dbname=common_login")
	assert.Contains(t, dsn, "sslmode=disable")
}
