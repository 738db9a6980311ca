package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: erp-authz
  version: 1.0.0
  environment: development
  tier: system
server:
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 30s
grpc:
  port: 50051
database:
  host: localhost
  port: 5432
  user: erp
  password: secret
  dbname: erp_authz
  sslmode: disable
kafka:
  brokers:
    - localhost:9092
  topic: slms.erp.authz.denied.v1
auth:
  principal_header: X-Principal-ID
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "erp-authz", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 50051, cfg.GRPC.Port)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "slms.erp.authz.denied.v1", cfg.Kafka.Topic)
	assert.Equal(t, "X-Principal-ID", cfg.Auth.PrincipalHeader)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "app: [broken")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing app name",
			mutate:  func(c *Config) { c.App.Name = "" },
			wantErr: "app.name",
		},
		{
			name:    "invalid server port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "missing database host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: "database.host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:      AppConfig{Name: "erp-authz"},
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Host: "localhost"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPrincipalHeaderOrDefault(t *testing.T) {
	var auth AuthConfig
	assert.Equal(t, "X-Principal-ID", auth.PrincipalHeaderOrDefault())

	auth.PrincipalHeader = "X-User-ID"
	assert.Equal(t, "X-User-ID", auth.PrincipalHeaderOrDefault())
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "erp",
		Password: "secret",
		DBName:   "erp_authz",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=erp password=secret dbname=erp_authz sslmode=disable",
		db.DSN())
}
