package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
	assert.False(t, cfg.Seed.OnStart)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9000"
  allow_origins: ["http://localhost:5173"]
database:
  type: mysql
  dsn: "user:pass@tcp(localhost:3306)/algonotes"
jwt:
  secret: from-file
seed:
  on_start: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("JWT_EXPIRE_HOURS", "not-a-number")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/algonotes", cfg.Database.DSN)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
	assert.False(t, cfg.Seed.OnStart)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))
	t.Setenv("SERVER_PORT", "7000")

	cfg, err := Load(path)
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
}
