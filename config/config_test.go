package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexsandra-Z/system-analysis-2025/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 512, cfg.Merge.MaxObjects)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout.Duration)
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	p := writeFile(t, "rankmerge.yaml", `
merge:
  max_objects: 100
  concurrency: 8
output:
  format: yaml
server:
  addr: "127.0.0.1:9000"
  rate_limit: 2.5
  shutdown_timeout: 1s
log:
  level: debug
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100, cfg.Merge.MaxObjects)
	assert.Equal(t, 8, cfg.Merge.Concurrency)
	assert.Equal(t, 64, cfg.Merge.BatchLimit, "unset keys keep defaults")
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.InDelta(t, 2.5, cfg.Server.RateLimit, 1e-9)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_TOML(t *testing.T) {
	t.Parallel()

	p := writeFile(t, "rankmerge.toml", `
[merge]
max_objects = 0
batch_limit = 10

[server]
addr = ":7070"
read_timeout = "3s"

[log]
format = "json"
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0, cfg.Merge.MaxObjects)
	assert.Equal(t, 10, cfg.Merge.BatchLimit)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "rankmerge.ini", "x=1"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFile)

	_, err = config.Load(writeFile(t, "bad.yaml", "merge: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*config.Config){
		"negative ceiling": func(c *config.Config) { c.Merge.MaxObjects = -1 },
		"zero concurrency": func(c *config.Config) { c.Merge.Concurrency = 0 },
		"unknown format":   func(c *config.Config) { c.Output.Format = "xml" },
		"empty addr":       func(c *config.Config) { c.Server.Addr = "" },
		"negative rate":    func(c *config.Config) { c.Server.RateLimit = -1 },
		"bad log level":    func(c *config.Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		config.EnvMaxObjects:  "42",
		config.EnvConcurrency: "2",
		config.EnvRateLimit:   "0.5",
		config.EnvFormat:      "yaml",
		config.EnvLogLevel:    "warn",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 42, cfg.Merge.MaxObjects)
	assert.Equal(t, 2, cfg.Merge.Concurrency)
	assert.InDelta(t, 0.5, cfg.Server.RateLimit, 1e-9)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)

	env[config.EnvBatchLimit] = "many"
	assert.ErrorIs(t, config.Default().ApplyEnv(lookup), config.ErrInvalid)

	delete(env, config.EnvBatchLimit)
	env[config.EnvRateLimit] = "fast"
	assert.ErrorIs(t, config.Default().ApplyEnv(lookup), config.ErrInvalid)
}

func TestLoadEnvFile(t *testing.T) {
	const key = "RANKMERGE_CONFIG_TEST_ADDR"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	require.NoError(t, config.LoadEnvFile(filepath.Join(t.TempDir(), ".env")), "missing file is fine")

	p := writeFile(t, ".env", key+"=:9999\n")
	require.NoError(t, config.LoadEnvFile(p))
	v, ok := os.LookupEnv(key)
	require.True(t, ok)
	assert.Equal(t, ":9999", v)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = config.LogConfig{Level: "info", Format: "xml"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalid)
	_, err = config.LogConfig{Level: "chatty", Format: "text"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
