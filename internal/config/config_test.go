package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugbench/plugbench/internal/config"
	pberrors "github.com/plugbench/plugbench/internal/errors"
	"github.com/plugbench/plugbench/internal/logging"
)

func writeSecretsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newTestConfig(path string) *config.Config {
	return &config.Config{
		Path:   path,
		Logger: logging.New(false, true),
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeSecretsFile(t, `secrets:
  together:
    api_key: hunter2
  perspective:
    api_key: "abc123"
`)

	cfg := newTestConfig(path)
	require.NoError(t, cfg.Load())

	value, present := cfg.Secrets.Lookup("together", "api_key")
	assert.True(t, present)
	assert.Equal(t, "hunter2", value)

	value, present = cfg.Secrets.Lookup("perspective", "api_key")
	assert.True(t, present)
	assert.Equal(t, "abc123", value)
}

func TestLoadEmptySecrets(t *testing.T) {
	t.Parallel()

	path := writeSecretsFile(t, "secrets:\n")
	cfg := newTestConfig(path)
	require.NoError(t, cfg.Load())
	assert.NotNil(t, cfg.Secrets)
	_, present := cfg.Secrets.Lookup("any", "thing")
	assert.False(t, present)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	err := cfg.Load()

	var cerr pberrors.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Suggestion, "plugbench init")
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeSecretsFile(t, "secrets: [unclosed\n")
	cfg := newTestConfig(path)

	var cerr pberrors.ConfigError
	require.ErrorAs(t, cfg.Load(), &cerr)
	assert.Contains(t, cerr.Message, "invalid YAML")
}

func TestLoadRejectsBadShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing secrets key", "other: {}\n"},
		{"non-string leaf", "secrets:\n  scope:\n    key: 42\n"},
		{"scalar scope", "secrets:\n  scope: just-a-string\n"},
		{"unknown top-level key", "secrets: {}\nextra: true\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := newTestConfig(writeSecretsFile(t, tt.content))
			var cerr pberrors.ConfigError
			require.ErrorAs(t, cfg.Load(), &cerr)
			assert.Equal(t, "secrets", cerr.Field)
		})
	}
}
