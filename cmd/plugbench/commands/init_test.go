package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugbench/plugbench/internal/config"
	"github.com/plugbench/plugbench/internal/logging"
	"github.com/plugbench/plugbench/pkg/secrets"
)

func TestInitCommand_CreatesSkeleton(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "secrets.yaml")
	cfg := &config.Config{
		Path:   path,
		Logger: logging.New(false, true),
	}

	cmd := NewInitCommand(cfg)

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	// The registered exampleco kind shows up with its instructions.
	assert.Contains(t, string(content), "secrets:")
	assert.Contains(t, string(content), "exampleco:")
	assert.Contains(t, string(content), "api_key: \"\"")
	assert.Contains(t, string(content), "# Visit https://console.exampleco.test")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "secrets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("secrets: {}\n"), 0600))

	cfg := &config.Config{
		Path:   path,
		Logger: logging.New(false, true),
	}

	cmd := NewInitCommand(cfg)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRenderSkeleton_GroupsByScope(t *testing.T) {
	t.Parallel()

	descs := []secrets.Description{
		{Scope: "alpha", Key: "key_a", Instructions: "See the alpha docs."},
		{Scope: "alpha", Key: "key_b"},
		{Scope: "beta", Key: "token", Instructions: "Ask the beta team."},
	}

	out := renderSkeleton(descs)

	assert.Contains(t, out, "  alpha:\n    # See the alpha docs.\n    key_a: \"\"\n    key_b: \"\"\n")
	assert.Contains(t, out, "  beta:\n    # Ask the beta team.\n    token: \"\"\n")
}

func TestRenderSkeleton_Empty(t *testing.T) {
	t.Parallel()

	out := renderSkeleton(nil)
	assert.Contains(t, out, "secrets:\n  {}\n")
}
