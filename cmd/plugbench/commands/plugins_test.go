package commands

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plugbench/plugbench/internal/config"
	"github.com/plugbench/plugbench/internal/logging"
)

func TestPluginsCommand_ExecutesSuccessfully(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Logger: logging.New(false, true)}

	cmd := NewPluginsCommand(cfg)

	require.NoError(t, cmd.Execute())
}
