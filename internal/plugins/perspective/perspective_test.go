package perspective_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugbench/plugbench/internal/plugins/perspective"
	"github.com/plugbench/plugbench/pkg/secrets"
)

func TestSetupWithCredential(t *testing.T) {
	t.Parallel()

	annotator := perspective.New()
	raw := secrets.RawSecrets{"perspective": {"api_key": "p-key"}}

	require.NoError(t, annotator.Setup(raw))
	assert.True(t, annotator.Enabled())
}

func TestSetupWithoutCredentialDisables(t *testing.T) {
	t.Parallel()

	annotator := perspective.New()

	// Absence degrades to a disabled annotator, never an error.
	require.NoError(t, annotator.Setup(secrets.RawSecrets{}))
	assert.False(t, annotator.Enabled())
}

func TestAPIKeyNeverBlocksAudit(t *testing.T) {
	t.Parallel()

	assert.NoError(t, perspective.APIKey.Validate(secrets.RawSecrets{}))
}
