package secrets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugbench/plugbench/pkg/secrets"
)

// An injector is declared before any store exists and resolved later; the
// result must match resolving the kind directly.
func TestInjectorMatchesDirectResolve(t *testing.T) {
	t.Parallel()

	kind := secrets.NewRequired("scope1", "keyA", "ask the admin")
	inj := kind.Injector()

	store := testStore()

	direct, directErr := kind.Resolve(store)
	injected, injectedErr := inj.Inject(store)

	require.NoError(t, directErr)
	require.NoError(t, injectedErr)
	assert.Equal(t, direct, injected)
}

func TestInjectorPropagatesMissingError(t *testing.T) {
	t.Parallel()

	kind := secrets.NewRequired("scope1", "missingKey", "ask the admin")
	inj := kind.Injector()

	_, err := inj.Inject(testStore())
	var merr *secrets.MissingError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, []secrets.Description{kind.Description()}, merr.Descriptions)
}

func TestInjectorOptional(t *testing.T) {
	t.Parallel()

	kind := secrets.NewOptional("scope1", "missingKey", "nice to have")
	inj := kind.Injector()

	sec, err := inj.Inject(testStore())
	require.NoError(t, err)
	_, present := sec.Value()
	assert.False(t, present)
}

func TestInjectorDoesNotCache(t *testing.T) {
	t.Parallel()

	kind := secrets.NewRequired("scope1", "keyA", "ask the admin")
	inj := kind.Injector()

	first, err := inj.Inject(secrets.RawSecrets{"scope1": {"keyA": "one"}})
	require.NoError(t, err)
	second, err := inj.Inject(secrets.RawSecrets{"scope1": {"keyA": "two"}})
	require.NoError(t, err)

	assert.Equal(t, "one", first.Value())
	assert.Equal(t, "two", second.Value())
}

func TestInjectorExposesKind(t *testing.T) {
	t.Parallel()

	kind := secrets.NewOptional("scope1", "keyA", "nice to have")
	inj := kind.Injector()
	assert.Equal(t, kind.Description(), inj.Kind().Description())
}
