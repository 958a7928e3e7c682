package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySetGet(t *testing.T) {
	ks := NewInMemoryKeystore()
	require.NoError(t, ks.SetKey("ethereum", "abc123"))

	got, err := ks.GetKey("ethereum")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestInMemoryGetMissing(t *testing.T) {
	ks := NewInMemoryKeystore()
	got, err := ks.GetKey("base")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryDelete(t *testing.T) {
	ks := NewInMemoryKeystore()
	require.NoError(t, ks.SetKey("base", "key"))
	require.NoError(t, ks.DeleteKey("base"))

	got, err := ks.GetKey("base")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryKeysAreNamespaced(t *testing.T) {
	ks := NewInMemoryKeystore()
	require.NoError(t, ks.SetKey("ethereum", "eth-key"))
	require.NoError(t, ks.SetKey("base", "base-key"))

	got, err := ks.GetKey("ethereum")
	require.NoError(t, err)
	assert.Equal(t, "eth-key", got)
}

func TestStoreInterfaceSatisfied(t *testing.T) {
	var _ Store = (*Keystore)(nil)
	var _ Store = (*InMemoryKeystore)(nil)
}
