package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByName(t *testing.T) {
	reg := NewRegistry()
	c, err := reg.GetByName("ethereum")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ChainID)
}

func TestGetByNameCaseInsensitive(t *testing.T) {
	reg := NewRegistry()
	c, err := reg.GetByName("Base")
	require.NoError(t, err)
	assert.Equal(t, "base", c.Name)
}

func TestGetByNameUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.GetByName("dogechain")
	assert.ErrorIs(t, err, ErrChainNotFound)
}

func TestGetByChainID(t *testing.T) {
	reg := NewRegistry()
	c, err := reg.GetByChainID(42161)
	require.NoError(t, err)
	assert.Equal(t, "arbitrum", c.Name)
}

func TestGetByChainIDUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.GetByChainID(424242)
	assert.ErrorIs(t, err, ErrChainNotFound)
}

func TestExplorerAPIURLModes(t *testing.T) {
	reg := NewRegistry()
	c, err := reg.GetByName("ethereum")
	require.NoError(t, err)

	assert.Equal(t, "https://eth.blockscout.com/api", c.ExplorerAPIURL("mainnet"))
	assert.Equal(t, "https://eth-sepolia.blockscout.com/api", c.ExplorerAPIURL("testnet"))
}

func TestExplorerAPIURLMissingTestnet(t *testing.T) {
	reg := NewRegistry()
	c, err := reg.GetByName("polygon")
	require.NoError(t, err)
	assert.Empty(t, c.ExplorerAPIURL("testnet"))
}

func TestTxURL(t *testing.T) {
	reg := NewRegistry()
	c, err := reg.GetByName("ethereum")
	require.NoError(t, err)
	assert.Equal(t, "https://etherscan.io/tx/0xabc", c.TxURL("mainnet", "0xabc"))
}

func TestAllChainsHaveMainnetAPI(t *testing.T) {
	for _, c := range NewRegistry().All() {
		assert.NotEmpty(t, c.MainnetExplorerAPI, "chain %s has no mainnet explorer API", c.Name)
		assert.True(t, strings.HasPrefix(c.MainnetExplorerAPI, "https://"), "chain %s API is not https", c.Name)
	}
}

func TestRegistryUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range NewRegistry().All() {
		assert.False(t, seen[c.Name], "duplicate chain name %s", c.Name)
		seen[c.Name] = true
	}
}
