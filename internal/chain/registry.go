package chain

import (
	"errors"
	"strings"
)

// ErrChainNotFound is returned when a chain is not in the registry.
var ErrChainNotFound = errors.New("chain not found")

// Chain holds the metadata callscope needs for a single EVM chain: the
// human-facing explorer site and the Etherscan-compatible API endpoint.
type Chain struct {
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	ChainID        int64  `json:"chain_id"`
	NativeCurrency string `json:"native_currency"`

	MainnetExplorer string `json:"mainnet_explorer"`
	TestnetExplorer string `json:"testnet_explorer"`
	TestnetName     string `json:"testnet_name"`

	// Etherscan-compatible API endpoints (no key required for basic use).
	MainnetExplorerAPI string `json:"mainnet_explorer_api"`
	TestnetExplorerAPI string `json:"testnet_explorer_api,omitempty"`
}

// Registry is the chain registry.
type Registry struct {
	chains []Chain
	byName map[string]*Chain
	byID   map[int64]*Chain
}

// NewRegistry creates the full registry of supported chains.
func NewRegistry() *Registry {
	chains := allChains()
	r := &Registry{
		chains: chains,
		byName: make(map[string]*Chain, len(chains)),
		byID:   make(map[int64]*Chain, len(chains)),
	}
	for i := range r.chains {
		c := &r.chains[i]
		r.byName[c.Name] = c
		r.byID[c.ChainID] = c
	}
	return r
}

// All returns every chain in the registry.
func (r *Registry) All() []Chain { return r.chains }

// GetByName finds a chain by its slug name (e.g. "base", "ethereum").
func (r *Registry) GetByName(name string) (*Chain, error) {
	c, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, ErrChainNotFound
	}
	return c, nil
}

// GetByChainID finds a chain by its numeric chain ID.
func (r *Registry) GetByChainID(id int64) (*Chain, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, ErrChainNotFound
	}
	return c, nil
}

// Explorer returns the explorer site URL for the given mode
// ("mainnet"/"testnet").
func (c *Chain) Explorer(mode string) string {
	if mode == "testnet" {
		return c.TestnetExplorer
	}
	return c.MainnetExplorer
}

// ExplorerAPIURL returns the Etherscan-compatible API endpoint for the given
// mode. Empty when the chain has no API for that mode.
func (c *Chain) ExplorerAPIURL(mode string) string {
	if mode == "testnet" {
		return c.TestnetExplorerAPI
	}
	return c.MainnetExplorerAPI
}

// TxURL returns the explorer page for a transaction hash.
func (c *Chain) TxURL(mode, hash string) string {
	base := c.Explorer(mode)
	if base == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/tx/" + hash
}

func allChains() []Chain {
	return []Chain{
		{
			Name: "ethereum", DisplayName: "Ethereum", ChainID: 1,
			NativeCurrency:  "ETH",
			MainnetExplorer: "https://etherscan.io",
			TestnetExplorer: "https://sepolia.etherscan.io",
			TestnetName:     "Sepolia",

			MainnetExplorerAPI: "https://eth.blockscout.com/api",
			TestnetExplorerAPI: "https://eth-sepolia.blockscout.com/api",
		},
		{
			Name: "base", DisplayName: "Base", ChainID: 8453,
			NativeCurrency:  "ETH",
			MainnetExplorer: "https://basescan.org",
			TestnetExplorer: "https://sepolia.basescan.org",
			TestnetName:     "Base Sepolia",

			MainnetExplorerAPI: "https://base.blockscout.com/api",
			TestnetExplorerAPI: "https://base-sepolia.blockscout.com/api",
		},
		{
			Name: "arbitrum", DisplayName: "Arbitrum One", ChainID: 42161,
			NativeCurrency:  "ETH",
			MainnetExplorer: "https://arbiscan.io",
			TestnetExplorer: "https://sepolia.arbiscan.io",
			TestnetName:     "Arbitrum Sepolia",

			MainnetExplorerAPI: "https://arbitrum.blockscout.com/api",
			TestnetExplorerAPI: "https://arbitrum-sepolia.blockscout.com/api",
		},
		{
			Name: "optimism", DisplayName: "OP Mainnet", ChainID: 10,
			NativeCurrency:  "ETH",
			MainnetExplorer: "https://optimistic.etherscan.io",
			TestnetExplorer: "https://sepolia-optimism.etherscan.io",
			TestnetName:     "OP Sepolia",

			MainnetExplorerAPI: "https://optimism.blockscout.com/api",
			TestnetExplorerAPI: "https://optimism-sepolia.blockscout.com/api",
		},
		{
			Name: "polygon", DisplayName: "Polygon PoS", ChainID: 137,
			NativeCurrency:  "POL",
			MainnetExplorer: "https://polygonscan.com",
			TestnetExplorer: "https://amoy.polygonscan.com",
			TestnetName:     "Amoy",

			MainnetExplorerAPI: "https://polygon.blockscout.com/api",
		},
		{
			Name: "bsc", DisplayName: "BNB Smart Chain", ChainID: 56,
			NativeCurrency:  "BNB",
			MainnetExplorer: "https://bscscan.com",
			TestnetExplorer: "https://testnet.bscscan.com",
			TestnetName:     "BSC Testnet",

			MainnetExplorerAPI: "https://api.etherscan.io/v2/api?chainid=56",
		},
		{
			Name: "gnosis", DisplayName: "Gnosis Chain", ChainID: 100,
			NativeCurrency:  "xDAI",
			MainnetExplorer: "https://gnosisscan.io",
			TestnetExplorer: "https://gnosis-chiado.blockscout.com",
			TestnetName:     "Chiado",

			MainnetExplorerAPI: "https://gnosis.blockscout.com/api",
			TestnetExplorerAPI: "https://gnosis-chiado.blockscout.com/api",
		},
	}
}
