package config

// Config holds all callscope configuration.
type Config struct {
	DefaultNetwork string `json:"default_network" mapstructure:"default_network"`
	NetworkMode    string `json:"network_mode"    mapstructure:"network_mode"` // "mainnet" | "testnet"
	DefaultWindow  string `json:"default_window"  mapstructure:"default_window"` // Go duration, e.g. "24h"
	OutputDir      string `json:"output_dir"      mapstructure:"output_dir"`

	// CustomExplorers overrides the registry's Etherscan-compatible API URL
	// per chain slug.
	CustomExplorers map[string]string `json:"custom_explorers" mapstructure:"custom_explorers"`

	// ExplorerKeys is the plaintext API-key fallback for hosts without a
	// usable keychain. The keychain (internal/secrets) is tried first.
	ExplorerKeys map[string]string `json:"explorer_keys,omitempty" mapstructure:"explorer_keys"`

	// internal: config dir path used for Save()
	configDir string
}
