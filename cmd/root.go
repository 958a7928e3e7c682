package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/callscope/internal/chain"
	"github.com/Mohsinsiddi/callscope/internal/config"
	"github.com/Mohsinsiddi/callscope/internal/explorer"
	"github.com/Mohsinsiddi/callscope/internal/secrets"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/callscope/cmd.Version=1.2.3" .
var Version = "0.3.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
	testnet bool
	mainnet bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "callscope",
	Short: "Contract call auditor",
	Long: `callscope — audit every method invocation hitting a smart contract.

  Pulls a contract's recent transaction history (direct and trace-level
  internal calls) from an Etherscan-compatible explorer API, resolves each
  call's 4-byte selector against the contract's ABI, and writes a flat CSV
  report.

Global flags --testnet and --mainnet override the configured network mode
for a single invocation. Without either flag the persisted mode is used
(default: mainnet). Persist with: callscope config set-mode <mode>`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if testnet {
			cfg.NetworkMode = "testnet"
		}
		if mainnet {
			cfg.NetworkMode = "mainnet"
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveChain picks the chain for a command: explicit flag, then config
// default, then ethereum.
func resolveChain(networkFlag string) (*chain.Chain, error) {
	name := cfg.DefaultNetwork
	if networkFlag != "" {
		name = networkFlag
	}
	if name == "" {
		name = "ethereum"
	}

	reg := chain.NewRegistry()
	c, err := reg.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("unknown chain %q — run `callscope networks` to see all chains", name)
	}
	return c, nil
}

// explorerClient builds the explorer API client for a chain, honoring custom
// endpoint overrides and the stored API key (keychain first, config
// fallback).
func explorerClient(c *chain.Chain) (*explorer.Client, error) {
	apiURL := cfg.ExplorerAPIOverride(c.Name)
	if apiURL == "" {
		apiURL = c.ExplorerAPIURL(cfg.NetworkMode)
	}
	if apiURL == "" {
		return nil, fmt.Errorf("chain %q has no explorer API for %s mode", c.Name, cfg.NetworkMode)
	}

	apiKey, err := secrets.DefaultKeystore().GetKey(c.Name)
	if err != nil || apiKey == "" {
		apiKey = cfg.ExplorerKeys[c.Name]
	}

	return explorer.New(apiURL, apiKey), nil
}

func init() {
	// CALLSCOPE_CONFIG_DIR seeds the --config default; an explicit flag wins.
	if envDir := os.Getenv("CALLSCOPE_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.callscope)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&testnet, "testnet", false, "use testnet instead of mainnet")
	rootCmd.PersistentFlags().BoolVar(&mainnet, "mainnet", false, "use mainnet instead of testnet")
	rootCmd.MarkFlagsMutuallyExclusive("testnet", "mainnet")

	// Register all sub-commands.
	rootCmd.AddCommand(
		reportCmd,
		decodeCmd,
		selectorCmd,
		abiCmd,
		blockCmd,
		networksCmd,
		configCmd,
	)
}
