package cmd

import (
	"fmt"
	"time"

	"github.com/Mohsinsiddi/callscope/internal/chain"
	"github.com/Mohsinsiddi/callscope/internal/secrets"
	"github.com/Mohsinsiddi/callscope/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration and explorer API keys",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs := [][2]string{
			{"Config dir", cfg.Dir()},
			{"Default network", cfg.DefaultNetwork},
			{"Network mode", cfg.NetworkMode},
			{"Default window", cfg.Window().String()},
		}
		for name, url := range cfg.CustomExplorers {
			pairs = append(pairs, [2]string{"Explorer (" + name + ")", url})
		}
		fmt.Println(ui.KeyValueBlock("Configuration", pairs))
		return nil
	},
}

var configSetNetworkCmd = &cobra.Command{
	Use:   "set-network <chain>",
	Short: "Set the default network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := chain.NewRegistry().GetByName(args[0]); err != nil {
			return fmt.Errorf("unknown chain %q — run `callscope networks`", args[0])
		}
		cfg.DefaultNetwork = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println(ui.Success("Default network set to " + args[0]))
		return nil
	},
}

var configSetModeCmd = &cobra.Command{
	Use:   "set-mode <mainnet|testnet>",
	Short: "Set the persisted network mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := args[0]
		if mode != "mainnet" && mode != "testnet" {
			return fmt.Errorf("mode must be \"mainnet\" or \"testnet\"")
		}
		cfg.NetworkMode = mode
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println(ui.Success("Network mode set to " + mode))
		return nil
	},
}

var configSetWindowCmd = &cobra.Command{
	Use:   "set-window <duration>",
	Short: "Set the default report window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := time.ParseDuration(args[0]); err != nil {
			return fmt.Errorf("invalid duration %q — use Go syntax like 24h or 90m", args[0])
		}
		cfg.DefaultWindow = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println(ui.Success("Default window set to " + args[0]))
		return nil
	},
}

var configSetExplorerCmd = &cobra.Command{
	Use:   "set-explorer <chain> <api-url>",
	Short: "Override the explorer API URL for a chain",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := chain.NewRegistry().GetByName(args[0]); err != nil {
			return fmt.Errorf("unknown chain %q — run `callscope networks`", args[0])
		}
		cfg.SetExplorerAPI(args[0], args[1])
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println(ui.Success("Explorer API for " + args[0] + " set to " + args[1]))
		return nil
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <chain> <api-key>",
	Short: "Store an explorer API key in the OS keychain",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := chain.NewRegistry().GetByName(args[0]); err != nil {
			return fmt.Errorf("unknown chain %q — run `callscope networks`", args[0])
		}
		if err := secrets.DefaultKeystore().SetKey(args[0], args[1]); err != nil {
			// Keychain unavailable: keep the key in config as a fallback.
			cfg.ExplorerKeys[args[0]] = args[1]
			if saveErr := cfg.Save(); saveErr != nil {
				return fmt.Errorf("keychain failed (%v) and config save failed: %w", err, saveErr)
			}
			fmt.Println(ui.Warn("Keychain unavailable — key stored in config file instead"))
			return nil
		}
		fmt.Println(ui.Success("API key for " + args[0] + " stored in keychain"))
		return nil
	},
}

var configDeleteKeyCmd = &cobra.Command{
	Use:   "delete-key <chain>",
	Short: "Remove a stored explorer API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.DefaultKeystore().DeleteKey(args[0]); err != nil {
			return fmt.Errorf("removing key: %w", err)
		}
		if _, ok := cfg.ExplorerKeys[args[0]]; ok {
			delete(cfg.ExplorerKeys, args[0])
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
		}
		fmt.Println(ui.Success("API key for " + args[0] + " removed"))
		return nil
	},
}

func init() {
	configCmd.AddCommand(
		configShowCmd,
		configSetNetworkCmd,
		configSetModeCmd,
		configSetWindowCmd,
		configSetExplorerCmd,
		configSetKeyCmd,
		configDeleteKeyCmd,
	)
}
