package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Mohsinsiddi/callscope/internal/schema"
	"github.com/Mohsinsiddi/callscope/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var (
	decodeABIFile  string
	decodeContract string
	decodeNetwork  string
)

var decodeCmd = &cobra.Command{
	Use:   "decode <calldata>",
	Short: "Decode EVM calldata against a contract's interface schema",
	Long: `Decode raw calldata (hex) into a method name and arguments.

The schema comes from --abi (local ABI file or artifact) or --contract
(fetched from the explorer). Payloads shorter than 4 bytes and selectors
outside the schema decode to "unresolved" — that is an answer, not an error.

Examples:
  callscope decode --abi erc20.json 0xa9059cbb000000000000000000000000d8da6bf26964af9d7eed9e03e53415d37aa960450000000000000000000000000000000000000000000000000de0b6b3a7640000
  callscope decode --contract 0xdAC17F958D2ee523a2206206994597C13D831ec7 0x095ea7b3...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calldata := args[0]
		if strings.TrimPrefix(calldata, "0x") == "" {
			return fmt.Errorf("empty calldata — provide a hex string starting with 0x")
		}

		s, err := loadSchema()
		if err != nil {
			return err
		}

		dc := s.ResolveHex(calldata, true)

		pairs := [][2]string{
			{"Method", ui.Method(dc.Method(), dc.Resolved)},
		}
		if dc.Selector != "" {
			pairs = append(pairs, [2]string{"Selector", dc.Selector})
		}
		if dc.Ambiguous {
			pairs = append(pairs, [2]string{"Note", "selector claimed by multiple functions"})
		}
		if dc.ArgErr != nil {
			pairs = append(pairs, [2]string{"Args", ui.Warn("decode failed: " + dc.ArgErr.Error())})
		}
		for i, a := range dc.Args {
			label := a.Name
			if label == "" {
				label = fmt.Sprintf("arg%d", i)
			}
			pairs = append(pairs, [2]string{
				fmt.Sprintf("%s (%s)", label, a.Type),
				fmt.Sprintf("%v", a.Value),
			})
		}

		fmt.Println(ui.KeyValueBlock("Decoded Calldata", pairs))
		return nil
	},
}

// loadSchema builds the interface schema from --abi or --contract.
func loadSchema() (*schema.Schema, error) {
	if decodeABIFile != "" {
		data, err := os.ReadFile(decodeABIFile)
		if err != nil {
			return nil, fmt.Errorf("reading ABI file: %w", err)
		}
		return schema.ParseJSON(data)
	}

	if decodeContract == "" {
		return nil, fmt.Errorf("no schema source — pass --abi <file> or --contract <address>")
	}
	if !common.IsHexAddress(decodeContract) {
		return nil, fmt.Errorf("invalid contract address %q", decodeContract)
	}

	c, err := resolveChain(decodeNetwork)
	if err != nil {
		return nil, err
	}
	client, err := explorerClient(c)
	if err != nil {
		return nil, err
	}
	abiJSON, err := client.ContractABI(common.HexToAddress(decodeContract).Hex())
	if err != nil {
		return nil, err
	}
	return schema.ParseJSON(abiJSON)
}

func init() {
	decodeCmd.Flags().StringVar(&decodeABIFile, "abi", "", "local ABI file or Hardhat/Foundry artifact")
	decodeCmd.Flags().StringVar(&decodeContract, "contract", "", "fetch the ABI of this contract from the explorer")
	decodeCmd.Flags().StringVar(&decodeNetwork, "network", "", "chain to query")
	decodeCmd.MarkFlagsMutuallyExclusive("abi", "contract")
}
