package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/callscope/internal/schema"
	"github.com/Mohsinsiddi/callscope/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var (
	abiNetwork string
	abiFile    string
)

var abiCmd = &cobra.Command{
	Use:   "abi <address>",
	Short: "Show a contract's selector table",
	Long: `Fetch a contract's verified ABI from the explorer and print its
function selector table: selector, canonical signature, parameter count.

With --abi the table is built from a local ABI file instead and the address
argument may be omitted.

Examples:
  callscope abi 0xdAC17F958D2ee523a2206206994597C13D831ec7
  callscope abi --abi ./build/MyToken.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var abiJSON []byte
		var source string

		switch {
		case abiFile != "":
			data, err := os.ReadFile(abiFile)
			if err != nil {
				return fmt.Errorf("reading ABI file: %w", err)
			}
			abiJSON, source = data, abiFile

		case len(args) == 1:
			if !common.IsHexAddress(args[0]) {
				return fmt.Errorf("invalid contract address %q", args[0])
			}
			addr := common.HexToAddress(args[0]).Hex()

			c, err := resolveChain(abiNetwork)
			if err != nil {
				return err
			}
			client, err := explorerClient(c)
			if err != nil {
				return err
			}

			spin := ui.NewSpinner(fmt.Sprintf("Fetching ABI for %s…", ui.TruncateAddr(addr)))
			spin.Start()
			abiJSON, err = client.ContractABI(addr)
			spin.Stop()
			if err != nil {
				return err
			}
			source = addr

		default:
			return fmt.Errorf("provide a contract address or --abi <file>")
		}

		s, err := schema.ParseJSON(abiJSON)
		if err != nil {
			return fmt.Errorf("loading interface schema: %w", err)
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Selector", Width: 12},
			{Title: "Signature", Width: 56},
			{Title: "Params", Width: 6},
		})
		for _, fn := range s.Functions() {
			t.AddRow(ui.Row{
				fn.SelectorHex(),
				fn.Signature(),
				fmt.Sprintf("%d", len(fn.Params)),
			})
		}

		fmt.Printf("%s  %s\n\n", ui.StyleTitle.Render("Interface Schema"), ui.Meta("("+source+")"))
		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d functions", len(s.Functions()))))
		return nil
	},
}

func init() {
	abiCmd.Flags().StringVar(&abiNetwork, "network", "", "chain to query")
	abiCmd.Flags().StringVar(&abiFile, "abi", "", "local ABI file or Hardhat/Foundry artifact")
}
