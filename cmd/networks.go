package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/callscope/internal/chain"
	"github.com/Mohsinsiddi/callscope/internal/ui"
	"github.com/spf13/cobra"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List supported chains",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		t := ui.NewTable([]ui.Column{
			{Title: "Name", Width: 12},
			{Title: "Display", Width: 18},
			{Title: "Chain ID", Width: 10},
			{Title: "Explorer API", Width: 48},
			{Title: "Testnet", Width: 18},
		})

		for _, c := range reg.All() {
			t.AddRow(ui.Row{
				ui.ChainName(c.Name),
				c.DisplayName,
				fmt.Sprintf("%d", c.ChainID),
				c.MainnetExplorerAPI,
				c.TestnetName,
			})
		}

		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d chains total", len(reg.All()))))
		return nil
	},
}
