package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Mohsinsiddi/callscope/internal/chain"
	"github.com/Mohsinsiddi/callscope/internal/config"
	"github.com/Mohsinsiddi/callscope/internal/report"
	"github.com/Mohsinsiddi/callscope/internal/schema"
	"github.com/Mohsinsiddi/callscope/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var (
	reportContract    string
	reportNetwork     string
	reportWindow      string
	reportOut         string
	reportABIFile     string
	reportDecodeArgs  bool
	reportInteractive bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Audit method invocations hitting a contract over a time window",
	Long: `Enumerate every method invocation directed at a contract over a recent
time window and emit a CSV report.

Direct transactions and trace-level internal calls are both included; each
row carries the caller, the resolved method name (or "unresolved") and an
internal/external flag. The contract's ABI is fetched from the explorer
unless --abi points to a local ABI file or Hardhat/Foundry artifact.

Examples:
  callscope report --contract 0xdAC17F958D2ee523a2206206994597C13D831ec7
  callscope report --contract 0xdAC1...1ec7 --window 72h --network ethereum --out usdt.csv
  callscope report --contract 0xdAC1...1ec7 --decode-args --interactive
  callscope report --contract 0x1234...abcd --abi ./build/MyToken.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !common.IsHexAddress(reportContract) {
			return fmt.Errorf("invalid contract address %q", reportContract)
		}
		contract := common.HexToAddress(reportContract).Hex()

		window := cfg.Window()
		if reportWindow != "" {
			d, err := time.ParseDuration(reportWindow)
			if err != nil || d <= 0 {
				return fmt.Errorf("invalid window %q — use a Go duration like 24h or 90m", reportWindow)
			}
			window = d
		}
		if window > config.MaxWindow {
			return fmt.Errorf("window %s exceeds the %s maximum", window, config.MaxWindow)
		}

		c, err := resolveChain(reportNetwork)
		if err != nil {
			return err
		}
		client, err := explorerClient(c)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Auditing %s on %s…", ui.TruncateAddr(contract), ui.ChainName(c.Name)))
		spin.Start()

		// Window start → first block to scan. The end is left open: the
		// explorer caps and sorts by block anyway.
		startTime := time.Now().Add(-window)
		startBlock, err := client.BlockNumberByTime(startTime.Unix(), "after")
		if err != nil {
			spin.Stop()
			return fmt.Errorf("resolving window start to a block: %w", err)
		}
		const endBlock = 99999999

		// Interface schema: local file wins, otherwise the explorer's
		// verified ABI. No schema, no report.
		var abiJSON []byte
		if reportABIFile != "" {
			abiJSON, err = os.ReadFile(reportABIFile)
			if err != nil {
				spin.Stop()
				return fmt.Errorf("reading ABI file: %w", err)
			}
		} else {
			spin.SetMessage("Fetching contract ABI…")
			abiJSON, err = client.ContractABI(contract)
			if err != nil {
				spin.Stop()
				return err
			}
		}
		s, err := schema.ParseJSON(abiJSON)
		if err != nil {
			spin.Stop()
			return fmt.Errorf("loading interface schema: %w", err)
		}

		spin.SetMessage("Fetching transactions…")
		external, err := client.NormalTransactions(contract, startBlock, endBlock)
		if err != nil {
			spin.Stop()
			return err
		}
		internal, err := client.InternalTransactions(contract, startBlock, endBlock)
		if err != nil {
			spin.Stop()
			return err
		}

		rows := report.Build(s, external, internal, report.Options{
			Contract:   contract,
			DecodeArgs: reportDecodeArgs,
		})
		spin.Stop()

		if verbose {
			fmt.Println(ui.Meta(fmt.Sprintf(
				"window %s → block %d+, %d external / %d internal fetched, %d functions in schema",
				window, startBlock, len(external), len(internal), len(s.Functions()),
			)))
		}

		if len(rows) == 0 {
			fmt.Println(ui.Meta("No calls to this contract in the window."))
			return nil
		}

		// CSV goes to stdout unless --out names a file.
		if reportOut == "" && !reportInteractive {
			return report.WriteCSV(os.Stdout, rows)
		}
		if reportOut != "" {
			f, err := os.Create(reportOut)
			if err != nil {
				return fmt.Errorf("creating report file: %w", err)
			}
			if err := report.WriteCSV(f, rows); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Println(ui.Success(fmt.Sprintf("Wrote %d rows to %s", len(rows), reportOut)))
		}

		title := fmt.Sprintf("%s  %s",
			ui.StyleTitle.Render("Contract Call Report"),
			ui.Meta(fmt.Sprintf("(%s on %s, last %s)", ui.TruncateAddr(contract), c.Name, window)),
		)

		if reportInteractive {
			table, rowData := buildReportTable(c, rows)
			return ui.RunReportBrowser(title, table, rowData)
		}

		// Non-interactive with --out: print a short summary table.
		table, _ := buildReportTable(c, rows)
		if len(table.Rows) > 15 {
			table.Rows = table.Rows[:15]
		}
		fmt.Println()
		fmt.Println(title)
		fmt.Println(table.Render())
		printMethodSummary(rows)
		return nil
	},
}

// buildReportTable renders rows into the shared terminal table along with
// per-row interactivity data.
func buildReportTable(c *chain.Chain, rows []report.Row) (*ui.Table, []ui.ReportRow) {
	t := ui.NewTable([]ui.Column{
		{Title: "Tx", Width: 14},
		{Title: "Block", Width: 10},
		{Title: "From", Width: 14},
		{Title: "Method", Width: 26},
		{Title: "Kind", Width: 8},
		{Title: "Status", Width: 8},
	})

	var rowData []ui.ReportRow
	for _, r := range rows {
		kind := "external"
		if r.Internal {
			kind = "internal"
		}
		status := "ok"
		if r.Failed {
			status = "failed"
		}
		t.AddRow(ui.Row{
			ui.TruncateAddr(r.TxHash),
			strconv.FormatUint(r.Block, 10),
			ui.TruncateAddr(r.From),
			r.Method,
			kind,
			status,
		})
		rowData = append(rowData, ui.ReportRow{
			FullHash:    r.TxHash,
			ExplorerURL: c.TxURL(cfg.NetworkMode, r.TxHash),
		})
	}
	return t, rowData
}

// printMethodSummary prints per-method call counts under the table.
func printMethodSummary(rows []report.Row) {
	counts := report.MethodCounts(rows)
	fmt.Println(ui.Meta(fmt.Sprintf("%d calls, %d distinct methods", len(rows), len(counts))))
}

func init() {
	reportCmd.Flags().StringVar(&reportContract, "contract", "", "contract address to audit (required)")
	reportCmd.Flags().StringVar(&reportNetwork, "network", "", "chain to query")
	reportCmd.Flags().StringVar(&reportWindow, "window", "", "time window, e.g. 24h (default from config)")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "CSV output file (default: stdout)")
	reportCmd.Flags().StringVar(&reportABIFile, "abi", "", "local ABI file or Hardhat/Foundry artifact")
	reportCmd.Flags().BoolVar(&reportDecodeArgs, "decode-args", false, "decode call arguments into the args column")
	reportCmd.Flags().BoolVar(&reportInteractive, "interactive", false, "browse the report in the terminal")
	_ = reportCmd.MarkFlagRequired("contract")
}
