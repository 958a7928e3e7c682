package cmd

import (
	"fmt"
	"time"

	"github.com/Mohsinsiddi/callscope/internal/ui"
	"github.com/spf13/cobra"
)

var (
	blockNetwork string
	blockClosest string
)

var blockCmd = &cobra.Command{
	Use:   "block <time-or-duration>",
	Short: "Resolve a point in time to a block number",
	Long: `Resolve a timestamp to a block number via the explorer API.

Accepts an RFC 3339 timestamp or a Go duration (interpreted as that long
ago). Useful for checking which block a report window starts at.

Examples:
  callscope block 24h
  callscope block 2026-08-01T00:00:00Z
  callscope block 90m --network base --closest before`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := parseTimeArg(args[0])
		if err != nil {
			return err
		}
		if blockClosest != "before" && blockClosest != "after" {
			return fmt.Errorf("--closest must be \"before\" or \"after\"")
		}

		c, err := resolveChain(blockNetwork)
		if err != nil {
			return err
		}
		client, err := explorerClient(c)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Resolving block on %s…", ui.ChainName(c.Name)))
		spin.Start()
		n, err := client.BlockNumberByTime(ts.Unix(), blockClosest)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("resolving block: %w", err)
		}

		pairs := [][2]string{
			{"Time", ts.UTC().Format("2006-01-02 15:04:05 UTC")},
			{"Closest", blockClosest},
			{"Block", ui.Val(fmt.Sprintf("%d", n))},
		}
		fmt.Println(ui.KeyValueBlock("Block By Time", pairs))
		return nil
	},
}

// parseTimeArg accepts an RFC 3339 timestamp or a duration meaning "that
// long ago".
func parseTimeArg(arg string) (time.Time, error) {
	if d, err := time.ParseDuration(arg); err == nil {
		if d <= 0 {
			return time.Time{}, fmt.Errorf("duration must be positive: %q", arg)
		}
		return time.Now().Add(-d), nil
	}
	if t, err := time.Parse(time.RFC3339, arg); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse %q — use a duration (24h) or RFC 3339 timestamp", arg)
}

func init() {
	blockCmd.Flags().StringVar(&blockNetwork, "network", "", "chain to query")
	blockCmd.Flags().StringVar(&blockClosest, "closest", "after", "land \"before\" or \"after\" the timestamp")
}
