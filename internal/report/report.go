package report

import (
	"sort"
	"strings"

	"github.com/Mohsinsiddi/callscope/internal/explorer"
	"github.com/Mohsinsiddi/callscope/internal/schema"
)

// Row is one method invocation directed at the audited contract.
type Row struct {
	TxHash    string
	Block     uint64
	Timestamp int64  // unix seconds
	From      string // caller address, passed through unchanged
	Method    string // resolved name or schema.UnresolvedMethod
	Selector  string // 0x-prefixed selector hex, "" for bare value transfers
	Internal  bool   // trace-level call vs direct transaction
	Failed    bool
	ValueWei  string
	Args      string // "name=value; ..." when argument decoding was requested
	ArgNote   string // decode-failure note, "" when clean
}

// Options controls row construction.
type Options struct {
	// Contract is the audited address; calls directed elsewhere are dropped.
	Contract string
	// DecodeArgs attaches decoded argument values to each resolved row.
	DecodeArgs bool
}

// Build merges direct and trace-level transaction lists into report rows,
// keeping only calls whose destination is the audited contract. Each call's
// payload is resolved against s; undecodable calls become unresolved rows
// rather than failures. Rows are ordered by block descending, external
// before internal within a block.
func Build(s *schema.Schema, external, internal []explorer.Transaction, opts Options) []Row {
	want := strings.ToLower(opts.Contract)

	var rows []Row
	add := func(txs []explorer.Transaction, isInternal bool) {
		for _, tx := range txs {
			if strings.ToLower(tx.To) != want {
				continue
			}
			dc := s.ResolveHex(tx.Input, opts.DecodeArgs)

			row := Row{
				TxHash:    tx.Hash,
				Block:     tx.ParseBlockNumber(),
				Timestamp: tx.ParseTimestamp(),
				From:      tx.From,
				Method:    dc.Method(),
				Selector:  dc.Selector,
				Internal:  isInternal,
				Failed:    tx.Failed(),
				ValueWei:  tx.Value,
			}
			if opts.DecodeArgs {
				row.Args = schema.FormatArgs(dc.Args)
				if dc.ArgErr != nil {
					row.ArgNote = "argument decode failed"
				}
			}
			if dc.Ambiguous {
				row.ArgNote = "ambiguous selector"
			}
			rows = append(rows, row)
		}
	}

	add(external, false)
	add(internal, true)

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Block != rows[j].Block {
			return rows[i].Block > rows[j].Block
		}
		// Within a block, direct transactions come before trace-level calls.
		return !rows[i].Internal && rows[j].Internal
	})

	return rows
}

// MethodCounts tallies rows per resolved method name, for the summary line.
func MethodCounts(rows []Row) map[string]int {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Method]++
	}
	return counts
}
