package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// csvHeader is the fixed column order of the report file.
var csvHeader = []string{
	"tx_hash",
	"block_number",
	"timestamp_utc",
	"from",
	"method",
	"selector",
	"internal",
	"failed",
	"value_wei",
	"args",
	"note",
}

// WriteCSV emits rows as UTF-8 CSV with a single header row. Quoting and
// escaping follow encoding/csv defaults.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range rows {
		ts := ""
		if r.Timestamp > 0 {
			ts = time.Unix(r.Timestamp, 0).UTC().Format(time.RFC3339)
		}
		rec := []string{
			r.TxHash,
			strconv.FormatUint(r.Block, 10),
			ts,
			r.From,
			r.Method,
			r.Selector,
			strconv.FormatBool(r.Internal),
			strconv.FormatBool(r.Failed),
			r.ValueWei,
			r.Args,
			r.ArgNote,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.TxHash, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
