package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "tx_hash,block_number,timestamp_utc,from,method,selector,internal,failed,value_wei,args,note", lines[0])
}

func TestWriteCSVRows(t *testing.T) {
	rows := []Row{
		{
			TxHash:    "0xabc",
			Block:     19000123,
			Timestamp: 1700000000,
			From:      "0xcaller",
			Method:    "transfer",
			Selector:  "0xa9059cbb",
			Internal:  false,
			ValueWei:  "0",
		},
		{
			TxHash:   "0xdef",
			Block:    19000122,
			From:     "0xrouter",
			Method:   "unresolved",
			Internal: true,
			Failed:   true,
			ValueWei: "1000",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, "0xabc", records[1][0])
	assert.Equal(t, "19000123", records[1][1])
	assert.Equal(t, "2023-11-14T22:13:20Z", records[1][2])
	assert.Equal(t, "transfer", records[1][4])
	assert.Equal(t, "false", records[1][6])

	assert.Equal(t, "unresolved", records[2][4])
	assert.Equal(t, "true", records[2][6])
	assert.Equal(t, "true", records[2][7])
	// No timestamp parsed: the cell stays empty rather than epoch zero.
	assert.Empty(t, records[2][2])
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	rows := []Row{
		{TxHash: "0xabc", Method: "transfer", Args: "to=0x1; amount=1,000"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "to=0x1; amount=1,000", records[1][9])
}
