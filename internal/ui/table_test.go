package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRenderContainsHeadersAndRows(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "Tx", Width: 10},
		{Title: "Method", Width: 20},
	})
	tbl.AddRow(Row{"0xabc", "transfer"})
	tbl.AddRow(Row{"0xdef", "unresolved"})

	out := tbl.Render()
	assert.Contains(t, out, "Tx")
	assert.Contains(t, out, "Method")
	assert.Contains(t, out, "transfer")
	assert.Contains(t, out, "unresolved")
}

func TestTableRenderRowCount(t *testing.T) {
	tbl := NewTable([]Column{{Title: "A", Width: 4}})
	tbl.AddRow(Row{"1"})
	tbl.AddRow(Row{"2"})

	// header + divider + 2 data rows
	lines := strings.Split(strings.TrimSuffix(tbl.Render(), "\n"), "\n")
	require.Len(t, lines, 4)
}

func TestTableMissingCellsRenderEmpty(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "A", Width: 4},
		{Title: "B", Width: 4},
	})
	tbl.AddRow(Row{"x"}) // second cell missing

	assert.NotPanics(t, func() { tbl.Render() })
}

func TestKeyValueBlock(t *testing.T) {
	out := KeyValueBlock("Title", [][2]string{
		{"Method", "transfer"},
		{"Selector", "0xa9059cbb"},
	})
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "transfer")
	assert.Contains(t, out, "0xa9059cbb")
}
