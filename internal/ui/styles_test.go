package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateAddr(t *testing.T) {
	assert.Equal(t, "0xd8dA…6045", TruncateAddr("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
}

func TestTruncateAddrShortInput(t *testing.T) {
	assert.Equal(t, "0xabc", TruncateAddr("0xabc"))
}

func TestMethodContainsName(t *testing.T) {
	// Styling may add escape codes; the name itself must survive.
	assert.Contains(t, Method("transfer", true), "transfer")
	assert.Contains(t, Method("unresolved", false), "unresolved")
}

func TestStatusHelpers(t *testing.T) {
	assert.Contains(t, Success("done"), "done")
	assert.Contains(t, Warn("careful"), "careful")
	assert.Contains(t, Err("broken"), "broken")
}

func TestPadExactWidth(t *testing.T) {
	assert.Len(t, pad("ab", 5), 5)
	assert.Equal(t, "abcde", pad("abcdefgh", 5))
	assert.True(t, strings.HasPrefix(pad("ab", 5), "ab"))
}
