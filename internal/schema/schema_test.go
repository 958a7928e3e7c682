package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const erc20ABI = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[]},
	{"type":"event","name":"Transfer","inputs":[]}
]`

func TestParseJSONBuildsFunctions(t *testing.T) {
	s, err := ParseJSON([]byte(erc20ABI))
	require.NoError(t, err)
	require.Len(t, s.Functions(), 3) // the event is skipped
}

func TestParseJSONEmptyInput(t *testing.T) {
	_, err := ParseJSON(nil)
	assert.ErrorIs(t, err, ErrEmptySchema)
}

func TestParseJSONNoFunctions(t *testing.T) {
	_, err := ParseJSON([]byte(`[{"type":"event","name":"Transfer","inputs":[]}]`))
	assert.ErrorIs(t, err, ErrEmptySchema)
}

func TestParseJSONInvalidJSON(t *testing.T) {
	_, err := ParseJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseJSONHardhatArtifact(t *testing.T) {
	artifact := `{"contractName":"Token","abi":` + erc20ABI + `,"bytecode":"0x6080"}`
	s, err := ParseJSON([]byte(artifact))
	require.NoError(t, err)
	assert.Len(t, s.Functions(), 3)
}

func TestParseJSONArtifactWithoutABIKey(t *testing.T) {
	_, err := ParseJSON([]byte(`{"bytecode":"0x6080"}`))
	assert.Error(t, err)
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptySchema)
}

func TestCanonicalSignature(t *testing.T) {
	s, err := New([]Function{
		{Name: "transfer", Params: []Param{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "transfer(address,uint256)", s.Functions()[0].Signature())
}

func TestCanonicalSignatureNoParams(t *testing.T) {
	s, err := New([]Function{{Name: "totalSupply"}})
	require.NoError(t, err)
	assert.Equal(t, "totalSupply()", s.Functions()[0].Signature())
}

func TestSelectorKnownVector(t *testing.T) {
	// keccak256("transfer(address,uint256)")[:4] is the canonical ERC-20 vector.
	sel := SelectorOf("transfer(address,uint256)")
	assert.Equal(t, [4]byte{0xa9, 0x05, 0x9c, 0xbb}, sel)
}

func TestSelectorHex(t *testing.T) {
	s, err := ParseJSON([]byte(erc20ABI))
	require.NoError(t, err)
	assert.Equal(t, "0xa9059cbb", s.Functions()[0].SelectorHex())
}

func TestLookupFound(t *testing.T) {
	s, err := ParseJSON([]byte(erc20ABI))
	require.NoError(t, err)

	fn, ok := s.Lookup([4]byte{0xa9, 0x05, 0x9c, 0xbb})
	require.True(t, ok)
	assert.Equal(t, "transfer", fn.Name)
}

func TestLookupUnknown(t *testing.T) {
	s, err := ParseJSON([]byte(erc20ABI))
	require.NoError(t, err)

	_, ok := s.Lookup([4]byte{0xde, 0xad, 0xbe, 0xef})
	assert.False(t, ok)
}

func TestCollidingSelectorsAreAmbiguous(t *testing.T) {
	// "transfer(address,uint256)" and "many_msg_babbage(bytes1)" are a
	// well-known 4-byte collision: both hash to 0xa9059cbb.
	s, err := New([]Function{
		{Name: "transfer", Params: []Param{{Type: "address"}, {Type: "uint256"}}},
		{Name: "many_msg_babbage", Params: []Param{{Type: "bytes1"}}},
	})
	require.NoError(t, err)

	sel := [4]byte{0xa9, 0x05, 0x9c, 0xbb}
	assert.True(t, s.Ambiguous(sel))

	_, ok := s.Lookup(sel)
	assert.False(t, ok, "ambiguous selectors must not route")

	// The first claimant stays listed; only selector routing refuses it.
	require.Len(t, s.Functions(), 1)
	assert.Equal(t, "transfer", s.Functions()[0].Name)
}

func TestTupleParamsAreConstructible(t *testing.T) {
	// Parenthesized tuple tags parse into full typed arguments.
	s, err := New([]Function{
		{Name: "execute", Params: []Param{{Name: "op", Type: "(address,uint256)"}}},
	})
	require.NoError(t, err)
	require.Len(t, s.Functions(), 1)
	assert.NoError(t, s.Functions()[0].argErr)
	assert.Equal(t, "execute((address,uint256))", s.Functions()[0].Signature())
}

func TestMalformedParamTypeResolvesNameOnly(t *testing.T) {
	// A corrupt type tag (here a typo'd base type) cannot build a typed
	// argument; the function must still be in the selector table.
	s, err := New([]Function{
		{Name: "bogus", Params: []Param{{Name: "x", Type: "adress"}}},
	})
	require.NoError(t, err)
	require.Len(t, s.Functions(), 1)
	assert.Error(t, s.Functions()[0].argErr)
}
