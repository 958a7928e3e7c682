package schema

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/crypto/sha3"
)

// ErrEmptySchema is returned when an ABI contains no callable functions.
// There is nothing to decode against, so report generation must stop.
var ErrEmptySchema = errors.New("interface schema has no functions")

// Param is a single typed function parameter.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Function describes one callable function of a contract interface.
type Function struct {
	Name   string
	Params []Param

	sig string  // canonical signature, e.g. "transfer(address,uint256)"
	sel [4]byte // leading 4 bytes of keccak256(sig)

	// args is the typed argument tuple used for decoding. It is nil when any
	// parameter type could not be constructed (a corrupt or unsupported type
	// tag) — such functions still resolve by name.
	args   gethabi.Arguments
	argErr error
}

// Signature returns the canonical signature: name plus comma-joined parameter
// types in parentheses, no spaces.
func (f *Function) Signature() string { return f.sig }

// Selector returns the 4-byte selector derived from the canonical signature.
func (f *Function) Selector() [4]byte { return f.sel }

// SelectorHex returns the selector as a 0x-prefixed hex string.
func (f *Function) SelectorHex() string {
	return "0x" + hex.EncodeToString(f.sel[:])
}

// Schema is an immutable selector table over a contract's callable functions.
// Build one with New or ParseJSON; it is safe to share after construction.
type Schema struct {
	funcs      []*Function
	bySelector map[[4]byte]*Function
	// collisions maps selectors claimed by more than one function. Such a
	// selector cannot be routed unambiguously and resolves to "unresolved".
	collisions map[[4]byte][]string
}

// New builds a Schema from explicit function descriptors.
func New(fns []Function) (*Schema, error) {
	if len(fns) == 0 {
		return nil, ErrEmptySchema
	}

	s := &Schema{
		bySelector: make(map[[4]byte]*Function, len(fns)),
		collisions: make(map[[4]byte][]string),
	}

	for i := range fns {
		f := fns[i]
		f.sig = canonicalSignature(f.Name, f.Params)
		f.sel = SelectorOf(f.sig)
		f.args, f.argErr = buildArguments(f.Params)

		if prev, ok := s.bySelector[f.sel]; ok {
			// First collision on this selector: record both signatures.
			if len(s.collisions[f.sel]) == 0 {
				s.collisions[f.sel] = append(s.collisions[f.sel], prev.sig)
			}
			s.collisions[f.sel] = append(s.collisions[f.sel], f.sig)
			continue
		}

		s.bySelector[f.sel] = &f
		s.funcs = append(s.funcs, &f)
	}

	return s, nil
}

// abiEntry mirrors one element of a standard ABI JSON array. Only function
// entries matter here; events, constructors and errors are skipped.
type abiEntry struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Inputs          []Param `json:"inputs"`
	StateMutability string  `json:"stateMutability"`
}

// ParseJSON builds a Schema from ABI JSON. Accepts either a raw ABI array
// ([{"type":"function",...}, ...]) or a Hardhat/Foundry artifact object with
// an "abi" key — both formats are detected automatically.
func ParseJSON(data []byte) (*Schema, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptySchema
	}

	// Artifact object: unwrap the "abi" key.
	if data[0] == '{' {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(data, &artifact); err != nil {
			return nil, fmt.Errorf("invalid ABI JSON: %w", err)
		}
		if len(artifact.ABI) == 0 {
			return nil, fmt.Errorf("JSON object has no \"abi\" key — expected a raw ABI array or a Hardhat/Foundry artifact")
		}
		data = artifact.ABI
	}

	var entries []abiEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid ABI JSON: expected an array of function definitions: %w", err)
	}

	var fns []Function
	for _, e := range entries {
		if e.Type != "function" {
			continue
		}
		fns = append(fns, Function{Name: e.Name, Params: e.Inputs})
	}
	if len(fns) == 0 {
		return nil, ErrEmptySchema
	}

	return New(fns)
}

// Functions returns the listed functions in schema order. The first claimant
// of a colliding selector stays listed, but Lookup still refuses the selector.
func (s *Schema) Functions() []*Function { return s.funcs }

// Lookup finds the function claiming sel. ok is false for unknown or
// ambiguous selectors.
func (s *Schema) Lookup(sel [4]byte) (*Function, bool) {
	if len(s.collisions[sel]) > 0 {
		return nil, false
	}
	f, ok := s.bySelector[sel]
	return f, ok
}

// Ambiguous reports whether sel is claimed by more than one function.
func (s *Schema) Ambiguous(sel [4]byte) bool {
	return len(s.collisions[sel]) > 0
}

// SelectorOf computes the 4-byte selector of a canonical signature string.
func SelectorOf(sig string) [4]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(sig))
	var sel [4]byte
	copy(sel[:], h.Sum(nil)[:4])
	return sel
}

// canonicalSignature joins name and parameter types: "name(t1,t2)", no spaces.
func canonicalSignature(name string, params []Param) string {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return name + "(" + strings.Join(types, ",") + ")"
}

// buildArguments constructs the typed argument tuple for decoding.
// Parenthesized tuple tags parse fine; a corrupt or unsupported type tag
// fails here, and the error is kept so Resolve can report name-only
// resolution.
func buildArguments(params []Param) (gethabi.Arguments, error) {
	args := make(gethabi.Arguments, 0, len(params))
	for i, p := range params {
		t, err := gethabi.NewType(p.Type, "", nil)
		if err != nil {
			return nil, fmt.Errorf("param %d (%s): %w", i, p.Type, err)
		}
		args = append(args, gethabi.Argument{Name: p.Name, Type: t})
	}
	return args, nil
}
