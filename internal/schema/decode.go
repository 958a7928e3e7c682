package schema

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// UnresolvedMethod is the marker emitted for calls that could not be routed
// to a function: empty payloads, unknown selectors, ambiguous selectors.
const UnresolvedMethod = "unresolved"

// Value is one decoded argument.
type Value struct {
	Name  string
	Type  string
	Value interface{}
}

// DecodedCall is the result of resolving a raw call payload against a Schema.
// Unresolved is a normal outcome, not an error — contracts routinely receive
// plain value transfers and calls outside the published interface.
type DecodedCall struct {
	Name      string // resolved function name, "" when unresolved
	Resolved  bool
	Ambiguous bool   // selector matched more than one function
	Selector  string // 0x-prefixed selector hex, "" when payload < 4 bytes
	Args      []Value
	ArgErr    error // set when the argument block could not be decoded
}

// Method returns the resolved name, or the unresolved marker.
func (d DecodedCall) Method() string {
	if d.Resolved {
		return d.Name
	}
	return UnresolvedMethod
}

// Resolve routes payload to a function by its leading 4-byte selector.
// Payloads shorter than 4 bytes (including empty, i.e. plain value
// transfers) and unknown or ambiguous selectors yield an unresolved result.
// When withArgs is set, the remaining bytes are ABI-decoded against the
// function's parameter tuple; decode failures are folded into ArgErr.
// Resolve never panics or returns an error — one bad historical call must
// not abort resolution of the rest of a batch.
func (s *Schema) Resolve(payload []byte, withArgs bool) (dc DecodedCall) {
	defer func() {
		if r := recover(); r != nil {
			dc = DecodedCall{Selector: dc.Selector, ArgErr: fmt.Errorf("decode panic: %v", r)}
		}
	}()

	if len(payload) < 4 {
		return DecodedCall{}
	}

	var sel [4]byte
	copy(sel[:], payload[:4])
	dc.Selector = "0x" + hex.EncodeToString(sel[:])

	if s.Ambiguous(sel) {
		dc.Ambiguous = true
		return dc
	}

	fn, ok := s.Lookup(sel)
	if !ok {
		return dc
	}

	dc.Name = fn.Name
	dc.Resolved = true

	if !withArgs {
		return dc
	}
	if fn.argErr != nil {
		dc.ArgErr = fn.argErr
		return dc
	}

	vals, err := fn.args.Unpack(payload[4:])
	if err != nil {
		dc.ArgErr = err
		return dc
	}
	for i, v := range vals {
		dc.Args = append(dc.Args, Value{
			Name:  fn.args[i].Name,
			Type:  fn.args[i].Type.String(),
			Value: v,
		})
	}
	return dc
}

// ResolveHex decodes a 0x-prefixed hex calldata string (the explorer's
// "input" field) and resolves it. Undecodable hex is treated like an empty
// payload.
func (s *Schema) ResolveHex(input string, withArgs bool) DecodedCall {
	clean := strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X")
	payload, err := hex.DecodeString(clean)
	if err != nil {
		return DecodedCall{}
	}
	return s.Resolve(payload, withArgs)
}

// FormatArgs renders decoded arguments as "name=value" pairs joined by "; ".
// Suitable for a single CSV cell.
func FormatArgs(args []Value) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		label := a.Name
		if label == "" {
			label = fmt.Sprintf("arg%d", i)
		}
		parts[i] = fmt.Sprintf("%s=%v", label, a.Value)
	}
	return strings.Join(parts, "; ")
}
