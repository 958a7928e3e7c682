package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/callscope/internal/schema"
	"github.com/Mohsinsiddi/callscope/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"
)

var selectorCmd = &cobra.Command{
	Use:   "selector <signature>",
	Short: "Compute a 4-byte function selector",
	Long: `Compute a 4-byte function selector from a function signature.

Parameter names are stripped automatically, so both canonical and
Solidity-style signatures work.

Examples:
  callscope selector "transfer(address,uint256)"          # → 0xa9059cbb
  callscope selector "transfer(address to, uint256 amt)"  # → 0xa9059cbb
  callscope selector "balanceOf(address)"                 # → 0x70a08231`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig := normalizeSignature(args[0])

		sel := schema.SelectorOf(sig)

		h := sha3.NewLegacyKeccak256()
		h.Write([]byte(sig))
		full := h.Sum(nil)

		pairs := [][2]string{
			{"Signature", sig},
			{"Selector", ui.Val("0x" + hex.EncodeToString(sel[:]))},
			{"Full Hash", "0x" + hex.EncodeToString(full)},
		}

		fmt.Println(ui.KeyValueBlock("Function Selector", pairs))
		return nil
	},
}

// normalizeSignature removes parameter names, keeping only types.
// "transfer(address to, uint256 amount)" → "transfer(address,uint256)"
func normalizeSignature(sig string) string {
	parenIdx := strings.Index(sig, "(")
	if parenIdx < 0 {
		return sig
	}

	name := sig[:parenIdx]
	paramStr := strings.TrimSuffix(sig[parenIdx+1:], ")")

	if paramStr == "" {
		return name + "()"
	}

	params := strings.Split(paramStr, ",")
	var types []string
	for _, p := range params {
		p = strings.TrimSpace(p)
		// Take only the first word (the type), skip the name.
		parts := strings.Fields(p)
		if len(parts) > 0 {
			types = append(types, parts[0])
		}
	}

	return name + "(" + strings.Join(types, ",") + ")"
}

func init() {
	// No flags — positional arg only.
}
