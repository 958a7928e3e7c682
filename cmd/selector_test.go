package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSignatureAlreadyCanonical(t *testing.T) {
	assert.Equal(t, "transfer(address,uint256)", normalizeSignature("transfer(address,uint256)"))
}

func TestNormalizeSignatureStripsParamNames(t *testing.T) {
	assert.Equal(t, "transfer(address,uint256)", normalizeSignature("transfer(address to, uint256 amount)"))
}

func TestNormalizeSignatureNoParams(t *testing.T) {
	assert.Equal(t, "totalSupply()", normalizeSignature("totalSupply()"))
}

func TestNormalizeSignatureNoParens(t *testing.T) {
	// Bare name passes through unchanged.
	assert.Equal(t, "transfer", normalizeSignature("transfer"))
}

func TestNormalizeSignatureExtraSpaces(t *testing.T) {
	assert.Equal(t, "approve(address,uint256)", normalizeSignature("approve( address spender , uint256 value )"))
}
