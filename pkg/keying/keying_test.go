package keying

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

func TestDeriveIsDeterministic(t *testing.T) {
	a := Derive("wallet", []byte{1, 2}, []byte{3})
	b := Derive("wallet", []byte{1, 2}, []byte{3})
	assert.Equal(t, a, b)
}

func TestDeriveLengthPrefixesFields(t *testing.T) {
	// same concatenation, different split
	assert.NotEqual(t, Derive("x", []byte{1, 2}, []byte{3}), Derive("x", []byte{1}, []byte{2, 3}))
	assert.NotEqual(t, Derive("ab", []byte("c")), Derive("a", []byte("bc")))
}

func TestNamespacesAreDisjoint(t *testing.T) {
	var bridge types.Address
	bridge[0] = 9

	assert.NotEqual(t, Lock(bridge, 1), Burn(bridge, 1))
	assert.NotEqual(t, Lock(bridge, 1), Lock(bridge, 2))
	assert.NotEqual(t, Mint(1, 2), Mint(2, 1))
	assert.Equal(t, Mint(7, 1), Mint(7, 1))
	assert.NotEqual(t, Paymaster(bridge), Bridge(bridge))
}
