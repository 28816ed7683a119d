package types

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressHex(t *testing.T) {
	var a Address
	a[0], a[31] = 0xab, 0x01

	parsed, err := HexToAddress(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)

	_, err = HexToAddress("0x1234")
	assert.Error(t, err)
	_, err = HexToAddress("1234")
	assert.Error(t, err)
}

func TestAssetJSON(t *testing.T) {
	mint := MustHexToAddress("0x0101010101010101010101010101010101010101010101010101010101010101")

	out, err := json.Marshal(Token(mint))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"token","mint":"`+mint.String()+`"}`, string(out))

	var decoded Asset
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, Token(mint), decoded)

	require.NoError(t, json.Unmarshal([]byte(`{"kind":"native"}`), &decoded))
	assert.True(t, decoded.IsNative())
	assert.Equal(t, ZeroAddress[:], decoded.MintBytes())

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"token"}`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"stock"}`), &decoded))
}

func TestCheckedArithmetic(t *testing.T) {
	sum, err := CheckedAdd(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), sum)

	_, err = CheckedAdd(math.MaxUint64, 1)
	assert.True(t, errors.Is(err, ErrArithmeticOverflow))

	prod, err := CheckedMul(100, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), prod)

	_, err = CheckedMul(math.MaxUint64, 2)
	assert.True(t, errors.Is(err, ErrArithmeticOverflow))

	assert.Equal(t, uint64(200), SaturatingSub(500, 300))
	assert.Equal(t, uint64(0), SaturatingSub(300, 500))
}
