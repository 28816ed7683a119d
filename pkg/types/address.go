// Package types holds the identity, signature and asset types shared by the
// wallet, paymaster, entry point and bridge state machines.
package types

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// AddressLength is the byte length of an account identity.
	AddressLength = 32
	// SignatureLength is the byte length of an ed25519 signature.
	SignatureLength = 64
)

// Address identifies an account: an owner, guardian or validator public key,
// or the deterministic address of a stored record.
type Address [AddressLength]byte

// ZeroAddress is the all-zero address.
var ZeroAddress Address

// BytesToAddress copies b into an Address. b must be exactly 32 bytes long.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("invalid address length: expected %d, got %d", AddressLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// HexToAddress decodes a 0x-prefixed hex string.
func HexToAddress(s string) (Address, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address hex: %w", err)
	}
	return BytesToAddress(b)
}

// MustHexToAddress is HexToAddress for constants and tests.
func MustHexToAddress(s string) Address {
	a, err := HexToAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) Bytes() []byte { return a[:] }

func (a Address) IsZero() bool { return a == ZeroAddress }

func (a Address) String() string { return hexutil.Encode(a[:]) }

// Short returns the first bytes of the address for log fields.
func (a Address) Short() string { return hexutil.Encode(a[:4]) }

func (a Address) Compare(b Address) int { return bytes.Compare(a[:], b[:]) }

func (a Address) MarshalText() ([]byte, error) {
	return hexutil.Bytes(a[:]).MarshalText()
}

func (a *Address) UnmarshalText(input []byte) error {
	var b hexutil.Bytes
	if err := b.UnmarshalText(input); err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}
	parsed, err := BytesToAddress(b)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ContainsAddress reports whether list holds a.
func ContainsAddress(list []Address, a Address) bool {
	for _, item := range list {
		if item == a {
			return true
		}
	}
	return false
}

// Signature is a detached ed25519 signature.
type Signature [SignatureLength]byte

// BytesToSignature copies b into a Signature. b must be exactly 64 bytes long.
func BytesToSignature(b []byte) (Signature, error) {
	var s Signature
	if len(b) != SignatureLength {
		return s, fmt.Errorf("invalid signature length: expected %d, got %d", SignatureLength, len(b))
	}
	copy(s[:], b)
	return s, nil
}

func (s Signature) Bytes() []byte { return s[:] }

func (s Signature) String() string { return hexutil.Encode(s[:]) }

func (s Signature) MarshalText() ([]byte, error) {
	return hexutil.Bytes(s[:]).MarshalText()
}

func (s *Signature) UnmarshalText(input []byte) error {
	var b hexutil.Bytes
	if err := b.UnmarshalText(input); err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}
	parsed, err := BytesToSignature(b)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
