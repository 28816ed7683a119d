// Package keys provides ed25519 identity generation, deterministic derivation and
// encryption of private key seeds at rest. Owner, guardian and validator
// identities are all ed25519 keys whose 32-byte public key is the account address.
package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/hkdf"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// KeyPair is an ed25519 signing identity
type KeyPair struct {
	PublicKey  types.Address
	PrivateKey ed25519.PrivateKey
}

// GenerateKeyPair generates a new random ed25519 keypair
func GenerateKeyPair() (*KeyPair, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}
	return KeyPairFromSeed(seed)
}

// KeyPairFromSeed rebuilds a keypair from its 32-byte seed
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub, err := types.BytesToAddress(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}
	return &KeyPair{PublicKey: pub, PrivateKey: priv}, nil
}

// DeriveKeyPair deterministically derives a keypair for label from a server seed.
// The same label and seed always give the same identity.
func DeriveKeyPair(label string, serverSeed []byte) (*KeyPair, error) {
	if len(serverSeed) < 32 {
		return nil, fmt.Errorf("server seed must be at least 32 bytes")
	}

	info := []byte("aa-bridge-key-" + label)
	reader := hkdf.New(sha256.New, serverSeed, nil, info)

	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(reader, seed); err != nil {
		return nil, fmt.Errorf("failed to derive key seed: %w", err)
	}
	return KeyPairFromSeed(seed)
}

// Seed returns the 32-byte private seed
func (kp *KeyPair) Seed() []byte {
	return kp.PrivateKey.Seed()
}

// Address returns the account identity of the keypair
func (kp *KeyPair) Address() types.Address {
	return kp.PublicKey
}

// Sign signs message
func (kp *KeyPair) Sign(message []byte) types.Signature {
	var sig types.Signature
	copy(sig[:], ed25519.Sign(kp.PrivateKey, message))
	return sig
}

// SignHash signs a 32-byte digest such as an operation hash or settlement message
func (kp *KeyPair) SignHash(hash common.Hash) types.Signature {
	return kp.Sign(hash.Bytes())
}

// Verify verifies a signature against a message
func (kp *KeyPair) Verify(message []byte, sig types.Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(kp.PublicKey[:]), message, sig[:])
}

// PublicKeyHex returns the public key as a hex string (for display/logging)
func (kp *KeyPair) PublicKeyHex() string {
	return kp.PublicKey.String()
}

// SeedHex returns the private seed with 0x prefix
func (kp *KeyPair) SeedHex() string {
	return hexutil.Encode(kp.Seed())
}
