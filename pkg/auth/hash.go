package auth

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Hash returns Keccak-256 over the concatenation of parts. It is the single
// message digest used for operation hashes, settlement messages and request
// signatures.
func Hash(parts ...[]byte) common.Hash {
	return crypto.Keccak256Hash(parts...)
}

// LE64 encodes v as 8 little-endian bytes.
func LE64(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}
