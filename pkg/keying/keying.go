// Package keying derives deterministic record addresses.
//
// Every record (wallet, paymaster, stake, bridge, lock, mint, burn) is addressed by
// Derive(namespace, fields...). Each component is length prefixed before hashing,
// so distinct (namespace, fields) tuples never share an encoding.
package keying

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/aa-bridge-middleware/pkg/auth"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// Record namespaces.
const (
	NamespaceEntryPoint = "entry_point"
	NamespaceWallet     = "wallet"
	NamespacePaymaster  = "paymaster"
	NamespaceStake      = "paymaster_stake"
	NamespaceBridge     = "bridge"
	NamespaceLock       = "lock"
	NamespaceMint       = "mint"
	NamespaceBurn       = "burn"
)

// Derive maps a namespace and ordered fields to a stable 32-byte address.
func Derive(namespace string, fields ...[]byte) types.Address {
	parts := make([][]byte, 0, 2+2*len(fields))
	parts = append(parts, auth.LE64(uint64(len(namespace))), []byte(namespace))
	for _, f := range fields {
		parts = append(parts, auth.LE64(uint64(len(f))), f)
	}
	return types.Address(crypto.Keccak256Hash(parts...))
}

func EntryPoint(authority types.Address) types.Address {
	return Derive(NamespaceEntryPoint, authority[:])
}

// Wallet is computed once at creation; recovery changes the owner but not the address.
func Wallet(owner types.Address, recoveryHash [32]byte) types.Address {
	return Derive(NamespaceWallet, owner[:], recoveryHash[:])
}

func Paymaster(owner types.Address) types.Address {
	return Derive(NamespacePaymaster, owner[:])
}

func Stake(paymaster types.Address) types.Address {
	return Derive(NamespaceStake, paymaster[:])
}

func Bridge(authority types.Address) types.Address {
	return Derive(NamespaceBridge, authority[:])
}

func Lock(bridge types.Address, id uint64) types.Address {
	return Derive(NamespaceLock, bridge[:], auth.LE64(id))
}

// Mint keys settlement records by (lock id, source chain), the double-mint guard.
func Mint(lockID, sourceChain uint64) types.Address {
	return Derive(NamespaceMint, auth.LE64(lockID), auth.LE64(sourceChain))
}

func Burn(bridge types.Address, id uint64) types.Address {
	return Derive(NamespaceBurn, bridge[:], auth.LE64(id))
}
