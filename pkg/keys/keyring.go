package keys

import (
	"fmt"
	"sync"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// Keyring holds signing identities indexed by address.
type Keyring struct {
	mu    sync.RWMutex
	keys  map[types.Address]*KeyPair
	order []types.Address
}

// NewKeyring creates a keyring from already decrypted keypairs.
func NewKeyring(pairs ...*KeyPair) *Keyring {
	kr := &Keyring{keys: make(map[types.Address]*KeyPair, len(pairs))}
	for _, kp := range pairs {
		kr.Add(kp)
	}
	return kr
}

// LoadKeyring decrypts every encrypted seed with masterKey.
func LoadKeyring(encryptedSeeds []string, masterKey []byte) (*Keyring, error) {
	pairs := make([]*KeyPair, 0, len(encryptedSeeds))
	for i, enc := range encryptedSeeds {
		seed, err := DecryptPrivateKey(enc, masterKey)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		kp, err := KeyPairFromSeed(seed)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		pairs = append(pairs, kp)
	}
	return NewKeyring(pairs...), nil
}

// Lookup returns the keypair for addr.
func (k *Keyring) Lookup(addr types.Address) (*KeyPair, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	kp, ok := k.keys[addr]
	return kp, ok
}

// Add stores kp, replacing any previous key for the same address.
func (k *Keyring) Add(kp *KeyPair) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.keys[kp.PublicKey]; !ok {
		k.order = append(k.order, kp.PublicKey)
	}
	k.keys[kp.PublicKey] = kp
}

// Addresses returns the held identities in insertion order.
func (k *Keyring) Addresses() []types.Address {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return append([]types.Address(nil), k.order...)
}

// Len returns the number of identities held.
func (k *Keyring) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.keys)
}
