// Package bridge implements the threshold validated custody ledger: a chain
// registry and the lock, mint and burn record lifecycle.
//
// Invariants: no mint without a quorum of index aligned validator signatures,
// and at most one mint per (lock id, source chain).
package bridge

import (
	"fmt"

	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

const (
	MaxValidators      = 20
	MaxSupportedChains = 50
)

// ChainType is the execution family of a remote chain.
type ChainType uint8

const (
	ChainTypeEvm ChainType = iota
	ChainTypeSvm
)

func (c ChainType) String() string {
	if c == ChainTypeSvm {
		return "svm"
	}
	return "evm"
}

func (c ChainType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ChainType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "evm":
		*c = ChainTypeEvm
	case "svm":
		*c = ChainTypeSvm
	default:
		return fmt.Errorf("unknown chain type %q", string(b))
	}
	return nil
}

// SupportedChain is a registered remote domain.
type SupportedChain struct {
	ChainID          uint64        `json:"chain_id"`
	ChainType        ChainType     `json:"chain_type"`
	BridgeAddress    types.Address `json:"bridge_address"`
	MinConfirmations uint32        `json:"min_confirmations"`
	IsActive         bool          `json:"is_active"`
	TotalVolume      uint64        `json:"total_volume"`
}

// Bridge is the custody ledger. Its address doubles as the native vault.
type Bridge struct {
	Address         types.Address    `json:"address"`
	Authority       types.Address    `json:"authority"`
	Validators      []types.Address  `json:"validators"`
	Threshold       uint32           `json:"threshold"`
	Nonce           uint64           `json:"nonce"`
	TotalLocked     uint64           `json:"total_locked"`
	TotalMinted     uint64           `json:"total_minted"`
	IsPaused        bool             `json:"is_paused"`
	SupportedChains []SupportedChain `json:"supported_chains"`
	CreatedAt       int64            `json:"created_at"`
}

// New creates a bridge with an ordered validator set.
func New(authority types.Address, validators []types.Address, threshold uint32, now int64) (*Bridge, error) {
	if err := validateValidators(validators, threshold); err != nil {
		return nil, err
	}
	return &Bridge{
		Address:         keying.Bridge(authority),
		Authority:       authority,
		Validators:      append([]types.Address{}, validators...),
		Threshold:       threshold,
		SupportedChains: []SupportedChain{},
		CreatedAt:       now,
	}, nil
}

func validateValidators(validators []types.Address, threshold uint32) error {
	if threshold == 0 {
		return ErrInvalidThreshold
	}
	if len(validators) > MaxValidators {
		return fmt.Errorf("%w: %d > %d", ErrTooManyValidators, len(validators), MaxValidators)
	}
	if int(threshold) > len(validators) {
		return fmt.Errorf("%w: threshold %d, validators %d", ErrInsufficientValidators, threshold, len(validators))
	}
	seen := make(map[types.Address]struct{}, len(validators))
	for _, v := range validators {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateValidator, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Chain returns the registry entry for chainID.
func (b *Bridge) Chain(chainID uint64) (*SupportedChain, bool) {
	for i := range b.SupportedChains {
		if b.SupportedChains[i].ChainID == chainID {
			return &b.SupportedChains[i], true
		}
	}
	return nil, false
}

func (b *Bridge) activeChain(chainID uint64) (*SupportedChain, error) {
	chain, ok := b.Chain(chainID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrChainNotSupported, chainID)
	}
	if !chain.IsActive {
		return nil, fmt.Errorf("%w: %d", ErrChainInactive, chainID)
	}
	return chain, nil
}

func (b *Bridge) AddSupportedChain(caller types.Address, chain SupportedChain) error {
	if caller != b.Authority {
		return ErrUnauthorized
	}
	if len(b.SupportedChains) >= MaxSupportedChains {
		return ErrTooManyChains
	}
	if _, ok := b.Chain(chain.ChainID); ok {
		return fmt.Errorf("%w: %d", ErrChainAlreadySupported, chain.ChainID)
	}
	chain.TotalVolume = 0
	b.SupportedChains = append(b.SupportedChains, chain)
	return nil
}

func (b *Bridge) SetChainActive(caller types.Address, chainID uint64, active bool) error {
	if caller != b.Authority {
		return ErrUnauthorized
	}
	chain, ok := b.Chain(chainID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrChainNotSupported, chainID)
	}
	chain.IsActive = active
	return nil
}

func (b *Bridge) SetPaused(caller types.Address, paused bool) error {
	if caller != b.Authority {
		return ErrUnauthorized
	}
	b.IsPaused = paused
	return nil
}

// UpdateValidators replaces the validator set. The new set applies to the next
// mint, including mints of locks created under the previous set.
func (b *Bridge) UpdateValidators(caller types.Address, validators []types.Address, threshold uint32) error {
	if caller != b.Authority {
		return ErrUnauthorized
	}
	if err := validateValidators(validators, threshold); err != nil {
		return err
	}
	b.Validators = append([]types.Address{}, validators...)
	b.Threshold = threshold
	return nil
}

// nextID hands out the shared lock and burn identifier.
func (b *Bridge) nextID() (uint64, error) {
	id := b.Nonce
	next, err := types.CheckedAdd(b.Nonce, 1)
	if err != nil {
		return 0, err
	}
	b.Nonce = next
	return id, nil
}

// Clone returns a deep copy.
func (b *Bridge) Clone() *Bridge {
	c := *b
	c.Validators = append([]types.Address{}, b.Validators...)
	c.SupportedChains = append([]SupportedChain{}, b.SupportedChains...)
	return &c
}

func addVolume(chain *SupportedChain, amount uint64) error {
	v, err := types.CheckedAdd(chain.TotalVolume, amount)
	if err != nil {
		return err
	}
	chain.TotalVolume = v
	return nil
}
