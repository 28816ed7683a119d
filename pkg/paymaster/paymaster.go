// Package paymaster implements fee sponsorship: negotiation of the payment method
// at validation time and reconciliation of the pre-charge against actual cost.
package paymaster

import (
	"context"
	"fmt"

	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

const (
	// MaxSupportedTokens bounds the token registry of one paymaster.
	MaxSupportedTokens = 20
	// RateWindowSeconds is the length of the rate limiting window.
	RateWindowSeconds int64 = 3600
)

// Config is the sponsorship policy. Zero limits mean unlimited.
type Config struct {
	MaxOperationsPerHour uint64          `json:"max_operations_per_hour"`
	MaxCostPerOperation  uint64          `json:"max_cost_per_operation" validate:"gt=0"`
	AllowedUsers         []types.Address `json:"allowed_users" validate:"max=100"`
	RateLimitPerUser     uint64          `json:"rate_limit_per_user"`
	RequirePreDeposit    bool            `json:"require_pre_deposit"`
}

// SupportedToken is a fee-payable token. RatePerLamport is token units per unit of gas cost.
type SupportedToken struct {
	Mint           types.Address  `json:"mint"`
	RatePerLamport uint64         `json:"rate_per_lamport"`
	Oracle         *types.Address `json:"oracle,omitempty"`
	IsActive       bool           `json:"is_active"`
	TotalCollected uint64         `json:"total_collected"`
}

// RateWindow counts validations in the current hour.
type RateWindow struct {
	Start      int64                    `json:"start"`
	Operations uint64                   `json:"operations"`
	PerUser    map[types.Address]uint64 `json:"per_user,omitempty"`
}

// Paymaster is a fee sponsorship policy holder.
type Paymaster struct {
	Address         types.Address    `json:"address"`
	Owner           types.Address    `json:"owner"`
	EntryPoint      types.Address    `json:"entry_point"`
	Config          Config           `json:"config"`
	SupportedTokens []SupportedToken `json:"supported_tokens"`
	TotalSponsored  uint64           `json:"total_sponsored"`
	TotalOperations uint64           `json:"total_operations"`
	IsActive        bool             `json:"is_active"`
	RateWindow      RateWindow       `json:"rate_window"`
	CreatedAt       int64            `json:"created_at"`
}

// New creates an active paymaster owned by owner.
func New(owner, entryPoint types.Address, cfg Config, now int64) *Paymaster {
	return &Paymaster{
		Address:         keying.Paymaster(owner),
		Owner:           owner,
		EntryPoint:      entryPoint,
		Config:          cfg,
		SupportedTokens: []SupportedToken{},
		IsActive:        true,
		RateWindow:      RateWindow{Start: now},
		CreatedAt:       now,
	}
}

// Token returns the registry entry for mint.
func (p *Paymaster) Token(mint types.Address) (*SupportedToken, bool) {
	for i := range p.SupportedTokens {
		if p.SupportedTokens[i].Mint == mint {
			return &p.SupportedTokens[i], true
		}
	}
	return nil, false
}

// AddSupportedToken registers mint. A zero rate is only accepted with an oracle.
func (p *Paymaster) AddSupportedToken(caller, mint types.Address, rate uint64, oracle *types.Address) error {
	if caller != p.Owner {
		return ErrUnauthorized
	}
	if len(p.SupportedTokens) >= MaxSupportedTokens {
		return ErrTooManyTokens
	}
	if _, ok := p.Token(mint); ok {
		return fmt.Errorf("%w: %s", ErrTokenAlreadySupported, mint)
	}
	if rate == 0 && oracle == nil {
		return ErrInvalidTokenRate
	}

	p.SupportedTokens = append(p.SupportedTokens, SupportedToken{
		Mint:           mint,
		RatePerLamport: rate,
		Oracle:         oracle,
		IsActive:       true,
	})
	return nil
}

func (p *Paymaster) SetTokenActive(caller, mint types.Address, active bool) error {
	if caller != p.Owner {
		return ErrUnauthorized
	}
	tok, ok := p.Token(mint)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTokenNotSupported, mint)
	}
	tok.IsActive = active
	return nil
}

func (p *Paymaster) UpdateConfig(caller types.Address, cfg Config) error {
	if caller != p.Owner {
		return ErrUnauthorized
	}
	p.Config = cfg
	return nil
}

func (p *Paymaster) SetActive(caller types.Address, active bool) error {
	if caller != p.Owner {
		return ErrUnauthorized
	}
	p.IsActive = active
	return nil
}

// Withdraw moves funds out of paymaster custody to destination.
func (p *Paymaster) Withdraw(ctx context.Context, caller types.Address, asset types.Asset, amount uint64,
	destination types.Address, transfers ledger.Ledger) error {
	if caller != p.Owner {
		return ErrUnauthorized
	}
	if destination.IsZero() {
		return ErrMissingDestination
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	if err := transfers.Transfer(ctx, asset, p.Address, destination, amount); err != nil {
		return fmt.Errorf("withdraw %d %s: %w", amount, asset, err)
	}
	return nil
}

// Clone returns a deep copy.
func (p *Paymaster) Clone() *Paymaster {
	c := *p
	c.Config.AllowedUsers = append([]types.Address(nil), p.Config.AllowedUsers...)
	c.SupportedTokens = make([]SupportedToken, len(p.SupportedTokens))
	for i, tok := range p.SupportedTokens {
		if tok.Oracle != nil {
			o := *tok.Oracle
			tok.Oracle = &o
		}
		c.SupportedTokens[i] = tok
	}
	if p.RateWindow.PerUser != nil {
		c.RateWindow.PerUser = make(map[types.Address]uint64, len(p.RateWindow.PerUser))
		for k, v := range p.RateWindow.PerUser {
			c.RateWindow.PerUser[k] = v
		}
	}
	return &c
}
