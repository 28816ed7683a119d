package entrypoint

import (
	"context"
	"fmt"
	"math"

	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// PaymasterStake is collateral posted by a paymaster. WithdrawTime 0 means locked.
type PaymasterStake struct {
	Address      types.Address `json:"address"`
	Paymaster    types.Address `json:"paymaster"`
	Owner        types.Address `json:"owner"`
	Stake        uint64        `json:"stake"`
	UnstakeDelay uint64        `json:"unstake_delay"`
	WithdrawTime int64         `json:"withdraw_time"`
}

// NewStake returns an empty stake record for pm.
func NewStake(pm *paymaster.Paymaster) *PaymasterStake {
	return &PaymasterStake{
		Address:   keying.Stake(pm.Address),
		Paymaster: pm.Address,
		Owner:     pm.Owner,
	}
}

// IsLocked reports whether the stake counts towards pre-deposit requirements.
func (s *PaymasterStake) IsLocked() bool {
	return s.WithdrawTime == 0
}

// AddStake moves deposit from the caller into the stake record and relocks it.
// The first deposit of a paymaster counts it in TotalPaymasters.
func (e *EntryPoint) AddStake(ctx context.Context, s *PaymasterStake, caller types.Address, deposit, unstakeDelay uint64,
	transfers ledger.Ledger) error {
	if caller != s.Owner {
		return ErrUnauthorized
	}
	if unstakeDelay < e.UnstakeDelay {
		return fmt.Errorf("%w: %d < %d", ErrInvalidUnstakeDelay, unstakeDelay, e.UnstakeDelay)
	}
	if unstakeDelay > MaxUnstakeDelay {
		return fmt.Errorf("%w: %d > %d", ErrInvalidUnstakeDelay, unstakeDelay, MaxUnstakeDelay)
	}
	total, err := types.CheckedAdd(s.Stake, deposit)
	if err != nil {
		return err
	}
	if total < e.MinStake {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientStake, total, e.MinStake)
	}
	if deposit > 0 {
		if err := transfers.Transfer(ctx, types.Native(), caller, s.Address, deposit); err != nil {
			return fmt.Errorf("stake deposit: %w", err)
		}
	}

	if s.Stake == 0 {
		e.TotalPaymasters++
	}
	s.Stake = total
	s.UnstakeDelay = unstakeDelay
	s.WithdrawTime = 0
	return nil
}

// UnlockStake starts the unstake delay.
func (e *EntryPoint) UnlockStake(s *PaymasterStake, caller types.Address, now int64) error {
	if caller != s.Owner {
		return ErrUnauthorized
	}
	if s.Stake == 0 {
		return ErrNoStake
	}
	if s.UnstakeDelay > MaxUnstakeDelay {
		return fmt.Errorf("%w: %d > %d", ErrInvalidUnstakeDelay, s.UnstakeDelay, MaxUnstakeDelay)
	}
	delay := int64(s.UnstakeDelay)
	if delay > math.MaxInt64-now {
		return fmt.Errorf("%w: %d + %d", types.ErrArithmeticOverflow, now, delay)
	}
	withdrawTime := now + delay
	if withdrawTime <= 0 {
		return fmt.Errorf("%w: withdraw time %d", ErrInvalidUnstakeDelay, withdrawTime)
	}
	s.WithdrawTime = withdrawTime
	return nil
}

// WithdrawStake releases an unlocked stake to destination once the delay has passed.
func (e *EntryPoint) WithdrawStake(ctx context.Context, s *PaymasterStake, caller, destination types.Address, now int64,
	transfers ledger.Ledger) (uint64, error) {
	if caller != s.Owner {
		return 0, ErrUnauthorized
	}
	if s.Stake == 0 {
		return 0, ErrNoStake
	}
	if s.WithdrawTime <= 0 || now < s.WithdrawTime {
		return 0, fmt.Errorf("%w: withdraw time %d, now %d", ErrWithdrawTimeNotReached, s.WithdrawTime, now)
	}
	if destination.IsZero() {
		return 0, paymaster.ErrMissingDestination
	}

	amount := s.Stake
	if err := transfers.Transfer(ctx, types.Native(), s.Address, destination, amount); err != nil {
		return 0, fmt.Errorf("stake withdraw: %w", err)
	}
	s.Stake = 0
	s.WithdrawTime = 0
	if e.TotalPaymasters > 0 {
		e.TotalPaymasters--
	}
	return amount, nil
}

// DepositInfo summarizes a paymaster's deposit and stake.
type DepositInfo struct {
	Paymaster    types.Address `json:"paymaster"`
	Deposit      uint64        `json:"deposit"`
	Staked       bool          `json:"staked"`
	Stake        uint64        `json:"stake"`
	UnstakeDelay uint64        `json:"unstake_delay"`
	WithdrawTime int64         `json:"withdraw_time"`
}

// NewDepositInfo combines the paymaster's native balance with its optional stake.
func (e *EntryPoint) NewDepositInfo(pm types.Address, balance uint64, s *PaymasterStake) DepositInfo {
	info := DepositInfo{Paymaster: pm, Deposit: balance}
	if s != nil {
		info.Staked = s.Stake >= e.MinStake && s.IsLocked()
		info.Stake = s.Stake
		info.UnstakeDelay = s.UnstakeDelay
		info.WithdrawTime = s.WithdrawTime
	}
	return info
}

func (e *EntryPoint) checkPreDeposit(s *PaymasterStake) error {
	if s == nil || !s.IsLocked() || s.Stake < e.MinStake {
		return ErrInsufficientStake
	}
	return nil
}
