// Package wallet implements the smart account state machine: nonce ordering,
// the rolling daily spend window, freezing and guardian recovery.
//
// Every operation mutates the Wallet it is called on. Callers are expected to
// hold exclusive access to the record for the duration of the call and to
// persist it afterwards, including when an error is returned after the nonce
// commit point.
package wallet

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/aa-bridge-middleware/pkg/auth"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

const (
	// MaxGuardians bounds both the guardian set and the approval list.
	MaxGuardians = 10
	// DailyWindow is the length of the spend window in seconds.
	DailyWindow int64 = 86400
)

// State of a wallet.
type State int

const (
	StateActive State = iota
	StateFrozen
)

func (s State) String() string {
	if s == StateFrozen {
		return "frozen"
	}
	return "active"
}

// Wallet is a smart account controlled by one owner key.
type Wallet struct {
	Address         types.Address    `json:"address"`
	Owner           types.Address    `json:"owner"`
	RecoveryHash    common.Hash      `json:"recovery_hash"`
	Nonce           uint64           `json:"nonce"`
	DailyLimit      uint64           `json:"daily_limit"`
	DailySpent      uint64           `json:"daily_spent"`
	LastReset       int64            `json:"last_reset"`
	IsFrozen        bool             `json:"is_frozen"`
	Guardians       []types.Address  `json:"guardians"`
	PendingRecovery *RecoveryRequest `json:"pending_recovery,omitempty"`
	CreatedAt       int64            `json:"created_at"`
}

// RecoveryRequest is an in-flight ownership transfer.
type RecoveryRequest struct {
	NewOwner          types.Address   `json:"new_owner"`
	GuardianApprovals []types.Address `json:"guardian_approvals"`
	InitiatedAt       int64           `json:"initiated_at"`
}

// RecoveryProgress reports approvals after a recovery step.
type RecoveryProgress struct {
	Approvals int           `json:"approvals"`
	Required  int           `json:"required"`
	Completed bool          `json:"completed"`
	NewOwner  types.Address `json:"new_owner"`
}

// Execution is the success record of an authorized operation.
type Execution struct {
	OpHash common.Hash `json:"op_hash"`
	Nonce  uint64      `json:"nonce"`
}

// New creates a wallet. The address is fixed here and survives owner changes.
func New(owner types.Address, recoveryHash common.Hash, dailyLimit uint64, now int64) *Wallet {
	return &Wallet{
		Address:      keying.Wallet(owner, recoveryHash),
		Owner:        owner,
		RecoveryHash: recoveryHash,
		DailyLimit:   dailyLimit,
		LastReset:    now,
		Guardians:    []types.Address{},
		CreatedAt:    now,
	}
}

func (w *Wallet) State() State {
	if w.IsFrozen {
		return StateFrozen
	}
	return StateActive
}

// RequiredApprovals is floor(guardians/2)+1.
func (w *Wallet) RequiredApprovals() int {
	return len(w.Guardians)/2 + 1
}

func (w *Wallet) IsGuardian(addr types.Address) bool {
	return types.ContainsAddress(w.Guardians, addr)
}

// ExecuteUserOperation authorizes op against the wallet.
//
// The nonce is incremented as soon as it matches, so a later failure in the same
// call still consumes it. Operations without paymaster data are charged
// max_fee_per_gas against the daily window.
func (w *Wallet) ExecuteUserOperation(op *userop.UserOperation, now int64) (*Execution, error) {
	if w.IsFrozen {
		return nil, ErrWalletFrozen
	}
	if op.Sender != w.Address {
		return nil, fmt.Errorf("%w: sender %s, wallet %s", ErrSenderMismatch, op.Sender, w.Address)
	}
	if op.Nonce != w.Nonce {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInvalidNonce, w.Nonce, op.Nonce)
	}
	w.Nonce++

	if !op.HasPaymaster() {
		if err := w.spend(op.MaxFeePerGas, now); err != nil {
			return nil, err
		}
	}

	opHash := op.Hash()
	if !auth.VerifySignature(w.Owner, opHash.Bytes(), op.Signature) {
		return nil, ErrInvalidSignature
	}

	return &Execution{OpHash: opHash, Nonce: op.Nonce}, nil
}

func (w *Wallet) spend(amount uint64, now int64) error {
	if now-w.LastReset >= DailyWindow {
		w.DailySpent = 0
		w.LastReset = now
	}
	spent, err := types.CheckedAdd(w.DailySpent, amount)
	if err != nil || spent > w.DailyLimit {
		return fmt.Errorf("%w: spent %d, fee %d, limit %d", ErrDailyLimitExceeded, w.DailySpent, amount, w.DailyLimit)
	}
	w.DailySpent = spent
	return nil
}

// CheckExecution runs the same checks as ExecuteUserOperation without mutating w.
func (w *Wallet) CheckExecution(op *userop.UserOperation, now int64) error {
	c := w.Clone()
	_, err := c.ExecuteUserOperation(op, now)
	return err
}

// Freeze blocks execution. Any guardian may freeze.
func (w *Wallet) Freeze(caller types.Address) error {
	if !w.IsGuardian(caller) {
		return ErrUnauthorizedGuardian
	}
	w.IsFrozen = true
	return nil
}

// Unfreeze is owner only.
func (w *Wallet) Unfreeze(caller types.Address) error {
	if caller != w.Owner {
		return ErrUnauthorized
	}
	w.IsFrozen = false
	return nil
}

func (w *Wallet) AddGuardian(caller, guardian types.Address) error {
	if caller != w.Owner {
		return ErrUnauthorized
	}
	if guardian.IsZero() {
		return ErrInvalidGuardian
	}
	if len(w.Guardians) >= MaxGuardians {
		return ErrTooManyGuardians
	}
	if w.IsGuardian(guardian) {
		return ErrGuardianAlreadyExists
	}
	w.Guardians = append(w.Guardians, guardian)
	return nil
}

// RemoveGuardian also withdraws the guardian's approval of a pending recovery.
func (w *Wallet) RemoveGuardian(caller, guardian types.Address) error {
	if caller != w.Owner {
		return ErrUnauthorized
	}
	idx := indexOf(w.Guardians, guardian)
	if idx < 0 {
		return ErrGuardianNotFound
	}
	w.Guardians = append(w.Guardians[:idx], w.Guardians[idx+1:]...)

	if w.PendingRecovery != nil {
		if i := indexOf(w.PendingRecovery.GuardianApprovals, guardian); i >= 0 {
			approvals := w.PendingRecovery.GuardianApprovals
			w.PendingRecovery.GuardianApprovals = append(approvals[:i], approvals[i+1:]...)
		}
	}
	return nil
}

func (w *Wallet) SetDailyLimit(caller types.Address, limit uint64) error {
	if caller != w.Owner {
		return ErrUnauthorized
	}
	w.DailyLimit = limit
	return nil
}

// Clone returns a deep copy.
func (w *Wallet) Clone() *Wallet {
	c := *w
	c.Guardians = append([]types.Address{}, w.Guardians...)
	if w.PendingRecovery != nil {
		pr := *w.PendingRecovery
		pr.GuardianApprovals = append([]types.Address{}, w.PendingRecovery.GuardianApprovals...)
		c.PendingRecovery = &pr
	}
	return &c
}

func indexOf(list []types.Address, a types.Address) int {
	for i, item := range list {
		if item == a {
			return i
		}
	}
	return -1
}
