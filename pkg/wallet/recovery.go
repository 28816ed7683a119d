package wallet

import (
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// InitiateRecovery opens a recovery towards newOwner with the caller as the
// first approval. A wallet whose quorum is one guardian recovers immediately.
func (w *Wallet) InitiateRecovery(caller, newOwner types.Address, now int64) (*RecoveryProgress, error) {
	if !w.IsGuardian(caller) {
		return nil, ErrUnauthorizedGuardian
	}
	if w.PendingRecovery != nil {
		return nil, ErrRecoveryInProgress
	}
	if newOwner.IsZero() {
		return nil, ErrInvalidNewOwner
	}

	w.PendingRecovery = &RecoveryRequest{
		NewOwner:          newOwner,
		GuardianApprovals: []types.Address{caller},
		InitiatedAt:       now,
	}
	return w.checkQuorum(), nil
}

// ApproveRecovery adds the caller's approval and completes the recovery on quorum.
func (w *Wallet) ApproveRecovery(caller types.Address) (*RecoveryProgress, error) {
	if !w.IsGuardian(caller) {
		return nil, ErrUnauthorizedGuardian
	}
	if w.PendingRecovery == nil {
		return nil, ErrNoRecoveryInProgress
	}
	if types.ContainsAddress(w.PendingRecovery.GuardianApprovals, caller) {
		return nil, ErrAlreadyApproved
	}
	if len(w.PendingRecovery.GuardianApprovals) >= MaxGuardians {
		return nil, ErrTooManyGuardians
	}

	w.PendingRecovery.GuardianApprovals = append(w.PendingRecovery.GuardianApprovals, caller)
	return w.checkQuorum(), nil
}

// CancelRecovery lets the current owner discard a pending recovery.
func (w *Wallet) CancelRecovery(caller types.Address) error {
	if caller != w.Owner {
		return ErrUnauthorized
	}
	if w.PendingRecovery == nil {
		return ErrNoRecoveryInProgress
	}
	w.PendingRecovery = nil
	return nil
}

// checkQuorum swaps the owner once approvals reach the quorum. The extra nonce
// increment invalidates operations signed by the previous owner.
func (w *Wallet) checkQuorum() *RecoveryProgress {
	pr := w.PendingRecovery
	progress := &RecoveryProgress{
		Approvals: len(pr.GuardianApprovals),
		Required:  w.RequiredApprovals(),
		NewOwner:  pr.NewOwner,
	}
	if progress.Approvals < progress.Required {
		return progress
	}

	w.Owner = pr.NewOwner
	w.PendingRecovery = nil
	w.Nonce++
	progress.Completed = true
	return progress
}
