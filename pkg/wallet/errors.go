package wallet

import (
	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
)

var (
	ErrWalletFrozen          = apperrors.New(apperrors.CategoryStateUnavailable, "wallet is frozen")
	ErrInvalidNonce          = apperrors.New(apperrors.CategoryReplayViolation, "invalid nonce")
	ErrDailyLimitExceeded    = apperrors.New(apperrors.CategoryResourceExhausted, "daily limit exceeded")
	ErrInvalidSignature      = apperrors.New(apperrors.CategoryAuthorizationFailure, "invalid operation signature")
	ErrSenderMismatch        = apperrors.New(apperrors.CategoryMalformedInput, "operation sender does not match wallet")
	ErrUnauthorized          = apperrors.New(apperrors.CategoryAuthorizationFailure, "caller is not the wallet owner")
	ErrUnauthorizedGuardian  = apperrors.New(apperrors.CategoryAuthorizationFailure, "caller is not a guardian")
	ErrTooManyGuardians      = apperrors.New(apperrors.CategoryPolicyViolation, "too many guardians")
	ErrGuardianAlreadyExists = apperrors.New(apperrors.CategoryPolicyViolation, "guardian already exists")
	ErrGuardianNotFound      = apperrors.New(apperrors.CategoryResourceNotFound, "guardian not found")
	ErrInvalidGuardian       = apperrors.New(apperrors.CategoryMalformedInput, "invalid guardian")
	ErrRecoveryInProgress    = apperrors.New(apperrors.CategoryReplayViolation, "recovery already in progress")
	ErrNoRecoveryInProgress  = apperrors.New(apperrors.CategoryStateUnavailable, "no recovery in progress")
	ErrAlreadyApproved       = apperrors.New(apperrors.CategoryReplayViolation, "guardian already approved recovery")
	ErrInvalidNewOwner       = apperrors.New(apperrors.CategoryMalformedInput, "invalid new owner")
)
