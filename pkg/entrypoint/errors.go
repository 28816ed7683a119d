package entrypoint

import (
	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
)

var (
	ErrUnauthorized           = apperrors.New(apperrors.CategoryAuthorizationFailure, "caller is not the stake owner")
	ErrInvalidUnstakeDelay    = apperrors.New(apperrors.CategoryPolicyViolation, "unstake delay below entry point minimum")
	ErrInsufficientStake      = apperrors.New(apperrors.CategoryResourceExhausted, "insufficient paymaster stake")
	ErrNoStake                = apperrors.New(apperrors.CategoryStateUnavailable, "paymaster has no stake")
	ErrWithdrawTimeNotReached = apperrors.New(apperrors.CategoryStateUnavailable, "stake withdraw time not reached")
	ErrWrongEntryPoint        = apperrors.New(apperrors.CategoryMalformedInput, "paymaster is registered with another entry point")
	ErrPrefilterRejected      = apperrors.New(apperrors.CategoryMalformedInput, "operation rejected by prefilter")
	ErrCallReverted           = apperrors.New(apperrors.CategoryDependencyFailure, "target call reverted")
)

// ErrUnknownAccount is returned by AccountMap for missing records.
var ErrUnknownAccount = apperrors.New(apperrors.CategoryResourceNotFound, "account not found")
