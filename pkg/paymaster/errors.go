package paymaster

import (
	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
)

var (
	ErrPaymasterInactive        = apperrors.New(apperrors.CategoryStateUnavailable, "paymaster is inactive")
	ErrUnauthorized             = apperrors.New(apperrors.CategoryAuthorizationFailure, "caller is not the paymaster owner")
	ErrUserNotAllowed           = apperrors.New(apperrors.CategoryAuthorizationFailure, "user not allowed by paymaster")
	ErrCostTooHigh              = apperrors.New(apperrors.CategoryResourceExhausted, "operation cost too high")
	ErrTokenNotSupported        = apperrors.New(apperrors.CategoryMalformedInput, "token not supported")
	ErrTokenAlreadySupported    = apperrors.New(apperrors.CategoryPolicyViolation, "token already supported")
	ErrTooManyTokens            = apperrors.New(apperrors.CategoryPolicyViolation, "too many supported tokens")
	ErrInvalidTokenRate         = apperrors.New(apperrors.CategoryMalformedInput, "token rate must be set when no oracle is configured")
	ErrOraclePriceUnavailable   = apperrors.New(apperrors.CategoryStateUnavailable, "oracle price unavailable")
	ErrInsufficientTokenBalance = apperrors.New(apperrors.CategoryResourceExhausted, "insufficient token balance")
	ErrRateLimitExceeded        = apperrors.New(apperrors.CategoryResourceExhausted, "paymaster rate limit exceeded")
	ErrInvalidContext           = apperrors.New(apperrors.CategoryMalformedInput, "invalid payment context")
	ErrPostOpReverted           = apperrors.New(apperrors.CategoryDependencyFailure, "paymaster settlement reverted")
	ErrMissingDestination       = apperrors.New(apperrors.CategoryStateUnavailable, "missing withdraw destination")
	ErrInvalidAmount            = apperrors.New(apperrors.CategoryMalformedInput, "invalid withdraw amount")
)
