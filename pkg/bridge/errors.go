package bridge

import (
	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
)

var (
	ErrInvalidThreshold            = apperrors.New(apperrors.CategoryPolicyViolation, "invalid threshold")
	ErrInsufficientValidators      = apperrors.New(apperrors.CategoryPolicyViolation, "fewer validators than threshold")
	ErrTooManyValidators           = apperrors.New(apperrors.CategoryPolicyViolation, "too many validators")
	ErrDuplicateValidator          = apperrors.New(apperrors.CategoryPolicyViolation, "duplicate validator")
	ErrTooManyChains               = apperrors.New(apperrors.CategoryPolicyViolation, "too many supported chains")
	ErrChainAlreadySupported       = apperrors.New(apperrors.CategoryPolicyViolation, "chain already supported")
	ErrUnauthorized                = apperrors.New(apperrors.CategoryAuthorizationFailure, "caller is not the bridge authority")
	ErrChainNotSupported           = apperrors.New(apperrors.CategoryMalformedInput, "chain not supported")
	ErrChainInactive               = apperrors.New(apperrors.CategoryStateUnavailable, "chain is inactive")
	ErrBridgePaused                = apperrors.New(apperrors.CategoryStateUnavailable, "bridge is paused")
	ErrInvalidAmount               = apperrors.New(apperrors.CategoryMalformedInput, "invalid amount")
	ErrInvalidDestination          = apperrors.New(apperrors.CategoryMalformedInput, "invalid destination address")
	ErrTokenRequired               = apperrors.New(apperrors.CategoryStateUnavailable, "burn requires a token mint")
	ErrInsufficientSignatures      = apperrors.New(apperrors.CategoryResourceExhausted, "insufficient signatures")
	ErrInsufficientValidSignatures = apperrors.New(apperrors.CategoryResourceExhausted, "insufficient valid signatures")
	ErrAlreadyMinted               = apperrors.New(apperrors.CategoryReplayViolation, "already minted")
	ErrAlreadyClaimed              = apperrors.New(apperrors.CategoryReplayViolation, "record already claimed")
	ErrMintRecordMismatch          = apperrors.New(apperrors.CategoryMalformedInput, "mint record does not match request")
)
