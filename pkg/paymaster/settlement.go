package paymaster

import (
	"context"
	"fmt"
	"math"

	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

// PostOpMode is the outcome reported to PostOp.
type PostOpMode int

const (
	OpSucceeded PostOpMode = iota
	OpReverted
	PostOpReverted
)

func (m PostOpMode) String() string {
	switch m {
	case OpSucceeded:
		return "op_succeeded"
	case OpReverted:
		return "op_reverted"
	default:
		return "post_op_reverted"
	}
}

// ValidationResult is returned by Validate.
type ValidationResult struct {
	Context    []byte
	ValidAfter uint64
	ValidUntil uint64
	Authorizer types.Address
	Method     userop.PaymentMethod
	PreCharge  uint64
}

// Settlement is the result of PostOp.
type Settlement struct {
	Mode         PostOpMode
	Charged      uint64
	TokensForGas uint64
	Refund       uint64
}

// Validate decides whether the paymaster covers an operation of maxCost for user.
// On success the rate window advances and the returned context must be handed
// back unchanged to PostOp.
func (p *Paymaster) Validate(user types.Address, data []byte, maxCost uint64, now int64) (*ValidationResult, error) {
	if !p.IsActive {
		return nil, ErrPaymasterInactive
	}
	method, err := userop.ParsePaymentMethod(data)
	if err != nil {
		return nil, err
	}
	if err := p.checkRateLimit(user, now); err != nil {
		return nil, err
	}

	pctx := &PaymentContext{Method: method, User: user}
	switch method.Kind {
	case userop.MethodSponsored:
		if len(p.Config.AllowedUsers) > 0 && !types.ContainsAddress(p.Config.AllowedUsers, user) {
			return nil, ErrUserNotAllowed
		}
		if maxCost > p.Config.MaxCostPerOperation {
			return nil, fmt.Errorf("%w: %d > %d", ErrCostTooHigh, maxCost, p.Config.MaxCostPerOperation)
		}
		pctx.PreCharge = maxCost

	case userop.MethodTokenPayment:
		tok, ok := p.Token(method.TokenMint)
		if !ok || !tok.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrTokenNotSupported, method.TokenMint)
		}
		if tok.RatePerLamport == 0 {
			return nil, ErrOraclePriceUnavailable
		}
		required, err := types.CheckedMul(maxCost, tok.RatePerLamport)
		if err != nil {
			return nil, err
		}
		if method.MaxTokenAmount < required {
			return nil, fmt.Errorf("%w: max %d, required %d", ErrInsufficientTokenBalance, method.MaxTokenAmount, required)
		}
		pctx.PreCharge = required
		account := user
		pctx.TokenAccount = &account
	}

	encoded, err := pctx.Encode()
	if err != nil {
		return nil, err
	}
	p.advanceRateWindow(user)

	return &ValidationResult{
		Context:    encoded,
		ValidAfter: 0,
		ValidUntil: math.MaxUint64,
		Authorizer: p.Owner,
		Method:     method,
		PreCharge:  pctx.PreCharge,
	}, nil
}

func (p *Paymaster) checkRateLimit(user types.Address, now int64) error {
	if now-p.RateWindow.Start >= RateWindowSeconds {
		p.RateWindow = RateWindow{Start: now}
	}
	cfg := p.Config
	if cfg.MaxOperationsPerHour > 0 && p.RateWindow.Operations >= cfg.MaxOperationsPerHour {
		return fmt.Errorf("%w: %d operations this hour", ErrRateLimitExceeded, p.RateWindow.Operations)
	}
	if cfg.RateLimitPerUser > 0 && p.RateWindow.PerUser[user] >= cfg.RateLimitPerUser {
		return fmt.Errorf("%w: user %s", ErrRateLimitExceeded, user.Short())
	}
	return nil
}

func (p *Paymaster) advanceRateWindow(user types.Address) {
	p.RateWindow.Operations++
	if p.Config.RateLimitPerUser == 0 {
		return
	}
	if p.RateWindow.PerUser == nil {
		p.RateWindow.PerUser = make(map[types.Address]uint64)
	}
	p.RateWindow.PerUser[user]++
}

// ReleaseRateSlot gives back the rate window slot taken by a successful
// Validate whose operation never ran.
func (p *Paymaster) ReleaseRateSlot(user types.Address) {
	if p.RateWindow.Operations > 0 {
		p.RateWindow.Operations--
	}
	switch n := p.RateWindow.PerUser[user]; {
	case n > 1:
		p.RateWindow.PerUser[user] = n - 1
	case n == 1:
		delete(p.RateWindow.PerUser, user)
	}
}

// PostOp settles an operation against its validation context.
//
// OpSucceeded and OpReverted both charge actualGasCost. For token payments the
// unused part of the pre-charge is refunded from paymaster custody through
// transfers. PostOpReverted does no accounting and returns ErrPostOpReverted.
func (p *Paymaster) PostOp(ctx context.Context, mode PostOpMode, paymentCtx []byte, actualGasCost uint64,
	transfers ledger.Ledger) (*Settlement, error) {
	pctx, err := DecodeContext(paymentCtx)
	if err != nil {
		return nil, err
	}

	settlement := &Settlement{Mode: mode}
	if mode == PostOpReverted {
		p.TotalOperations++
		return settlement, ErrPostOpReverted
	}

	switch pctx.Method.Kind {
	case userop.MethodSponsored:
		total, err := types.CheckedAdd(p.TotalSponsored, actualGasCost)
		if err != nil {
			return nil, err
		}
		p.TotalSponsored = total
		settlement.Charged = actualGasCost

	case userop.MethodTokenPayment:
		tok, ok := p.Token(pctx.Method.TokenMint)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTokenNotSupported, pctx.Method.TokenMint)
		}
		tokensForGas, err := types.CheckedMul(actualGasCost, tok.RatePerLamport)
		if err != nil {
			return nil, err
		}
		collected, err := types.CheckedAdd(tok.TotalCollected, tokensForGas)
		if err != nil {
			return nil, err
		}
		refund := types.SaturatingSub(pctx.PreCharge, tokensForGas)
		if refund > 0 {
			to := pctx.User
			if pctx.TokenAccount != nil {
				to = *pctx.TokenAccount
			}
			if err := transfers.Transfer(ctx, types.Token(tok.Mint), p.Address, to, refund); err != nil {
				return nil, fmt.Errorf("refund %d to %s: %w", refund, to.Short(), err)
			}
		}
		tok.TotalCollected = collected
		settlement.Charged = actualGasCost
		settlement.TokensForGas = tokensForGas
		settlement.Refund = refund
	}

	p.TotalOperations++
	return settlement, nil
}
