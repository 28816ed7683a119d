package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/aa-bridge-middleware/pkg/app/http"
	"github.com/chainsafe/aa-bridge-middleware/pkg/auth"
	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

const (
	maxBodySize      = 1 << 20
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// RouteConfig configures caller authentication and amount rendering.
type RouteConfig struct {
	// Tokens issues and validates session tokens; nil disables bearer auth.
	Tokens *auth.JWTValidator
	// LoginWindow bounds the clock skew accepted on login signatures and
	// signed requests.
	LoginWindow time.Duration
	// AllowSignature enables per-request X-Caller/X-Signature auth.
	AllowSignature bool
	// NativeDecimals renders native balances for display.
	NativeDecimals int32
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	cfg     RouteConfig
	now     func() time.Time
	logger  *zap.Logger
}

// RegisterRoutes registers the ledger API under /api/v1 on the given chi router.
// Mutating routes act on behalf of the caller resolved by auth.Authenticate.
func RegisterRoutes(r chi.Router, service Service, cfg RouteConfig, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
	}

	authOpts := []auth.Option{auth.WithRequestWindow(cfg.LoginWindow)}
	if !cfg.AllowSignature {
		authOpts = append(authOpts, auth.WithoutSignatures())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Authenticate(cfg.Tokens, authOpts...))

		r.Post("/auth/token", apphttp.HandleError(h.issueToken))

		r.Route("/entrypoint", func(r chi.Router) {
			r.Get("/", apphttp.HandleError(h.getEntryPoint))
			r.Post("/", apphttp.HandleError(h.initializeEntryPoint))
			r.Post("/ops", apphttp.HandleError(h.handleOps))
			r.Post("/simulate", apphttp.HandleError(h.simulateValidation))
		})

		r.Route("/wallets", func(r chi.Router) {
			r.Post("/", apphttp.HandleError(h.createWallet))
			r.Route("/{address}", func(r chi.Router) {
				r.Get("/", apphttp.HandleError(h.getWallet))
				r.Post("/freeze", apphttp.HandleError(h.freeze))
				r.Post("/unfreeze", apphttp.HandleError(h.unfreeze))
				r.Post("/guardians", apphttp.HandleError(h.addGuardian))
				r.Delete("/guardians/{guardian}", apphttp.HandleError(h.removeGuardian))
				r.Put("/daily-limit", apphttp.HandleError(h.setDailyLimit))
				r.Post("/recovery", apphttp.HandleError(h.initiateRecovery))
				r.Post("/recovery/approve", apphttp.HandleError(h.approveRecovery))
				r.Delete("/recovery", apphttp.HandleError(h.cancelRecovery))
			})
		})

		r.Route("/paymasters", func(r chi.Router) {
			r.Post("/", apphttp.HandleError(h.createPaymaster))
			r.Route("/{address}", func(r chi.Router) {
				r.Get("/", apphttp.HandleError(h.getPaymaster))
				r.Get("/deposit", apphttp.HandleError(h.getDepositInfo))
				r.Post("/stake", apphttp.HandleError(h.addStake))
				r.Post("/stake/unlock", apphttp.HandleError(h.unlockStake))
				r.Post("/stake/withdraw", apphttp.HandleError(h.withdrawStake))
				r.Post("/tokens", apphttp.HandleError(h.addSupportedToken))
				r.Put("/tokens/{mint}", apphttp.HandleError(h.setTokenActive))
				r.Put("/config", apphttp.HandleError(h.updatePaymasterConfig))
				r.Put("/active", apphttp.HandleError(h.setPaymasterActive))
				r.Post("/withdraw", apphttp.HandleError(h.withdrawPaymaster))
			})
		})

		r.Route("/bridges", func(r chi.Router) {
			r.Post("/", apphttp.HandleError(h.initializeBridge))
			r.Route("/{address}", func(r chi.Router) {
				r.Get("/", apphttp.HandleError(h.getBridge))
				r.Post("/chains", apphttp.HandleError(h.addSupportedChain))
				r.Put("/chains/{chainID}", apphttp.HandleError(h.setChainActive))
				r.Put("/paused", apphttp.HandleError(h.setPaused))
				r.Put("/validators", apphttp.HandleError(h.updateValidators))
				r.Post("/lock", apphttp.HandleError(h.lockTokens))
				r.Post("/burn", apphttp.HandleError(h.burnTokens))
				r.Post("/mint", apphttp.HandleError(h.mintTokens))
				r.Get("/locks", apphttp.HandleError(h.listUnclaimedLocks))
				r.Get("/burns", apphttp.HandleError(h.listUnclaimedBurns))
			})
		})

		r.Get("/locks/{address}", apphttp.HandleError(h.getLockRecord))
		r.Post("/locks/{address}/claim", apphttp.HandleError(h.markLockClaimed))
		r.Get("/burns/{address}", apphttp.HandleError(h.getBurnRecord))
		r.Post("/burns/{address}/claim", apphttp.HandleError(h.markBurnClaimed))
		r.Get("/mints/{address}", apphttp.HandleError(h.getMintRecord))

		r.Get("/balances/{address}", apphttp.HandleError(h.getBalance))
	})
}

// decode reads, parses and validates a JSON request body.
func decode(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}
	return nil
}

func pathAddress(r *http.Request, param string) (types.Address, error) {
	a, err := types.HexToAddress(chi.URLParam(r, param))
	if err != nil {
		return types.Address{}, apperrors.BadRequestError(err, "invalid "+param)
	}
	return a, nil
}

// callerAndAddress resolves the authenticated caller and the {address} path parameter.
func callerAndAddress(r *http.Request) (types.Address, types.Address, error) {
	caller, err := auth.RequireCaller(r)
	if err != nil {
		return types.Address{}, types.Address{}, err
	}
	a, err := pathAddress(r, "address")
	if err != nil {
		return types.Address{}, types.Address{}, err
	}
	return caller, a, nil
}

func queryUint(r *http.Request, key string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.BadRequestError(err, "invalid "+key)
	}
	return v, nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := apphttp.WriteJSON(w, status, data); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

type tokenRequest struct {
	Caller    types.Address   `json:"caller" validate:"required"`
	Timestamp int64           `json:"timestamp" validate:"required"`
	Signature types.Signature `json:"signature" validate:"required"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *HTTP) issueToken(w http.ResponseWriter, r *http.Request) error {
	if h.cfg.Tokens == nil || !h.cfg.Tokens.IsConfigured() {
		return apperrors.UnAuthorizedError(nil, "bearer tokens are not enabled")
	}
	var req tokenRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := auth.VerifyLogin(req.Caller, req.Timestamp, req.Signature, h.now(), h.cfg.LoginWindow); err != nil {
		return apperrors.UnAuthorizedError(err, "invalid login signature")
	}
	token, expiresAt, err := h.cfg.Tokens.IssueToken(req.Caller)
	if err != nil {
		return apperrors.GeneralError(err)
	}
	h.writeJSON(w, http.StatusOK, tokenResponse{Token: token, ExpiresAt: expiresAt})
	return nil
}

// Entry point

func (h *HTTP) getEntryPoint(w http.ResponseWriter, r *http.Request) error {
	ep, err := h.service.GetEntryPoint(r.Context())
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, ep)
	return nil
}

func (h *HTTP) initializeEntryPoint(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireCaller(r)
	if err != nil {
		return err
	}
	ep, err := h.service.InitializeEntryPoint(r.Context(), caller)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, ep)
	return nil
}

type handleOpsRequest struct {
	Ops         []*userop.UserOperation `json:"ops" validate:"required,min=1,dive,required"`
	Beneficiary types.Address           `json:"beneficiary" validate:"required"`
}

func (h *HTTP) handleOps(w http.ResponseWriter, r *http.Request) error {
	var req handleOpsRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	resp, err := h.service.HandleOps(r.Context(), req.Ops, req.Beneficiary)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) simulateValidation(w http.ResponseWriter, r *http.Request) error {
	var op userop.UserOperation
	if err := decode(r, &op); err != nil {
		return err
	}
	res, err := h.service.SimulateValidation(r.Context(), &op)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, res)
	return nil
}

type addStakeRequest struct {
	Deposit      uint64 `json:"deposit" validate:"required"`
	UnstakeDelay uint64 `json:"unstake_delay"`
}

func (h *HTTP) addStake(w http.ResponseWriter, r *http.Request) error {
	caller, pm, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req addStakeRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	st, err := h.service.AddStake(r.Context(), caller, pm, req.Deposit, req.UnstakeDelay)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, st)
	return nil
}

func (h *HTTP) unlockStake(w http.ResponseWriter, r *http.Request) error {
	caller, pm, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	st, err := h.service.UnlockStake(r.Context(), caller, pm)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, st)
	return nil
}

type destinationRequest struct {
	Destination types.Address `json:"destination" validate:"required"`
}

func (h *HTTP) withdrawStake(w http.ResponseWriter, r *http.Request) error {
	caller, pm, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req destinationRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	amount, err := h.service.WithdrawStake(r.Context(), caller, pm, req.Destination)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, map[string]uint64{"amount": amount})
	return nil
}

func (h *HTTP) getDepositInfo(w http.ResponseWriter, r *http.Request) error {
	pm, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	info, err := h.service.GetDepositInfo(r.Context(), pm)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, info)
	return nil
}

// Wallets

type createWalletRequest struct {
	RecoveryHash common.Hash `json:"recovery_hash"`
	DailyLimit   uint64      `json:"daily_limit"`
}

func (h *HTTP) createWallet(w http.ResponseWriter, r *http.Request) error {
	owner, err := auth.RequireCaller(r)
	if err != nil {
		return err
	}
	var req createWalletRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	wlt, err := h.service.CreateWallet(r.Context(), owner, req.RecoveryHash, req.DailyLimit)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, wlt)
	return nil
}

func (h *HTTP) getWallet(w http.ResponseWriter, r *http.Request) error {
	a, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	wlt, err := h.service.GetWallet(r.Context(), a)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, wlt)
	return nil
}

func (h *HTTP) freeze(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	wlt, err := h.service.Freeze(r.Context(), caller, a)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, wlt)
	return nil
}

func (h *HTTP) unfreeze(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	wlt, err := h.service.Unfreeze(r.Context(), caller, a)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, wlt)
	return nil
}

type guardianRequest struct {
	Guardian types.Address `json:"guardian" validate:"required"`
}

func (h *HTTP) addGuardian(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req guardianRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	wlt, err := h.service.AddGuardian(r.Context(), caller, a, req.Guardian)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, wlt)
	return nil
}

func (h *HTTP) removeGuardian(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	guardian, err := pathAddress(r, "guardian")
	if err != nil {
		return err
	}
	wlt, err := h.service.RemoveGuardian(r.Context(), caller, a, guardian)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, wlt)
	return nil
}

type dailyLimitRequest struct {
	Limit uint64 `json:"limit"`
}

func (h *HTTP) setDailyLimit(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req dailyLimitRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	wlt, err := h.service.SetDailyLimit(r.Context(), caller, a, req.Limit)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, wlt)
	return nil
}

type recoveryRequest struct {
	NewOwner types.Address `json:"new_owner" validate:"required"`
}

func (h *HTTP) initiateRecovery(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req recoveryRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	progress, err := h.service.InitiateRecovery(r.Context(), caller, a, req.NewOwner)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, progress)
	return nil
}

func (h *HTTP) approveRecovery(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	progress, err := h.service.ApproveRecovery(r.Context(), caller, a)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, progress)
	return nil
}

func (h *HTTP) cancelRecovery(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	if err := h.service.CancelRecovery(r.Context(), caller, a); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Paymasters

func (h *HTTP) createPaymaster(w http.ResponseWriter, r *http.Request) error {
	owner, err := auth.RequireCaller(r)
	if err != nil {
		return err
	}
	var cfg paymaster.Config
	if err := decode(r, &cfg); err != nil {
		return err
	}
	pm, err := h.service.CreatePaymaster(r.Context(), owner, cfg)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, pm)
	return nil
}

func (h *HTTP) getPaymaster(w http.ResponseWriter, r *http.Request) error {
	a, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	pm, err := h.service.GetPaymaster(r.Context(), a)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, pm)
	return nil
}

type supportedTokenRequest struct {
	Mint   types.Address  `json:"mint" validate:"required"`
	Rate   uint64         `json:"rate_per_lamport"`
	Oracle *types.Address `json:"oracle,omitempty"`
}

func (h *HTTP) addSupportedToken(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req supportedTokenRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	pm, err := h.service.AddSupportedToken(r.Context(), caller, a, req.Mint, req.Rate, req.Oracle)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, pm)
	return nil
}

type activeRequest struct {
	Active bool `json:"active"`
}

func (h *HTTP) setTokenActive(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	mint, err := pathAddress(r, "mint")
	if err != nil {
		return err
	}
	var req activeRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	pm, err := h.service.SetTokenActive(r.Context(), caller, a, mint, req.Active)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, pm)
	return nil
}

func (h *HTTP) updatePaymasterConfig(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var cfg paymaster.Config
	if err := decode(r, &cfg); err != nil {
		return err
	}
	pm, err := h.service.UpdatePaymasterConfig(r.Context(), caller, a, cfg)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, pm)
	return nil
}

func (h *HTTP) setPaymasterActive(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req activeRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	pm, err := h.service.SetPaymasterActive(r.Context(), caller, a, req.Active)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, pm)
	return nil
}

type withdrawRequest struct {
	Asset       types.Asset   `json:"asset"`
	Amount      uint64        `json:"amount" validate:"required"`
	Destination types.Address `json:"destination" validate:"required"`
}

func (h *HTTP) withdrawPaymaster(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req withdrawRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := h.service.WithdrawPaymaster(r.Context(), caller, a, req.Asset, req.Amount, req.Destination); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Bridge

type validatorsRequest struct {
	Validators []types.Address `json:"validators" validate:"required,min=1,dive,required"`
	Threshold  uint32          `json:"threshold" validate:"required"`
}

func (h *HTTP) initializeBridge(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireCaller(r)
	if err != nil {
		return err
	}
	var req validatorsRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	b, err := h.service.InitializeBridge(r.Context(), caller, req.Validators, req.Threshold)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, b)
	return nil
}

func (h *HTTP) getBridge(w http.ResponseWriter, r *http.Request) error {
	a, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	b, err := h.service.GetBridge(r.Context(), a)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, b)
	return nil
}

func (h *HTTP) addSupportedChain(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var chain bridge.SupportedChain
	if err := decode(r, &chain); err != nil {
		return err
	}
	b, err := h.service.AddSupportedChain(r.Context(), caller, a, chain)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, b)
	return nil
}

func (h *HTTP) setChainActive(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	chainID, err := strconv.ParseUint(chi.URLParam(r, "chainID"), 10, 64)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid chainID")
	}
	var req activeRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	b, err := h.service.SetChainActive(r.Context(), caller, a, chainID, req.Active)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, b)
	return nil
}

type pausedRequest struct {
	Paused bool `json:"paused"`
}

func (h *HTTP) setPaused(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req pausedRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	b, err := h.service.SetPaused(r.Context(), caller, a, req.Paused)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, b)
	return nil
}

func (h *HTTP) updateValidators(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req validatorsRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	b, err := h.service.UpdateValidators(r.Context(), caller, a, req.Validators, req.Threshold)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, b)
	return nil
}

func (h *HTTP) lockTokens(w http.ResponseWriter, r *http.Request) error {
	user, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req bridge.LockRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	rec, err := h.service.LockTokens(r.Context(), user, a, req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, rec)
	return nil
}

func (h *HTTP) burnTokens(w http.ResponseWriter, r *http.Request) error {
	user, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req bridge.BurnRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	rec, err := h.service.BurnTokens(r.Context(), user, a, req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, rec)
	return nil
}

// mintTokens is unauthenticated; the validator signatures carry the authority.
func (h *HTTP) mintTokens(w http.ResponseWriter, r *http.Request) error {
	a, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	var req bridge.MintRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	rec, err := h.service.MintTokens(r.Context(), a, req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, rec)
	return nil
}

func pageParams(r *http.Request) (uint64, int, error) {
	fromID, err := queryUint(r, "from_id", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err := queryUint(r, "limit", defaultPageLimit)
	if err != nil {
		return 0, 0, err
	}
	if limit == 0 || limit > maxPageLimit {
		limit = maxPageLimit
	}
	return fromID, int(limit), nil
}

func (h *HTTP) listUnclaimedLocks(w http.ResponseWriter, r *http.Request) error {
	a, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	fromID, limit, err := pageParams(r)
	if err != nil {
		return err
	}
	recs, err := h.service.ListUnclaimedLocks(r.Context(), a, fromID, limit)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, recs)
	return nil
}

func (h *HTTP) listUnclaimedBurns(w http.ResponseWriter, r *http.Request) error {
	a, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	fromID, limit, err := pageParams(r)
	if err != nil {
		return err
	}
	recs, err := h.service.ListUnclaimedBurns(r.Context(), a, fromID, limit)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, recs)
	return nil
}

func (h *HTTP) getLockRecord(w http.ResponseWriter, r *http.Request) error {
	a, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	rec, err := h.service.GetLockRecord(r.Context(), a)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, rec)
	return nil
}

func (h *HTTP) getBurnRecord(w http.ResponseWriter, r *http.Request) error {
	a, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	rec, err := h.service.GetBurnRecord(r.Context(), a)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, rec)
	return nil
}

func (h *HTTP) getMintRecord(w http.ResponseWriter, r *http.Request) error {
	a, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	rec, err := h.service.GetMintRecord(r.Context(), a)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, rec)
	return nil
}

type claimRequest struct {
	TxHash common.Hash `json:"tx_hash" validate:"required"`
}

func (h *HTTP) markLockClaimed(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req claimRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	rec, err := h.service.MarkLockClaimed(r.Context(), caller, a, req.TxHash)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, rec)
	return nil
}

func (h *HTTP) markBurnClaimed(w http.ResponseWriter, r *http.Request) error {
	caller, a, err := callerAndAddress(r)
	if err != nil {
		return err
	}
	var req claimRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	rec, err := h.service.MarkBurnClaimed(r.Context(), caller, a, req.TxHash)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, rec)
	return nil
}

type balanceResponse struct {
	Owner   types.Address `json:"owner"`
	Asset   types.Asset   `json:"asset"`
	Amount  uint64        `json:"amount"`
	Display string        `json:"display,omitempty"`
}

// getBalance reads the native balance, or a token balance when ?mint= is set.
func (h *HTTP) getBalance(w http.ResponseWriter, r *http.Request) error {
	owner, err := pathAddress(r, "address")
	if err != nil {
		return err
	}
	asset := types.Native()
	if raw := r.URL.Query().Get("mint"); raw != "" {
		mint, err := types.HexToAddress(raw)
		if err != nil {
			return apperrors.BadRequestError(err, "invalid mint")
		}
		asset = types.Token(mint)
	}
	amount, err := h.service.Balance(r.Context(), asset, owner)
	if err != nil {
		return err
	}
	resp := balanceResponse{Owner: owner, Asset: asset, Amount: amount}
	if asset.IsNative() {
		resp.Display = ledger.FormatAmount(amount, h.cfg.NativeDecimals)
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}
