package service_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/aa-bridge-middleware/pkg/auth"
	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keys"
	"github.com/chainsafe/aa-bridge-middleware/pkg/service"
	"github.com/chainsafe/aa-bridge-middleware/pkg/service/mocks"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestServer(svc service.Service) http.Handler {
	r := chi.NewRouter()
	service.RegisterRoutes(r, svc, service.RouteConfig{
		Tokens:         auth.NewJWTValidator(testSecret, "aa-bridge-test", time.Hour),
		LoginWindow:    5 * time.Minute,
		AllowSignature: true,
		NativeDecimals: 9,
	}, zap.NewNop())
	return r
}

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func signedRequest(t *testing.T, kp *keys.KeyPair, method, path string, body []byte) *http.Request {
	t.Helper()
	return signedRequestAt(t, kp, method, path, body, time.Now().Unix())
}

func signedRequestAt(t *testing.T, kp *keys.KeyPair, method, path string, body []byte, timestamp int64) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	sig := kp.Sign(auth.RequestDigest(method, path, timestamp, body))
	req.Header.Set(auth.HeaderCaller, kp.PublicKey.String())
	req.Header.Set(auth.HeaderSignature, hexutil.Encode(sig[:]))
	req.Header.Set(auth.HeaderTimestamp, strconv.FormatInt(timestamp, 10))
	return req
}

func TestHandleOpsHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entrypoint/ops", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	got := decodeError(t, rec)
	if got.Error != "invalid JSON" {
		t.Fatalf("expected error %q, got %q", "invalid JSON", got.Error)
	}
	if got.Code != http.StatusBadRequest {
		t.Fatalf("expected code %d, got %d", http.StatusBadRequest, got.Code)
	}
}

func TestHandleOpsHTTP_EmptyOps_FailsValidation(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)

	body := `{"ops":[],"beneficiary":"` + types.Address{1}.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entrypoint/ops", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleOpsHTTP_Success(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	beneficiary := types.Address{2}

	svc.EXPECT().HandleOps(mock.Anything, mock.Anything, beneficiary).
		Return(&service.BatchResponse{
			BatchID:     "batch-1",
			BatchResult: &entrypoint.BatchResult{Beneficiary: beneficiary, TotalOperations: 1, SuccessfulOperations: 1},
		}, nil).Once()

	body := `{"ops":[{"sender":"` + types.Address{3}.String() + `","nonce":0,"call_data":"0x","call_gas_limit":1,` +
		`"max_fee_per_gas":1,"signature":"` + types.Signature{}.String() + `"}],"beneficiary":"` + beneficiary.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entrypoint/ops", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got struct {
		BatchID    string `json:"batch_id"`
		Successful uint64 `json:"successful_operations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.BatchID != "batch-1" || got.Successful != 1 {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestCreateWalletHTTP_WithoutCaller_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallets", bytes.NewBufferString(`{"daily_limit":10}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestCreateWalletHTTP_SignedRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	kp, err := keys.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	created := wallet.New(kp.PublicKey, common.Hash{}, 10, 0)
	svc.EXPECT().CreateWallet(mock.Anything, kp.PublicKey, common.Hash{}, uint64(10)).Return(created, nil).Once()

	body := []byte(`{"daily_limit":10}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, signedRequest(t, kp, http.MethodPost, "/api/v1/wallets", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func TestCreateWalletHTTP_TamperedBody_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	kp, err := keys.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	req := signedRequest(t, kp, http.MethodPost, "/api/v1/wallets", []byte(`{"daily_limit":10}`))
	req.Body = http.NoBody
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestLockTokensHTTP_ReplayedSignedRequest_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	kp, err := keys.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	bridgeAddr := types.Address{0xb1}
	path := "/api/v1/bridges/" + bridgeAddr.String() + "/lock"
	body := []byte(`{"amount":100,"destination_chain":2,"destination_address":"` + types.Address{0xd1}.String() + `"}`)
	svc.EXPECT().LockTokens(mock.Anything, kp.PublicKey, bridgeAddr, mock.Anything).
		Return(&bridge.LockRecord{Bridge: bridgeAddr, Amount: 100}, nil).Once()

	timestamp := time.Now().Unix()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, signedRequestAt(t, kp, http.MethodPost, path, body, timestamp))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	for i := 0; i < 3; i++ {
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequestAt(t, kp, http.MethodPost, path, body, timestamp))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("replay %d: expected status %d, got %d", i, http.StatusUnauthorized, rec.Code)
		}
	}
}

func TestCreateWalletHTTP_StaleSignedRequest_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	kp, err := keys.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	stale := time.Now().Add(-10 * time.Minute).Unix()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, signedRequestAt(t, kp, http.MethodPost, "/api/v1/wallets", []byte(`{"daily_limit":10}`), stale))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthTokenHTTP_LoginThenBearer(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	kp, err := keys.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	ts := time.Now().Unix()
	sig := kp.Sign(auth.LoginDigest(kp.PublicKey, ts))
	login, _ := json.Marshal(map[string]any{"caller": kp.PublicKey, "timestamp": ts, "signature": sig})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(login))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var tok struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tok); err != nil || tok.Token == "" {
		t.Fatalf("expected token, got %s", rec.Body.String())
	}

	target := types.Address{7}
	svc.EXPECT().Freeze(mock.Anything, kp.PublicKey, target).Return(&wallet.Wallet{Address: target, IsFrozen: true}, nil).Once()

	req = httptest.NewRequest(http.MethodPost, "/api/v1/wallets/"+target.String()+"/freeze", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestAuthTokenHTTP_StaleTimestamp_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	kp, err := keys.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	ts := time.Now().Add(-time.Hour).Unix()
	sig := kp.Sign(auth.LoginDigest(kp.PublicKey, ts))
	login, _ := json.Marshal(map[string]any{"caller": kp.PublicKey, "timestamp": ts, "signature": sig})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(login))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestGetWalletHTTP_NotFound(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	target := types.Address{5}

	svc.EXPECT().GetWallet(mock.Anything, target).Return(nil, store.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/"+target.String(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "record not found" {
		t.Fatalf("unexpected error %q", got.Error)
	}
}

func TestGetWalletHTTP_InvalidAddress(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/not-hex", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestBalanceHTTP_TokenQuery(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	owner, mint := types.Address{1}, types.Address{2}

	svc.EXPECT().Balance(mock.Anything, types.Token(mint), owner).Return(uint64(77), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balances/"+owner.String()+"?mint="+mint.String(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got struct {
		Amount uint64 `json:"amount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Amount != 77 {
		t.Fatalf("expected amount 77, got %d", got.Amount)
	}
}

func TestListUnclaimedLocksHTTP_PassesPaging(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	bridgeAddr := types.Address{9}

	svc.EXPECT().ListUnclaimedLocks(mock.Anything, bridgeAddr, uint64(4), 25).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bridges/"+bridgeAddr.String()+"/locks?from_id=4&limit=25", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestBalanceHTTP_NativeDisplay(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)
	owner := types.Address{1}

	svc.EXPECT().Balance(mock.Anything, types.Native(), owner).Return(uint64(1_500_000_000), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balances/"+owner.String(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var got struct {
		Display string `json:"display"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Display != "1.5" {
		t.Fatalf("expected display %q, got %q", "1.5", got.Display)
	}
}
