package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
)

var errSentinel = New(CategoryReplayViolation, "invalid nonce")

func TestSentinelMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("%w: expected 3, got 4", errSentinel)

	assert.True(t, errors.Is(err, errSentinel))
	assert.True(t, Is(err, CategoryReplayViolation))
	assert.False(t, Is(err, CategoryPolicyViolation))
	assert.Equal(t, CategoryReplayViolation, CategoryOf(err))
}

func TestWrapKeepsCategory(t *testing.T) {
	err := Wrap(fmt.Errorf("%w: nonce 4", errSentinel), "operation rejected")

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "operation rejected", svcErr.Message)
	assert.Equal(t, CategoryReplayViolation, svcErr.Category)
	assert.True(t, errors.Is(err, errSentinel))
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode())
}

func TestWrapPlainErrorIsGeneral(t *testing.T) {
	err := Wrap(errors.New("boom"), "ignored")
	assert.True(t, Is(err, CategoryGeneralError))
	assert.True(t, IsInternalError(err))
	assert.Nil(t, Wrap(nil, "x"))
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryNoError, CategoryOf(nil))
	assert.Equal(t, CategoryGeneralError, CategoryOf(errors.New("plain")))
}

func TestStatusCodes(t *testing.T) {
	cases := map[Category]int{
		CategoryMalformedInput:       http.StatusBadRequest,
		CategoryAuthorizationFailure: http.StatusUnauthorized,
		CategoryPolicyViolation:      http.StatusUnprocessableEntity,
		CategoryResourceExhausted:    http.StatusPaymentRequired,
		CategoryStateUnavailable:     http.StatusLocked,
		CategoryResourceNotFound:     http.StatusNotFound,
		CategoryGeneralError:         http.StatusInternalServerError,
	}
	for cat, want := range cases {
		err := ServiceError{Category: cat}
		assert.Equal(t, want, err.StatusCode(), cat.String())
	}
}

func TestToStatus(t *testing.T) {
	st := ToStatus(fmt.Errorf("mint: %w", New(CategoryResourceExhausted, "insufficient valid signatures")))
	assert.Equal(t, codes.ResourceExhausted, st.Code())
	assert.Equal(t, "insufficient valid signatures", st.Message())

	require.Len(t, st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok)
	assert.Equal(t, "CategoryResourceExhausted", info.Reason)

	assert.Equal(t, codes.Internal, ToStatus(errors.New("db down")).Code())
	assert.Equal(t, codes.OK, ToStatus(nil).Code())
}
