// Package http adapts error-returning handlers to net/http and renders
// apperrors.ServiceError values as JSON.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
)

// HandlerFunc is an http handler that reports failure through its return value.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError turns h into a plain http.HandlerFunc; a returned error is
// rendered by DefaultErrorHandler.
//
//	r.Post("/wallets", apphttp.HandleError(h.createWallet))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     int    `json:"code"`
	Category string `json:"category,omitempty"`
}

// DefaultErrorHandler writes err as an ErrorResponse. Errors that are not a
// ServiceError are reported as 500 without their text.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		WriteJSON(w, http.StatusInternalServerError, &ErrorResponse{
			Error: "Unexpected Service Error",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	code := svcErr.StatusCode()
	WriteJSON(w, code, &ErrorResponse{
		Error:    svcErr.Message,
		Code:     code,
		Category: svcErr.Category.String(),
	})
}

// WriteJSON writes v with the given status. Encoding errors are returned so
// callers may log them; the status line is already sent.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
