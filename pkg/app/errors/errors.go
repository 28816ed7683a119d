// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is used when an internal call completed without error.
	CategoryNoError Category = iota
	// CategoryMalformedInput The client sends data that cannot be decoded or refers to
	// an unsupported chain, token or encoding.
	CategoryMalformedInput
	// CategoryAuthorizationFailure A signature did not verify or the caller is not allowed
	// to act on the record (non-owner, unknown guardian, user outside the allow-list).
	CategoryAuthorizationFailure
	// CategoryReplayViolation The request repeats or reorders an already applied action
	// (nonce mismatch, already minted, already approved, recovery in progress).
	CategoryReplayViolation
	// CategoryPolicyViolation Thresholds or caps would be misconfigured.
	CategoryPolicyViolation
	// CategoryResourceExhausted A spend, balance or cost budget is exceeded.
	CategoryResourceExhausted
	// CategoryStateUnavailable The record is in a state that refuses the call
	// (paused, frozen, inactive, missing optional account).
	CategoryStateUnavailable
	// CategoryResourceNotFound The client is attempting to access a record that does not exist
	CategoryResourceNotFound
	// CategoryDependencyFailure A dependent service is throwing errors
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
	// CategoryConnectionTimeout Connection to a dependent service timing out
	CategoryConnectionTimeout
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryMalformedInput:
		return "CategoryMalformedInput"
	case CategoryAuthorizationFailure:
		return "CategoryAuthorizationFailure"
	case CategoryReplayViolation:
		return "CategoryReplayViolation"
	case CategoryPolicyViolation:
		return "CategoryPolicyViolation"
	case CategoryResourceExhausted:
		return "CategoryResourceExhausted"
	case CategoryStateUnavailable:
		return "CategoryStateUnavailable"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryConnectionTimeout:
		return "CategoryConnectionTimeout"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// New returns a sentinel ServiceError. Domain packages declare their failure
// conditions with it so callers can match both the condition and its category.
func New(cat Category, message string) *ServiceError {
	return &ServiceError{Category: cat, Message: message}
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is implements the custom condition to check an error is equal to a service error
func (err ServiceError) Is(target error) bool {
	if target == nil {
		return false
	}
	return err.Message == target.Error()
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// CategoryOf returns the category of the first ServiceError in the chain,
// CategoryGeneralError when there is none and CategoryNoError for nil.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNoError
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category
	}
	return CategoryGeneralError
}

// IsInternalError checks that provided error is a Internal system error
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && (svcErr.Category < CategoryDependencyFailure) {
		return false
	}
	return true
}

// Wrap attaches a domain error to a public message while keeping its category.
// Non-service errors become general errors.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return GeneralError(err)
	}
	if message == "" {
		message = svcErr.Message
	}
	return &ServiceError{
		Category: svcErr.Category,
		Message:  message,
		Err:      err,
	}
}

// GeneralError returns a general service error
// this error mesage sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// ResourceNotFoundError returns an error with category ResourceNotFound
// the error message provided is returned to the user
// the err object provided is logged in logger
func ResourceNotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("resource not found:" + message)
	}
	return &ServiceError{
		Category: CategoryResourceNotFound,
		Message:  message,
		Err:      err,
	}
}

// BadRequestError returns an error with category MalformedInput
// the error message provided is returned to the user
// the error object provided is logged in logger
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request:" + message)
	}
	return &ServiceError{
		Category: CategoryMalformedInput,
		Message:  message,
		Err:      err,
	}
}

// UnAuthorizedError returns an error with category CategoryAuthorizationFailure
// the error message provided is returned to the user
// the error object provided is logged in logger
func UnAuthorizedError(err error, message string) error {
	if err == nil {
		err = errors.New("unauthorized")
	}
	return &ServiceError{
		Category: CategoryAuthorizationFailure,
		Message:  message,
		Err:      err,
	}
}

// DependencyError returns an error with category CategoryDependencyFailure
func DependencyError(err error, message string) error {
	if err == nil {
		err = errors.New("dependency failure")
	}
	return &ServiceError{
		Category: CategoryDependencyFailure,
		Message:  message,
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryMalformedInput:
		return http.StatusBadRequest
	case CategoryAuthorizationFailure:
		return http.StatusUnauthorized
	case CategoryReplayViolation:
		return http.StatusConflict
	case CategoryPolicyViolation:
		return http.StatusUnprocessableEntity
	case CategoryResourceExhausted:
		return http.StatusPaymentRequired
	case CategoryStateUnavailable:
		return http.StatusLocked
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryGeneralError:
		return http.StatusInternalServerError
	case CategoryConnectionTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
