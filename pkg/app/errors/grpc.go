package errors

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const errorDomain = "aa-bridge-middleware"

// GRPCCode returns the gRPC status code for the error category
func (err ServiceError) GRPCCode() codes.Code {
	switch err.Category {
	case CategoryNoError:
		return codes.OK
	case CategoryMalformedInput:
		return codes.InvalidArgument
	case CategoryAuthorizationFailure:
		return codes.PermissionDenied
	case CategoryReplayViolation:
		return codes.AlreadyExists
	case CategoryPolicyViolation:
		return codes.FailedPrecondition
	case CategoryResourceExhausted:
		return codes.ResourceExhausted
	case CategoryStateUnavailable:
		return codes.Unavailable
	case CategoryResourceNotFound:
		return codes.NotFound
	case CategoryDependencyFailure:
		return codes.Unavailable
	case CategoryConnectionTimeout:
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// ToStatus converts err into a gRPC status carrying the category as ErrorInfo.
// Internal errors are reported without their cause.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return status.New(codes.Internal, "Internal Server Error")
	}

	st := status.New(svcErr.GRPCCode(), svcErr.Message)
	withDetails, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: svcErr.Category.String(),
		Domain: errorDomain,
	})
	if detailErr != nil {
		return st
	}
	return withDetails
}
