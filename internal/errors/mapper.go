// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
	"gorm.io/gorm"
)

// Domain is reported in ErrorInfo details so clients can tell our
// quota failures apart from proxy-level throttling.
const Domain = "radar-match"

// Map converts service/repo/infra errors into gRPC-friendly status errors.
// Keeps the transport layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return quotaStatus(qe).Err()
	}

	var ae *AppError
	if errors.As(err, &ae) {
		switch ae.Code {
		case CodeInvalidInput:
			return status.Error(codes.InvalidArgument, ae.Message)
		case CodeForbidden:
			return status.Error(codes.PermissionDenied, ae.Message)
		case CodeNotFound:
			return status.Error(codes.NotFound, ae.Message)
		case CodeUnavailable:
			// the cause stays in server logs
			return status.Error(codes.Unavailable, ae.Message)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, redis.Nil):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

func quotaStatus(qe *QuotaExceededError) *status.Status {
	st := status.New(codes.ResourceExhausted, qe.Error())

	details := []protoadapt.MessageV1{
		&errdetails.QuotaFailure{
			Violations: []*errdetails.QuotaFailure_Violation{{
				Subject:     "tier:" + qe.Tier,
				Description: qe.Operation + " limit reached",
			}},
		},
		&errdetails.ErrorInfo{
			Reason: "QUOTA_EXCEEDED",
			Domain: Domain,
			Metadata: map[string]string{
				"operation": qe.Operation,
				"tier":      qe.Tier,
				"limit":     strconv.Itoa(qe.Limit),
				"used":      strconv.Itoa(qe.Used),
			},
		},
	}
	if !qe.ResetAt.IsZero() {
		wait := time.Until(qe.ResetAt)
		if wait < 0 {
			wait = 0
		}
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(wait)})
	}

	withDetails, err := st.WithDetails(details...)
	if err != nil {
		return st
	}
	return withDetails
}
