package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"consolidador/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// classifyError tags throttling and limit failures with ErrQuotaExhausted so the
// sync engine can trip its breaker without knowing about DynamoDB.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pte *types.ProvisionedThroughputExceededException
	var rle *types.RequestLimitExceeded
	var lee *types.LimitExceededException
	if errors.As(err, &pte) || errors.As(err, &rle) || errors.As(err, &lee) {
		return fmt.Errorf("%s: %w: %v", op, interfaces.ErrQuotaExhausted, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "ResourceExhausted", "TooManyRequestsException":
			return fmt.Errorf("%s: %w: %v", op, interfaces.ErrQuotaExhausted, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
