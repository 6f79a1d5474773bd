package contracts

import (
	"context"

	"conexperto-service/internal/pkg/dto/requests"
)

// PaymentUsecase reconciles asynchronous gateway outcomes into terminal
// booking state. The callback may arrive zero, one, or many times for the
// same booking; processing must be idempotent.
type PaymentUsecase interface {
	PaymentCallback(ctx context.Context, request *requests.PaymentCallback) error
}
