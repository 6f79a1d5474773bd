package contracts

import (
	"context"

	"conexperto-service/internal/app/models"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/dto/responses"
)

// CheckoutUsecase orchestrates the reservation-to-payment pipeline: price
// authorization, slot reservation, currency normalization, method
// adaptation and gateway transaction creation, strictly in that order.
type CheckoutUsecase interface {
	Checkout(ctx context.Context, principal *models.Principal, request *requests.CheckoutRequest) (*responses.Checkout, error)
	RetryPayment(ctx context.Context, principal *models.Principal, request *requests.RetryPaymentRequest) (*responses.Checkout, error)
}
