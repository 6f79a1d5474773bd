package contracts

import (
	"context"

	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/dto/responses"
)

// PaymentGatewayService is the outbound edge to the external payment
// gateway. CreateTransaction is not retried automatically; duplicate
// submissions for a booking are deduplicated gateway-side by the reference.
type PaymentGatewayService interface {
	CreateTransaction(ctx context.Context, request *requests.GatewayTransactionRequest) (*responses.GatewayTransactionResponse, error)
	ListFinancialInstitutions(ctx context.Context) ([]responses.FinancialInstitution, error)
}
