package contracts

import (
	"context"

	"conexperto-service/internal/pkg/dto/responses"
)

// BankUsecase serves the bank-redirect institution selector.
type BankUsecase interface {
	ListFinancialInstitutions(ctx context.Context) ([]responses.FinancialInstitution, error)
}
