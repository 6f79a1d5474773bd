package contracts

import (
	"context"

	"conexperto-service/internal/app/models"

	"github.com/shopspring/decimal"
)

// AuthorizedPrice is the authoritative price for one checkout, resolved from
// the system of record. Overridden reports whether the caller's claimed
// values had to be replaced.
type AuthorizedPrice struct {
	Service    *models.Service
	Price      decimal.Decimal
	Currency   string
	Addons     []models.Addon
	Overridden bool
}

// PricingUsecase resolves authoritative prices and never trusts
// caller-supplied monetary values.
type PricingUsecase interface {
	ResolveServicePrice(ctx context.Context, serviceID string) (*models.Service, error)
	AuthorizePrice(ctx context.Context, serviceID, claimedPrice, claimedCurrency string, addonIDs []string) (*AuthorizedPrice, error)
}
