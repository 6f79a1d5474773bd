package contracts

import (
	"context"

	"conexperto-service/internal/pkg/constvars"

	"github.com/shopspring/decimal"
)

// SettlementAmount is an amount expressed in the gateway's settlement
// currency, with the rate source that priced it.
type SettlementAmount struct {
	Amount        decimal.Decimal
	AmountInCents int64
	Currency      string
	Source        constvars.RateSource
}

// CurrencyNormalizer converts an authoritative amount into the settlement
// currency. Identity when the source currency already matches; otherwise a
// live rate with a cached reference fallback. Fails closed when no rate of
// either kind can be obtained.
type CurrencyNormalizer interface {
	Normalize(ctx context.Context, amount decimal.Decimal, fromCurrency string) (*SettlementAmount, error)
}

// ExchangeRateService looks up a live conversion rate into the settlement
// currency and maintains the cached reference rate.
type ExchangeRateService interface {
	FetchLiveRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
	ReferenceRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
	StoreReferenceRate(ctx context.Context, fromCurrency, toCurrency string, rate float64) error
}
