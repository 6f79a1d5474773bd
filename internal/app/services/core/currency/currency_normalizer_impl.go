package currency

import (
	"context"
	"sync"

	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/services/shared/metrics"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type currencyNormalizer struct {
	ExchangeRateService contracts.ExchangeRateService
	Metrics             *metrics.Registry
	Log                 *zap.Logger
}

var (
	currencyNormalizerInstance contracts.CurrencyNormalizer
	onceCurrencyNormalizer     sync.Once
)

func NewCurrencyNormalizer(
	exchangeRateService contracts.ExchangeRateService,
	metricsRegistry *metrics.Registry,
	logger *zap.Logger,
) contracts.CurrencyNormalizer {
	onceCurrencyNormalizer.Do(func() {
		instance := &currencyNormalizer{
			ExchangeRateService: exchangeRateService,
			Metrics:             metricsRegistry,
			Log:                 logger,
		}
		currencyNormalizerInstance = instance
	})
	return currencyNormalizerInstance
}

// Normalize converts an authoritative amount into the settlement currency.
// A successful live lookup refreshes the cached reference rate; when the
// live source is unreachable the cached rate prices the conversion instead,
// tagged so callers can disclose it. With neither rate available the
// checkout fails closed rather than guess.
func (uc *currencyNormalizer) Normalize(ctx context.Context, amount decimal.Decimal, fromCurrency string) (*contracts.SettlementAmount, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("currencyNormalizer.Normalize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAmountKey, amount.String()),
		zap.String(constvars.LoggingCurrencyKey, fromCurrency),
	)

	if fromCurrency == constvars.SettlementCurrency {
		// Already in the settlement currency, so it passes through unrounded.
		return &contracts.SettlementAmount{
			Amount:        amount,
			AmountInCents: amount.Mul(decimal.NewFromInt(100)).IntPart(),
			Currency:      constvars.SettlementCurrency,
			Source:        constvars.RateSourceLive,
		}, nil
	}

	rate, err := uc.ExchangeRateService.FetchLiveRate(ctx, fromCurrency, constvars.SettlementCurrency)
	if err == nil {
		if storeErr := uc.ExchangeRateService.StoreReferenceRate(ctx, fromCurrency, constvars.SettlementCurrency, rate); storeErr != nil {
			uc.Log.Warn("currencyNormalizer.Normalize error refreshing reference rate",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(storeErr),
			)
		}
		converted := amount.Mul(decimal.NewFromFloat(rate))
		result := uc.buildSettlementAmount(converted, constvars.RateSourceLive)
		uc.Log.Info("currencyNormalizer.Normalize succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAmountKey, result.Amount.String()),
			zap.String(constvars.LoggingRateSourceKey, string(result.Source)),
		)
		return result, nil
	}

	uc.Log.Warn("currencyNormalizer.Normalize live rate unavailable, trying reference rate",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)

	referenceRate, refErr := uc.ExchangeRateService.ReferenceRate(ctx, fromCurrency, constvars.SettlementCurrency)
	if refErr != nil {
		uc.Log.Error("currencyNormalizer.Normalize no rate available",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCurrencyKey, fromCurrency),
			zap.Error(refErr),
		)
		return nil, exceptions.ErrRateUnavailable(refErr)
	}

	uc.Metrics.RateFallbacks.Inc()
	converted := amount.Mul(decimal.NewFromFloat(referenceRate))
	result := uc.buildSettlementAmount(converted, constvars.RateSourceReference)
	uc.Log.Info("currencyNormalizer.Normalize succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAmountKey, result.Amount.String()),
		zap.String(constvars.LoggingRateSourceKey, string(result.Source)),
	)
	return result, nil
}

func (uc *currencyNormalizer) buildSettlementAmount(amount decimal.Decimal, source constvars.RateSource) *contracts.SettlementAmount {
	rounded := amount.Round(constvars.SettlementCurrencyMinorDigits)
	return &contracts.SettlementAmount{
		Amount:        rounded,
		AmountInCents: rounded.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency:      constvars.SettlementCurrency,
		Source:        source,
	}
}
