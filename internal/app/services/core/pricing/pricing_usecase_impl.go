package pricing

import (
	"context"
	"sync"

	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/app/services/shared/metrics"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// claimedPriceTolerance absorbs client-side float formatting noise; anything
// beyond it is treated as a forged or stale price and overridden.
var claimedPriceTolerance = decimal.NewFromFloat(0.01)

type pricingUsecase struct {
	ServiceRepository contracts.ServiceRepository
	AddonRepository   contracts.AddonRepository
	Metrics           *metrics.Registry
	Log               *zap.Logger
}

var (
	pricingUsecaseInstance contracts.PricingUsecase
	oncePricingUsecase     sync.Once
)

func NewPricingUsecase(
	serviceRepository contracts.ServiceRepository,
	addonRepository contracts.AddonRepository,
	metricsRegistry *metrics.Registry,
	logger *zap.Logger,
) contracts.PricingUsecase {
	oncePricingUsecase.Do(func() {
		instance := &pricingUsecase{
			ServiceRepository: serviceRepository,
			AddonRepository:   addonRepository,
			Metrics:           metricsRegistry,
			Log:               logger,
		}
		pricingUsecaseInstance = instance
	})
	return pricingUsecaseInstance
}

func (uc *pricingUsecase) ResolveServicePrice(ctx context.Context, serviceID string) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("pricingUsecase.ResolveServicePrice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	service, err := uc.ServiceRepository.FindByID(ctx, serviceID)
	if err != nil {
		uc.Log.Error("pricingUsecase.ResolveServicePrice error fetching service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if service == nil || !service.Active {
		uc.Log.Warn("pricingUsecase.ResolveServicePrice service not found or inactive",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceIDKey, serviceID),
		)
		return nil, exceptions.ErrServiceNotFound(nil)
	}
	return service, nil
}

// AuthorizePrice resolves the authoritative price for a service plus its
// requested add-ons. Claimed values are compared against the resolved ones
// and silently replaced on mismatch; the checkout proceeds at the
// authoritative price regardless of what the client sent.
func (uc *pricingUsecase) AuthorizePrice(ctx context.Context, serviceID, claimedPrice, claimedCurrency string, addonIDs []string) (*contracts.AuthorizedPrice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("pricingUsecase.AuthorizePrice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	service, err := uc.ResolveServicePrice(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	total := service.Price
	var addons []models.Addon
	if len(addonIDs) > 0 {
		addons, err = uc.AddonRepository.FindActiveByIDs(ctx, addonIDs)
		if err != nil {
			uc.Log.Error("pricingUsecase.AuthorizePrice error fetching addons",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if len(addons) != len(addonIDs) {
			uc.Log.Warn("pricingUsecase.AuthorizePrice unknown or inactive addon requested",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("requested_count", len(addonIDs)),
				zap.Int("resolved_count", len(addons)),
			)
			return nil, exceptions.ErrAddonNotFound(nil)
		}
		for _, addon := range addons {
			if addon.Currency != service.Currency {
				uc.Log.Error("pricingUsecase.AuthorizePrice addon currency differs from service currency",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingCurrencyKey, addon.Currency),
				)
				return nil, exceptions.ErrAddonNotFound(nil)
			}
			total = total.Add(addon.Price)
		}
	}

	authorized := &contracts.AuthorizedPrice{
		Service:  service,
		Price:    total,
		Currency: service.Currency,
		Addons:   addons,
	}

	claimed, parseErr := decimal.NewFromString(claimedPrice)
	priceMatches := parseErr == nil && claimed.Sub(total).Abs().LessThanOrEqual(claimedPriceTolerance)
	if !priceMatches || claimedCurrency != service.Currency {
		authorized.Overridden = true
		uc.Metrics.PriceOverrides.Inc()
		uc.Log.Warn("pricingUsecase.AuthorizePrice claimed price overridden",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceIDKey, serviceID),
			zap.String("claimed_price", claimedPrice),
			zap.String("claimed_currency", claimedCurrency),
			zap.String(constvars.LoggingAmountKey, total.String()),
			zap.String(constvars.LoggingCurrencyKey, service.Currency),
		)
	}

	uc.Log.Info("pricingUsecase.AuthorizePrice succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAmountKey, authorized.Price.String()),
		zap.String(constvars.LoggingCurrencyKey, authorized.Currency),
		zap.Bool("overridden", authorized.Overridden),
	)
	return authorized, nil
}
