package checkout

import (
	"context"
	"net/url"
	"sync"
	"time"

	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/app/services/shared/metrics"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/dto/responses"
	"conexperto-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type checkoutUsecase struct {
	PricingUsecase        contracts.PricingUsecase
	BookingUsecase        contracts.BookingUsecase
	BookingRepository     contracts.BookingRepository
	ServiceRepository     contracts.ServiceRepository
	CurrencyNormalizer    contracts.CurrencyNormalizer
	PaymentGatewayService contracts.PaymentGatewayService
	InternalConfig        *config.InternalConfig
	Metrics               *metrics.Registry
	Log                   *zap.Logger
}

var (
	checkoutUsecaseInstance contracts.CheckoutUsecase
	onceCheckoutUsecase     sync.Once
)

func NewCheckoutUsecase(
	pricingUsecase contracts.PricingUsecase,
	bookingUsecase contracts.BookingUsecase,
	bookingRepository contracts.BookingRepository,
	serviceRepository contracts.ServiceRepository,
	currencyNormalizer contracts.CurrencyNormalizer,
	paymentGatewayService contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	metricsRegistry *metrics.Registry,
	logger *zap.Logger,
) contracts.CheckoutUsecase {
	onceCheckoutUsecase.Do(func() {
		instance := &checkoutUsecase{
			PricingUsecase:        pricingUsecase,
			BookingUsecase:        bookingUsecase,
			BookingRepository:     bookingRepository,
			ServiceRepository:     serviceRepository,
			CurrencyNormalizer:    currencyNormalizer,
			PaymentGatewayService: paymentGatewayService,
			InternalConfig:        internalConfig,
			Metrics:               metricsRegistry,
			Log:                   logger,
		}
		checkoutUsecaseInstance = instance
	})
	return checkoutUsecaseInstance
}

// Checkout runs the pipeline in its mandated order: authorize the price,
// reserve the slot, normalize the amount into the settlement currency,
// adapt the payment method, then create the gateway transaction. The slot
// is held before any gateway work so a slow gateway cannot lose the slot;
// if the gateway leg fails the pending booking simply ages out.
func (uc *checkoutUsecase) Checkout(ctx context.Context, principal *models.Principal, request *requests.CheckoutRequest) (*responses.Checkout, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checkoutUsecase.Checkout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, request.ServiceID),
		zap.String(constvars.LoggingExpertIDKey, request.ExpertID),
		zap.String(constvars.LoggingPaymentMethodKey, request.PaymentMethod.Type),
	)
	uc.Metrics.CheckoutAttempts.WithLabelValues("received").Inc()

	authorized, err := uc.PricingUsecase.AuthorizePrice(ctx, request.ServiceID, request.ClaimedPrice, request.ClaimedCurrency, request.AddonIDs)
	if err != nil {
		uc.Metrics.CheckoutAttempts.WithLabelValues("price_rejected").Inc()
		return nil, err
	}

	booking, err := uc.BookingUsecase.ReserveSlot(ctx, &contracts.ReserveSlotInput{
		ClientID:        principal.UserID,
		ExpertID:        request.ExpertID,
		ServiceID:       request.ServiceID,
		Date:            request.Date,
		Time:            request.Time,
		BrowserTimezone: request.BrowserTimezone,
		Principal:       principal,
		Authorized:      authorized,
	})
	if err != nil {
		uc.Metrics.CheckoutAttempts.WithLabelValues("slot_rejected").Inc()
		return nil, err
	}

	settlement, err := uc.CurrencyNormalizer.Normalize(ctx, booking.Price, booking.Currency)
	if err != nil {
		uc.Metrics.CheckoutAttempts.WithLabelValues("rate_unavailable").Inc()
		return nil, err
	}

	// Amounts and method payload derive from the persisted booking, never
	// from the request; a failed leg past this point leaves a pending
	// booking that ages out on its own.
	methodPayload, err := BuildGatewayMethodPayload(&request.PaymentMethod, authorized.Service.Title)
	if err != nil {
		uc.Metrics.CheckoutAttempts.WithLabelValues("method_rejected").Inc()
		return nil, err
	}

	gatewayResponse, err := uc.createTransaction(ctx, principal, booking, settlement, methodPayload)
	if err != nil {
		uc.Metrics.CheckoutAttempts.WithLabelValues("gateway_rejected").Inc()
		return nil, err
	}
	uc.Metrics.CheckoutAttempts.WithLabelValues("succeeded").Inc()

	uc.Log.Info("checkoutUsecase.Checkout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.String(constvars.LoggingTransactionIDKey, gatewayResponse.TransactionID),
		zap.String(constvars.LoggingRateSourceKey, string(settlement.Source)),
	)
	return buildCheckoutResponse(booking, settlement, gatewayResponse), nil
}

// RetryPayment re-runs the payment leg for a booking whose earlier gateway
// attempt failed or was abandoned, with a possibly different method. The
// slot hold is not extended.
func (uc *checkoutUsecase) RetryPayment(ctx context.Context, principal *models.Principal, request *requests.RetryPaymentRequest) (*responses.Checkout, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checkoutUsecase.RetryPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
		zap.String(constvars.LoggingPaymentMethodKey, request.PaymentMethod.Type),
	)

	booking, err := uc.BookingUsecase.FindByID(ctx, principal, request.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		uc.Log.Warn("checkoutUsecase.RetryPayment booking not pending",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingStatusKey, string(booking.Status)),
		)
		return nil, exceptions.ErrBookingNotPayable(nil)
	}
	if !booking.CanBeConfirmedAt(time.Now().UTC()) {
		uc.Log.Warn("checkoutUsecase.RetryPayment booking hold expired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Time("expires_at", booking.ExpiresAt),
		)
		return nil, exceptions.ErrBookingExpired(nil)
	}

	service, err := uc.ServiceRepository.FindByID(ctx, booking.ServiceID)
	if err != nil {
		return nil, err
	}
	serviceTitle := ""
	if service != nil {
		serviceTitle = service.Title
	}

	methodPayload, err := BuildGatewayMethodPayload(&request.PaymentMethod, serviceTitle)
	if err != nil {
		return nil, err
	}

	// Conversion is re-priced at retry time; the stored booking amount
	// stays the authoritative source-currency value.
	settlement, err := uc.CurrencyNormalizer.Normalize(ctx, booking.Price, booking.Currency)
	if err != nil {
		return nil, err
	}

	gatewayResponse, err := uc.createTransaction(ctx, principal, booking, settlement, methodPayload)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("checkoutUsecase.RetryPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.String(constvars.LoggingTransactionIDKey, gatewayResponse.TransactionID),
	)
	return buildCheckoutResponse(booking, settlement, gatewayResponse), nil
}

func (uc *checkoutUsecase) createTransaction(
	ctx context.Context,
	principal *models.Principal,
	booking *models.Booking,
	settlement *contracts.SettlementAmount,
	methodPayload *requests.GatewayMethodPayload,
) (*responses.GatewayTransactionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	gatewayResponse, err := uc.PaymentGatewayService.CreateTransaction(ctx, &requests.GatewayTransactionRequest{
		AmountInCents:    settlement.AmountInCents,
		Currency:         settlement.Currency,
		Reference:        booking.ID,
		CustomerEmail:    principal.Email,
		Method:           *methodPayload,
		RedirectURL:      uc.buildReturnURL(booking.ID),
		OriginalAmount:   booking.Price.String(),
		OriginalCurrency: booking.Currency,
	})
	if err != nil {
		uc.Metrics.GatewayCalls.WithLabelValues("error").Inc()
		uc.Log.Error("checkoutUsecase.createTransaction gateway error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Metrics.GatewayCalls.WithLabelValues("created").Inc()

	paymentLink := gatewayResponse.RedirectURL
	if paymentLink == "" {
		paymentLink = gatewayResponse.PaymentLink
	}
	if paymentLink != "" {
		if err := uc.BookingRepository.UpdatePaymentLink(ctx, booking.ID, paymentLink); err != nil {
			// The transaction exists gateway-side; losing the stored link
			// is recoverable via retry, so the checkout still succeeds.
			uc.Log.Error("checkoutUsecase.createTransaction error storing payment link",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, booking.ID),
				zap.Error(err),
			)
		} else {
			booking.PaymentLink = paymentLink
		}
	}
	return gatewayResponse, nil
}

// buildReturnURL tags the configured return URL with the booking id so the
// landing page can poll the booking outcome after the gateway redirect.
func (uc *checkoutUsecase) buildReturnURL(bookingID string) string {
	returnURL, err := url.Parse(uc.InternalConfig.App.CheckoutReturnURL)
	if err != nil {
		return uc.InternalConfig.App.CheckoutReturnURL
	}
	query := returnURL.Query()
	query.Set("booking_id", bookingID)
	returnURL.RawQuery = query.Encode()
	return returnURL.String()
}

func buildCheckoutResponse(booking *models.Booking, settlement *contracts.SettlementAmount, gatewayResponse *responses.GatewayTransactionResponse) *responses.Checkout {
	redirectURL := gatewayResponse.RedirectURL
	if redirectURL == "" {
		redirectURL = gatewayResponse.PaymentLink
	}
	return &responses.Checkout{
		BookingID:        booking.ID,
		Status:           string(booking.Status),
		Price:            booking.Price.String(),
		Currency:         booking.Currency,
		SettlementAmount: settlement.AmountInCents,
		SettlementCcy:    settlement.Currency,
		RateSource:       string(settlement.Source),
		TransactionID:    gatewayResponse.TransactionID,
		RedirectURL:      redirectURL,
		ExpiresAt:        booking.ExpiresAt,
	}
}
