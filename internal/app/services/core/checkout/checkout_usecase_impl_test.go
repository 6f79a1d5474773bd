package checkout

import (
	"context"
	"testing"
	"time"

	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/app/services/shared/metrics"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/dto/responses"
	"conexperto-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePricingUsecase struct {
	authorized *contracts.AuthorizedPrice
	err        error
	steps      *[]string
}

func (f *fakePricingUsecase) ResolveServicePrice(ctx context.Context, serviceID string) (*models.Service, error) {
	return f.authorized.Service, nil
}

func (f *fakePricingUsecase) AuthorizePrice(ctx context.Context, serviceID, claimedPrice, claimedCurrency string, addonIDs []string) (*contracts.AuthorizedPrice, error) {
	*f.steps = append(*f.steps, "authorize")
	return f.authorized, f.err
}

type fakeBookingUsecase struct {
	booking *models.Booking
	err     error
	steps   *[]string
}

func (f *fakeBookingUsecase) ReserveSlot(ctx context.Context, input *contracts.ReserveSlotInput) (*models.Booking, error) {
	*f.steps = append(*f.steps, "reserve")
	return f.booking, f.err
}

func (f *fakeBookingUsecase) FindByID(ctx context.Context, principal *models.Principal, bookingID string) (*models.Booking, error) {
	return f.booking, f.err
}

func (f *fakeBookingUsecase) FindAll(ctx context.Context, principal *models.Principal, params *requests.QueryParams) ([]models.Booking, error) {
	return nil, nil
}

type fakeCurrencyNormalizer struct {
	settlement *contracts.SettlementAmount
	err        error
	steps      *[]string
}

func (f *fakeCurrencyNormalizer) Normalize(ctx context.Context, amount decimal.Decimal, fromCurrency string) (*contracts.SettlementAmount, error) {
	*f.steps = append(*f.steps, "normalize")
	return f.settlement, f.err
}

type fakeGatewayService struct {
	response    *responses.GatewayTransactionResponse
	err         error
	steps       *[]string
	lastRequest *requests.GatewayTransactionRequest
}

func (f *fakeGatewayService) CreateTransaction(ctx context.Context, request *requests.GatewayTransactionRequest) (*responses.GatewayTransactionResponse, error) {
	*f.steps = append(*f.steps, "gateway")
	f.lastRequest = request
	return f.response, f.err
}

func (f *fakeGatewayService) ListFinancialInstitutions(ctx context.Context) ([]responses.FinancialInstitution, error) {
	return nil, nil
}

type fakeServiceRepo struct {
	service *models.Service
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	return f.service, nil
}

type fakeBookingRepo struct {
	paymentLinks map[string]string
}

func (f *fakeBookingRepo) CreateWithAddons(ctx context.Context, booking *models.Booking, addons []models.BookingAddon) (*models.Booking, error) {
	return booking, nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepo) UpdateMeetingRef(ctx context.Context, bookingID, meetingRef string) error {
	return nil
}

func (f *fakeBookingRepo) UpdatePaymentLink(ctx context.Context, bookingID, paymentLink string) error {
	if f.paymentLinks == nil {
		f.paymentLinks = map[string]string{}
	}
	f.paymentLinks[bookingID] = paymentLink
	return nil
}

func (f *fakeBookingRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type checkoutFixture struct {
	uc       *checkoutUsecase
	steps    []string
	pricing  *fakePricingUsecase
	bookings *fakeBookingUsecase
	rates    *fakeCurrencyNormalizer
	gateway  *fakeGatewayService
	repo     *fakeBookingRepo
}

func newCheckoutFixture() *checkoutFixture {
	fx := &checkoutFixture{}

	service := &models.Service{
		ID:       "svc-1",
		ExpertID: "expert-1",
		Title:    "60-minute consultation",
		Price:    decimal.RequireFromString("50"),
		Currency: "USD",
		Active:   true,
	}
	fx.pricing = &fakePricingUsecase{
		authorized: &contracts.AuthorizedPrice{
			Service:  service,
			Price:    decimal.RequireFromString("50"),
			Currency: "USD",
		},
		steps: &fx.steps,
	}
	fx.bookings = &fakeBookingUsecase{
		booking: &models.Booking{
			ID:        "b1",
			ClientID:  "client-1",
			ExpertID:  "expert-1",
			ServiceID: "svc-1",
			Status:    models.BookingStatusPending,
			Price:     decimal.RequireFromString("50"),
			Currency:  "USD",
			ExpiresAt: time.Now().UTC().Add(20 * time.Minute),
		},
		steps: &fx.steps,
	}
	fx.rates = &fakeCurrencyNormalizer{
		settlement: &contracts.SettlementAmount{
			Amount:        decimal.RequireFromString("200000"),
			AmountInCents: 20000000,
			Currency:      "COP",
			Source:        constvars.RateSourceLive,
		},
		steps: &fx.steps,
	}
	fx.gateway = &fakeGatewayService{
		response: &responses.GatewayTransactionResponse{
			TransactionID: "trx-1",
			Reference:     "b1",
			AmountInCents: 20000000,
			RedirectURL:   "https://gateway.example/redirect/trx-1",
		},
		steps: &fx.steps,
	}
	fx.repo = &fakeBookingRepo{}

	fx.uc = &checkoutUsecase{
		PricingUsecase:        fx.pricing,
		BookingUsecase:        fx.bookings,
		BookingRepository:     fx.repo,
		ServiceRepository:     &fakeServiceRepo{service: service},
		CurrencyNormalizer:    fx.rates,
		PaymentGatewayService: fx.gateway,
		InternalConfig: &config.InternalConfig{
			App: config.App{CheckoutReturnURL: "https://app.example/checkout/return"},
		},
		Metrics: metrics.NewRegistry(),
		Log:     zap.NewNop(),
	}
	return fx
}

func testCheckoutRequest() *requests.CheckoutRequest {
	return &requests.CheckoutRequest{
		ServiceID:       "svc-1",
		ExpertID:        "expert-1",
		Date:            "2026-09-15",
		Time:            "10:00",
		ClaimedPrice:    "50",
		ClaimedCurrency: "USD",
		PaymentMethod: requests.PaymentMethodRequest{
			Type:  constvars.PaymentMethodWalletNequi,
			Phone: "3001234567",
		},
	}
}

func testPrincipal() *models.Principal {
	return &models.Principal{UserID: "client-1", Role: models.RoleClient, Email: "client@example.com"}
}

func TestCheckout(t *testing.T) {
	t.Run("Happy path runs legs in order", func(t *testing.T) {
		fx := newCheckoutFixture()

		response, err := fx.uc.Checkout(context.Background(), testPrincipal(), testCheckoutRequest())
		assert.NoError(t, err)
		assert.Equal(t, []string{"authorize", "reserve", "normalize", "gateway"}, fx.steps,
			"price must be authorized before the booking exists, and the booking before any money movement")
		assert.Equal(t, "b1", response.BookingID)
		assert.Equal(t, "pending", response.Status)
		assert.Equal(t, int64(20000000), response.SettlementAmount)
		assert.Equal(t, "COP", response.SettlementCcy)
		assert.Equal(t, "live", response.RateSource)
		assert.Equal(t, "trx-1", response.TransactionID)
		assert.Equal(t, "https://gateway.example/redirect/trx-1", response.RedirectURL)
	})

	t.Run("Gateway request derives from the booking", func(t *testing.T) {
		fx := newCheckoutFixture()

		_, err := fx.uc.Checkout(context.Background(), testPrincipal(), testCheckoutRequest())
		assert.NoError(t, err)
		assert.Equal(t, "b1", fx.gateway.lastRequest.Reference, "reference is the booking id")
		assert.Equal(t, int64(20000000), fx.gateway.lastRequest.AmountInCents)
		assert.Equal(t, "COP", fx.gateway.lastRequest.Currency)
		assert.Equal(t, "client@example.com", fx.gateway.lastRequest.CustomerEmail)
		assert.Equal(t, "50", fx.gateway.lastRequest.OriginalAmount)
		assert.Equal(t, "USD", fx.gateway.lastRequest.OriginalCurrency)
		assert.Equal(t, "573001234567", fx.gateway.lastRequest.Method.Nequi.Phone)
		assert.Equal(t, "https://app.example/checkout/return?booking_id=b1", fx.gateway.lastRequest.RedirectURL,
			"return URL carries the booking id for the landing page")
	})

	t.Run("Payment link is stored on the booking", func(t *testing.T) {
		fx := newCheckoutFixture()

		_, err := fx.uc.Checkout(context.Background(), testPrincipal(), testCheckoutRequest())
		assert.NoError(t, err)
		assert.Equal(t, "https://gateway.example/redirect/trx-1", fx.repo.paymentLinks["b1"])
	})

	t.Run("Slot conflict stops before normalization", func(t *testing.T) {
		fx := newCheckoutFixture()
		fx.bookings.err = exceptions.ErrSlotUnavailable(nil)
		fx.bookings.booking = nil

		_, err := fx.uc.Checkout(context.Background(), testPrincipal(), testCheckoutRequest())
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
		assert.Equal(t, []string{"authorize", "reserve"}, fx.steps)
	})

	t.Run("Rate unavailability stops before the gateway", func(t *testing.T) {
		fx := newCheckoutFixture()
		fx.rates.err = exceptions.ErrRateUnavailable(nil)
		fx.rates.settlement = nil

		_, err := fx.uc.Checkout(context.Background(), testPrincipal(), testCheckoutRequest())
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 503, customErr.StatusCode)
		assert.Equal(t, []string{"authorize", "reserve", "normalize"}, fx.steps)
	})

	t.Run("Gateway message surfaces verbatim", func(t *testing.T) {
		fx := newCheckoutFixture()
		fx.gateway.response = nil
		fx.gateway.err = exceptions.ErrGatewayCreateTransaction(nil, "Institution 1007 is temporarily offline")

		_, err := fx.uc.Checkout(context.Background(), testPrincipal(), testCheckoutRequest())
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 502, customErr.StatusCode)
		assert.Equal(t, "Institution 1007 is temporarily offline", customErr.ClientMessage)
	})

	t.Run("Card method never reaches the gateway", func(t *testing.T) {
		fx := newCheckoutFixture()
		request := testCheckoutRequest()
		request.PaymentMethod = requests.PaymentMethodRequest{Type: constvars.PaymentMethodCard}

		_, err := fx.uc.Checkout(context.Background(), testPrincipal(), request)
		assert.Error(t, err)
		assert.NotContains(t, fx.steps, "gateway")
	})
}

func TestRetryPayment(t *testing.T) {
	t.Run("Pending booking retries with new method", func(t *testing.T) {
		fx := newCheckoutFixture()

		response, err := fx.uc.RetryPayment(context.Background(), testPrincipal(), &requests.RetryPaymentRequest{
			BookingID: "b1",
			PaymentMethod: requests.PaymentMethodRequest{
				Type:  constvars.PaymentMethodWalletNequi,
				Phone: "3001234567",
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "b1", response.BookingID)
		assert.Contains(t, fx.steps, "gateway")
	})

	t.Run("Expired hold is not retryable", func(t *testing.T) {
		fx := newCheckoutFixture()
		fx.bookings.booking.ExpiresAt = time.Now().UTC().Add(-1 * time.Minute)

		_, err := fx.uc.RetryPayment(context.Background(), testPrincipal(), &requests.RetryPaymentRequest{
			BookingID:     "b1",
			PaymentMethod: requests.PaymentMethodRequest{Type: constvars.PaymentMethodWalletNequi, Phone: "3001234567"},
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 410, customErr.StatusCode)
	})

	t.Run("Terminal booking is not payable", func(t *testing.T) {
		fx := newCheckoutFixture()
		fx.bookings.booking.Status = models.BookingStatusConfirmed

		_, err := fx.uc.RetryPayment(context.Background(), testPrincipal(), &requests.RetryPaymentRequest{
			BookingID:     "b1",
			PaymentMethod: requests.PaymentMethodRequest{Type: constvars.PaymentMethodWalletNequi, Phone: "3001234567"},
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}
