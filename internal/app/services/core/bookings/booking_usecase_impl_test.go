package bookings

import (
	"context"
	"testing"
	"time"

	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeBookingRepository struct {
	created    *models.Booking
	addons     []models.BookingAddon
	createErr  error
	found      *models.Booking
	findErr    error
	foundAll   []models.Booking
	lastParams *requests.QueryParams
}

func (f *fakeBookingRepository) CreateWithAddons(ctx context.Context, booking *models.Booking, addons []models.BookingAddon) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = booking
	f.addons = addons
	return booking, nil
}

func (f *fakeBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return f.found, f.findErr
}

func (f *fakeBookingRepository) FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Booking, error) {
	f.lastParams = params
	return f.foundAll, nil
}

func (f *fakeBookingRepository) UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepository) UpdateMeetingRef(ctx context.Context, bookingID, meetingRef string) error {
	return nil
}

func (f *fakeBookingRepository) UpdatePaymentLink(ctx context.Context, bookingID, paymentLink string) error {
	return nil
}

func (f *fakeBookingRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type fakeExpertRepository struct {
	timezone string
	err      error
}

func (f *fakeExpertRepository) FindTimezoneByID(ctx context.Context, expertID string) (string, error) {
	return f.timezone, f.err
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			BookingHoldTimeInMinutes: 20,
			DefaultClientTimezone:    "America/Bogota",
		},
	}
}

func newBookingUsecaseForTest(repo contracts.BookingRepository, experts contracts.ExpertRepository) *bookingUsecase {
	return &bookingUsecase{
		BookingRepository: repo,
		ExpertRepository:  experts,
		InternalConfig:    testInternalConfig(),
		Log:               zap.NewNop(),
	}
}

func testReserveInput() *contracts.ReserveSlotInput {
	return &contracts.ReserveSlotInput{
		ClientID:        "client-1",
		ExpertID:        "expert-1",
		ServiceID:       "service-1",
		Date:            time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:            "10:00",
		BrowserTimezone: "America/Bogota",
		Principal:       &models.Principal{UserID: "client-1", Role: models.RoleClient},
		Authorized: &contracts.AuthorizedPrice{
			Price:    decimal.RequireFromString("120000"),
			Currency: "COP",
		},
	}
}

func TestReserveSlot(t *testing.T) {
	t.Run("Creates pending booking with hold expiry", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := newBookingUsecaseForTest(repo, &fakeExpertRepository{timezone: "America/New_York"})

		before := time.Now().UTC()
		booking, err := uc.ReserveSlot(context.Background(), testReserveInput())
		assert.NoError(t, err)
		assert.Equal(t, models.BookingStatusPending, booking.Status)
		assert.Equal(t, "120000", booking.Price.String(), "stored price must be the authoritative one")
		assert.Equal(t, "COP", booking.Currency)
		assert.Equal(t, "America/Bogota", booking.ClientTimezone)
		assert.Equal(t, "America/New_York", booking.ExpertTimezone)
		assert.NotEmpty(t, booking.ID)

		hold := booking.ExpiresAt.Sub(before)
		assert.InDelta(t, (20 * time.Minute).Seconds(), hold.Seconds(), 5, "hold should be 20 minutes from reservation")
	})

	t.Run("Stored timezone preference wins over the browser", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := newBookingUsecaseForTest(repo, &fakeExpertRepository{})

		input := testReserveInput()
		input.BrowserTimezone = "America/New_York"
		input.Principal.Timezone = "Europe/Madrid"
		booking, err := uc.ReserveSlot(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, "Europe/Madrid", booking.ClientTimezone)
		assert.Equal(t, "America/Bogota", booking.ExpertTimezone, "missing expert timezone falls back to the default")
	})

	t.Run("Falls back to browser then default timezone", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := newBookingUsecaseForTest(repo, &fakeExpertRepository{timezone: "America/Bogota"})

		input := testReserveInput()
		input.BrowserTimezone = "America/New_York"
		input.Principal.Timezone = ""
		booking, err := uc.ReserveSlot(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, "America/New_York", booking.ClientTimezone)

		input = testReserveInput()
		input.BrowserTimezone = ""
		input.Principal.Timezone = ""
		booking, err = uc.ReserveSlot(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, "America/Bogota", booking.ClientTimezone)
	})

	t.Run("Captures authorized addons on the booking", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := newBookingUsecaseForTest(repo, &fakeExpertRepository{timezone: "America/Bogota"})

		input := testReserveInput()
		input.Authorized.Addons = []models.Addon{
			{ID: "a1", Price: decimal.RequireFromString("20000"), Currency: "COP"},
		}
		_, err := uc.ReserveSlot(context.Background(), input)
		assert.NoError(t, err)
		assert.Len(t, repo.addons, 1)
		assert.Equal(t, "a1", repo.addons[0].AddonID)
		assert.Equal(t, "20000", repo.addons[0].Price.String())
	})

	t.Run("Invalid wall time is rejected before persisting", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := newBookingUsecaseForTest(repo, &fakeExpertRepository{timezone: "America/Bogota"})

		input := testReserveInput()
		input.Time = "99:99"
		_, err := uc.ReserveSlot(context.Background(), input)
		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Nil(t, repo.created, "nothing should be persisted for an invalid slot")
	})

	t.Run("Past slot is rejected", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := newBookingUsecaseForTest(repo, &fakeExpertRepository{timezone: "America/Bogota"})

		input := testReserveInput()
		input.Date = "2020-01-01"
		_, err := uc.ReserveSlot(context.Background(), input)
		assert.Error(t, err)
		assert.Nil(t, repo.created)
	})

	t.Run("Slot conflict surfaces as conflict error", func(t *testing.T) {
		repo := &fakeBookingRepository{createErr: exceptions.ErrSlotUnavailable(nil)}
		uc := newBookingUsecaseForTest(repo, &fakeExpertRepository{timezone: "America/Bogota"})

		_, err := uc.ReserveSlot(context.Background(), testReserveInput())
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}

func TestFindBookings(t *testing.T) {
	storedBooking := &models.Booking{
		ID:       "b1",
		ClientID: "client-1",
		ExpertID: "expert-1",
		Status:   models.BookingStatusPending,
		Price:    decimal.RequireFromString("120000"),
		Currency: "COP",
	}

	t.Run("Parties can read their booking", func(t *testing.T) {
		uc := newBookingUsecaseForTest(&fakeBookingRepository{found: storedBooking}, &fakeExpertRepository{})

		booking, err := uc.FindByID(context.Background(), &models.Principal{UserID: "client-1", Role: models.RoleClient}, "b1")
		assert.NoError(t, err)
		assert.Equal(t, "b1", booking.ID)

		booking, err = uc.FindByID(context.Background(), &models.Principal{UserID: "expert-1", Role: models.RoleExpert}, "b1")
		assert.NoError(t, err)
		assert.Equal(t, "b1", booking.ID)
	})

	t.Run("Strangers are refused", func(t *testing.T) {
		uc := newBookingUsecaseForTest(&fakeBookingRepository{found: storedBooking}, &fakeExpertRepository{})

		_, err := uc.FindByID(context.Background(), &models.Principal{UserID: "someone-else", Role: models.RoleClient}, "b1")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("Missing booking is 404", func(t *testing.T) {
		uc := newBookingUsecaseForTest(&fakeBookingRepository{found: nil}, &fakeExpertRepository{})

		_, err := uc.FindByID(context.Background(), &models.Principal{UserID: "client-1", Role: models.RoleClient}, "missing")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Listing is scoped to the caller", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := newBookingUsecaseForTest(repo, &fakeExpertRepository{})

		_, err := uc.FindAll(context.Background(), &models.Principal{UserID: "expert-1", Role: models.RoleExpert}, &requests.QueryParams{ClientID: "forged"})
		assert.NoError(t, err)
		assert.Equal(t, "expert-1", repo.lastParams.ExpertID)
		assert.Empty(t, repo.lastParams.ClientID, "caller-supplied scoping must be discarded")
	})
}
