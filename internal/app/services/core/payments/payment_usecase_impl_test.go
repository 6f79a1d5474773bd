package payments

import (
	"context"
	"testing"
	"time"

	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/app/services/shared/metrics"
	"conexperto-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeBookingRepository struct {
	booking      *models.Booking
	swapped      bool
	swapCalls    int
	lastFrom     models.BookingStatus
	lastTo       models.BookingStatus
	meetingRef   string
	meetingCalls int
}

func (f *fakeBookingRepository) CreateWithAddons(ctx context.Context, booking *models.Booking, addons []models.BookingAddon) (*models.Booking, error) {
	return booking, nil
}

func (f *fakeBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return f.booking, nil
}

func (f *fakeBookingRepository) FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepository) UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) (bool, error) {
	f.swapCalls++
	f.lastFrom = from
	f.lastTo = to
	return f.swapped, nil
}

func (f *fakeBookingRepository) UpdateMeetingRef(ctx context.Context, bookingID, meetingRef string) error {
	f.meetingCalls++
	f.meetingRef = meetingRef
	return nil
}

func (f *fakeBookingRepository) UpdatePaymentLink(ctx context.Context, bookingID, paymentLink string) error {
	return nil
}

func (f *fakeBookingRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type fakeEventPublisher struct {
	events []*contracts.BookingEvent
}

func (f *fakeEventPublisher) PublishBookingEvent(ctx context.Context, event *contracts.BookingEvent) error {
	f.events = append(f.events, event)
	return nil
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:        "b1",
		ClientID:  "client-1",
		ExpertID:  "expert-1",
		Status:    models.BookingStatusPending,
		ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
	}
}

func newPaymentUsecaseForTest(repo *fakeBookingRepository, publisher *fakeEventPublisher) *paymentUsecase {
	return &paymentUsecase{
		BookingRepository: repo,
		EventPublisher:    publisher,
		Metrics:           metrics.NewRegistry(),
		Log:               zap.NewNop(),
	}
}

func TestPaymentCallback(t *testing.T) {
	t.Run("Approved confirms and publishes", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: pendingBooking(), swapped: true}
		publisher := &fakeEventPublisher{}
		uc := newPaymentUsecaseForTest(repo, publisher)

		err := uc.PaymentCallback(context.Background(), &requests.PaymentCallback{
			Reference:     "b1",
			TransactionID: "trx-1",
			PaymentStatus: "APPROVED",
		})
		assert.NoError(t, err)
		assert.Equal(t, models.BookingStatusPending, repo.lastFrom)
		assert.Equal(t, models.BookingStatusConfirmed, repo.lastTo)
		assert.Equal(t, 1, repo.meetingCalls, "confirmation provisions a meeting ref")
		assert.NotEmpty(t, repo.meetingRef)
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, "booking.confirmed", publisher.events[0].Event)
	})

	t.Run("Declined cancels and publishes", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: pendingBooking(), swapped: true}
		publisher := &fakeEventPublisher{}
		uc := newPaymentUsecaseForTest(repo, publisher)

		err := uc.PaymentCallback(context.Background(), &requests.PaymentCallback{
			Reference:     "b1",
			PaymentStatus: "DECLINED",
		})
		assert.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, repo.lastTo)
		assert.Equal(t, 0, repo.meetingCalls)
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, "booking.cancelled", publisher.events[0].Event)
	})

	t.Run("Duplicate callback is a no-op", func(t *testing.T) {
		booking := pendingBooking()
		booking.Status = models.BookingStatusConfirmed
		repo := &fakeBookingRepository{booking: booking, swapped: false}
		publisher := &fakeEventPublisher{}
		uc := newPaymentUsecaseForTest(repo, publisher)

		err := uc.PaymentCallback(context.Background(), &requests.PaymentCallback{
			Reference:     "b1",
			PaymentStatus: "DECLINED",
		})
		assert.NoError(t, err, "a duplicate callback must be acknowledged, not failed")
		assert.Empty(t, publisher.events, "no event for an ineffective transition")
	})

	t.Run("Unknown reference is swallowed", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: nil}
		publisher := &fakeEventPublisher{}
		uc := newPaymentUsecaseForTest(repo, publisher)

		err := uc.PaymentCallback(context.Background(), &requests.PaymentCallback{
			Reference:     "ghost",
			PaymentStatus: "APPROVED",
		})
		assert.NoError(t, err)
		assert.Equal(t, 0, repo.swapCalls)
	})

	t.Run("Expired hold cannot be confirmed", func(t *testing.T) {
		booking := pendingBooking()
		booking.ExpiresAt = time.Now().UTC().Add(-1 * time.Minute)
		repo := &fakeBookingRepository{booking: booking, swapped: true}
		publisher := &fakeEventPublisher{}
		uc := newPaymentUsecaseForTest(repo, publisher)

		err := uc.PaymentCallback(context.Background(), &requests.PaymentCallback{
			Reference:     "b1",
			PaymentStatus: "APPROVED",
		})
		assert.NoError(t, err)
		assert.Equal(t, 0, repo.swapCalls, "an approval past expiry must not confirm")
		assert.Empty(t, publisher.events)
	})

	t.Run("Non-terminal status is ignored", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: pendingBooking(), swapped: true}
		publisher := &fakeEventPublisher{}
		uc := newPaymentUsecaseForTest(repo, publisher)

		err := uc.PaymentCallback(context.Background(), &requests.PaymentCallback{
			Reference:     "b1",
			PaymentStatus: "PENDING",
		})
		assert.NoError(t, err)
		assert.Equal(t, 0, repo.swapCalls)
	})
}
