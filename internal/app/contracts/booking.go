package contracts

import (
	"context"
	"time"

	"conexperto-service/internal/app/models"
	"conexperto-service/internal/pkg/dto/requests"
)

// BookingRepository persists bookings and their add-ons. CreateWithAddons
// must be atomic: either the booking and all its add-on rows exist, or
// nothing does. A slot-exclusivity violation is reported as
// exceptions.ErrSlotUnavailable.
type BookingRepository interface {
	CreateWithAddons(ctx context.Context, booking *models.Booking, addons []models.BookingAddon) (*models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) (bool, error)
	UpdateMeetingRef(ctx context.Context, bookingID, meetingRef string) error
	UpdatePaymentLink(ctx context.Context, bookingID, paymentLink string) error
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

// ReserveSlotInput is everything the Slot Reservation Manager needs to
// create one pending booking. Price and Currency must already be the
// authoritative values.
type ReserveSlotInput struct {
	ClientID        string
	ExpertID        string
	ServiceID       string
	Date            string
	Time            string
	BrowserTimezone string
	Principal       *models.Principal
	Authorized      *AuthorizedPrice
}

// BookingUsecase is the Slot Reservation Manager plus the read side.
type BookingUsecase interface {
	ReserveSlot(ctx context.Context, input *ReserveSlotInput) (*models.Booking, error)
	FindByID(ctx context.Context, principal *models.Principal, bookingID string) (*models.Booking, error)
	FindAll(ctx context.Context, principal *models.Principal, params *requests.QueryParams) ([]models.Booking, error)
}
