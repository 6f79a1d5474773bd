package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// IsTerminal reports whether no further transition is permitted by the
// reservation pipeline.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled || s == BookingStatusExpired
}

// Booking is the central transactional entity. Price and Currency are
// captured from the service catalog at creation time and never from client
// input. Bookings are never deleted, only status-transitioned, to preserve
// the audit trail.
type Booking struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	ExpertID       string          `json:"expert_id"`
	ServiceID      string          `json:"service_id"`
	Status         BookingStatus   `json:"status"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	ScheduledDate  string          `json:"scheduled_date"`
	ScheduledTime  string          `json:"scheduled_time"`
	ClientTimezone string          `json:"client_timezone"`
	ExpertTimezone string          `json:"expert_timezone"`
	StartAtUTC     time.Time       `json:"start_at_utc"`
	MeetingRef     string          `json:"meeting_ref,omitempty"`
	PaymentLink    string          `json:"payment_link,omitempty"`
	ExpiresAt      time.Time       `json:"expires_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CanBeConfirmedAt reports whether a reconciliation outcome arriving at the
// given instant may still confirm the booking. A pending booking past its
// expiration instant is unavailable for confirmation.
func (b *Booking) CanBeConfirmedAt(now time.Time) bool {
	return b.Status == BookingStatusPending && now.Before(b.ExpiresAt)
}

// BookingAddon records an add-on attached to a booking with the price
// charged at the time, captured rather than re-derived later.
type BookingAddon struct {
	BookingID string          `json:"booking_id"`
	AddonID   string          `json:"addon_id"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
}
