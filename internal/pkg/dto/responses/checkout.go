package responses

import "time"

// Checkout is returned after a successful reservation + gateway transaction
// creation. RedirectURL is where the client must be sent to complete
// payment. RateSource discloses whether a live or reference exchange rate
// priced the settlement amount.
type Checkout struct {
	BookingID        string    `json:"booking_id"`
	Status           string    `json:"status"`
	Price            string    `json:"price"`
	Currency         string    `json:"currency"`
	SettlementAmount int64     `json:"settlement_amount_in_cents"`
	SettlementCcy    string    `json:"settlement_currency"`
	RateSource       string    `json:"rate_source"`
	TransactionID    string    `json:"transaction_id"`
	RedirectURL      string    `json:"redirect_url"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// Booking is the read-side projection of a booking.
type Booking struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	ServiceID      string    `json:"service_id"`
	ClientID       string    `json:"client_id"`
	ExpertID       string    `json:"expert_id"`
	Price          string    `json:"price"`
	Currency       string    `json:"currency"`
	ScheduledDate  string    `json:"scheduled_date"`
	ScheduledTime  string    `json:"scheduled_time"`
	ClientTimezone string    `json:"client_timezone"`
	ExpertTimezone string    `json:"expert_timezone"`
	StartAtUTC     time.Time `json:"start_at_utc"`
	PaymentLink    string    `json:"payment_link,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
}
