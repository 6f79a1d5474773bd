package requests

// CheckoutRequest is the client's intent to buy a time slot. Price and
// Currency mirror what the client UI displayed; they are advisory and always
// re-derived from the catalog before any money moves.
type CheckoutRequest struct {
	ServiceID       string   `json:"service_id" validate:"required,uuid"`
	ExpertID        string   `json:"expert_id" validate:"required,uuid"`
	Date            string   `json:"date" validate:"required"`
	Time            string   `json:"time" validate:"required"`
	ClaimedPrice    string   `json:"price,omitempty"`
	ClaimedCurrency string   `json:"currency,omitempty" validate:"omitempty,currency_code"`
	BrowserTimezone string   `json:"browser_timezone,omitempty"`
	AddonIDs        []string `json:"addon_ids,omitempty" validate:"omitempty,dive,uuid"`

	PaymentMethod PaymentMethodRequest `json:"payment_method" validate:"required"`

	// ClientID comes from the authenticated principal, never the body.
	ClientID string `json:"-"`
}

// RetryPaymentRequest re-runs the payment leg for an existing pending
// booking with a possibly different method.
type RetryPaymentRequest struct {
	BookingID     string               `json:"-"`
	PaymentMethod PaymentMethodRequest `json:"payment_method" validate:"required"`
}
