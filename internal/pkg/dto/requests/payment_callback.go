package requests

// PaymentCallback is the gateway's out-of-band notification of a terminal
// payment outcome. Reference carries the booking id the transaction was
// created with.
type PaymentCallback struct {
	Reference     string `json:"reference" validate:"required"`
	TransactionID string `json:"transaction_id"`
	PaymentStatus string `json:"payment_status" validate:"required"`
	PaymentMethod string `json:"payment_method,omitempty"`
	AmountInCents int64  `json:"amount_in_cents,omitempty"`
	Currency      string `json:"currency,omitempty"`
}
