package requests

// GatewayMethodPayload is the validated, gateway-shaped representation of a
// payment method. Exactly one of the variant pointers is non-nil, matching
// Type; the gateway API rejects mixed payloads.
type GatewayMethodPayload struct {
	Type         string               `json:"type"`
	BankRedirect *BankRedirectPayload `json:"bank_redirect,omitempty"`
	Nequi        *NequiPayload        `json:"nequi,omitempty"`
	Daviplata    *DaviplataPayload    `json:"daviplata,omitempty"`
}

type BankRedirectPayload struct {
	NationalID         string `json:"national_id"`
	Email              string `json:"email"`
	InstitutionCode    string `json:"financial_institution_code"`
	PaymentDescription string `json:"payment_description"`
}

type NequiPayload struct {
	Phone string `json:"phone_number"`
}

type DaviplataPayload struct {
	DocumentType   string `json:"user_legal_id_type"`
	DocumentNumber string `json:"user_legal_id"`
	Phone          string `json:"phone_number"`
}

// GatewayTransactionRequest is the outbound transaction-creation payload.
// Reference doubles as the idempotency key: it is always the booking id, so
// one booking maps to at most one logical gateway transaction per attempt.
type GatewayTransactionRequest struct {
	AmountInCents    int64                `json:"amount_in_cents" validate:"required"`
	Currency         string               `json:"currency" validate:"required,currency_code"`
	Reference        string               `json:"reference" validate:"required"`
	CustomerEmail    string               `json:"customer_email" validate:"required,email"`
	Method           GatewayMethodPayload `json:"payment_method" validate:"required"`
	RedirectURL      string               `json:"redirect_url" validate:"required"`
	OriginalAmount   string               `json:"original_amount,omitempty"`
	OriginalCurrency string               `json:"original_currency,omitempty"`
}
