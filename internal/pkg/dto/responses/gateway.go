package responses

type GatewayStatus struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GatewayTransactionResponse is the gateway's answer to transaction
// creation. Exactly one of RedirectURL or PaymentLink is expected to be
// populated; callers redirect to whichever is present.
type GatewayTransactionResponse struct {
	Status        GatewayStatus `json:"status"`
	TransactionID string        `json:"transaction_id"`
	Reference     string        `json:"reference"`
	AmountInCents int64         `json:"amount_in_cents"`
	RedirectURL   string        `json:"redirect_url,omitempty"`
	PaymentLink   string        `json:"payment_link,omitempty"`
}

// FinancialInstitution is one entry of the bank-redirect selector list.
type FinancialInstitution struct {
	Code string `json:"financial_institution_code"`
	Name string `json:"financial_institution_name"`
}
