package requests

// PaymentMethodRequest carries the user's chosen method plus the
// method-specific fields. Only the fields for the selected type are read;
// the adapter validates them per variant and rejects the rest.
type PaymentMethodRequest struct {
	Type string `json:"type" validate:"required,payment_method"`

	// bank_redirect
	NationalID      string `json:"national_id,omitempty"`
	Email           string `json:"email,omitempty"`
	InstitutionCode string `json:"institution_code,omitempty"`
	Description     string `json:"description,omitempty"`

	// nequi / daviplata
	Phone string `json:"phone,omitempty"`

	// daviplata
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}
