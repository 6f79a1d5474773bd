package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a sellable consultation offered by an expert. Its price and
// currency are the system of record for every checkout; client-supplied
// values are advisory only.
type Service struct {
	ID        string          `json:"id"`
	ExpertID  string          `json:"expert_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Addon is an administrator-defined optional line item a client may attach
// to a booking at checkout.
type Addon struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Active   bool            `json:"active"`
}
