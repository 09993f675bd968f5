package models

import "github.com/shopspring/decimal"

// Asset is an account owned by a single user.
//
// Balance is a stored running total. It always equals OpeningBalance plus the
// signed amounts of the transactions currently linked to the asset.
type Asset struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`

	// Type is a free-form label (e.g., "bank", "cash", "credit").
	Type string `json:"type"`

	Balance        decimal.Decimal `json:"balance"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}
