package models

import "github.com/shopspring/decimal"

// DateLayout is the layout of Transaction.Date.
const DateLayout = "2006-01-02"

// Transaction is a single income or expense entry in a bill.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	BillID     string `json:"billId"`
	CategoryID string `json:"categoryId"`

	// UserID is the user who recorded the transaction.
	UserID string `json:"userId"`

	Type TransactionType `json:"type"`

	// Amount is always positive; Type carries the sign.
	Amount decimal.Decimal `json:"amount"`

	// Date is the booking date in DateLayout.
	Date string `json:"date"`

	Notes string `json:"notes"`

	// AssetID optionally links the transaction to an asset.
	// A linked transaction moves the asset's balance by its signed amount.
	AssetID string `json:"assetId,omitempty"`
}

// SignedAmount returns +Amount for income and -Amount for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	return Signed(t.Type, t.Amount)
}

// Signed applies the sign convention of typ to amount.
func Signed(typ TransactionType, amount decimal.Decimal) decimal.Decimal {
	if typ == Income {
		return amount
	}
	return amount.Neg()
}
