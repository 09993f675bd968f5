package api

import "github.com/shopspring/decimal"

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// Bill is a bill as seen by the caller, with the caller's permission and
// aggregate totals over its transactions.
type Bill struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	UserID      string     `json:"userId"`
	CreatedAt   int64      `json:"createdAt,omitempty"`
	Permission  string     `json:"permission"`
	Totals      BillTotals `json:"totals"`
}

type BillTotals struct {
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transactionCount"`
}

type BillShare struct {
	ID                  string `json:"id"`
	BillID              string `json:"billId"`
	OwnerUserID         string `json:"ownerUserId"`
	SharedWithUserID    string `json:"sharedWithUserId"`
	SharedWithUserEmail string `json:"sharedWithUserEmail"`
	Permission          string `json:"permission"`
}

type Category struct {
	ID       string `json:"id"`
	BillID   string `json:"billId"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	IsSeed   bool   `json:"isSeed,omitempty"`
	ParentID string `json:"parentId,omitempty"`
}

type Transaction struct {
	ID         string          `json:"id"`
	BillID     string          `json:"billId"`
	CategoryID string          `json:"categoryId"`
	UserID     string          `json:"userId"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Notes      string          `json:"notes"`
	AssetID    string          `json:"assetId,omitempty"`
}

type Asset struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Balance        decimal.Decimal `json:"balance"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// Discrepancy reports an asset whose stored balance differs from its
// opening balance plus linked transactions.
type Discrepancy struct {
	AssetID    string          `json:"assetId"`
	Stored     decimal.Decimal `json:"stored"`
	Expected   decimal.Decimal `json:"expected"`
	Difference decimal.Decimal `json:"difference"`
}
