package api

import "github.com/shopspring/decimal"

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []*Bill `json:"bills"`
}

type CreateBillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type CreateBillResponse struct {
	Bill *Bill `json:"bill"`
}

type UpdateBillRequest struct {
	BillID      string  `json:"billId" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateBillResponse struct {
	Bill *Bill `json:"bill"`
}

type DeleteBillRequest struct {
	BillID string `json:"billId" validate:"required"`
}

type DeleteBillResponse struct {
	DeletedBillID string `json:"deletedBillId"`
}

// ListTransactionsRequest lists every readable transaction, or only those of
// BillID when it is set.
type ListTransactionsRequest struct {
	BillID string `json:"billId,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type CreateTransactionRequest struct {
	BillID     string          `json:"billId" validate:"required"`
	CategoryID string          `json:"categoryId" validate:"required"`
	Type       string          `json:"type" validate:"required,oneof=income expense"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date" validate:"required,datetime=2006-01-02"`
	Notes      string          `json:"notes" validate:"max=1000"`
	AssetID    string          `json:"assetId,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction  *Transaction `json:"transaction"`
	UpdatedAsset *Asset       `json:"updatedAsset,omitempty"`
}

// UpdateTransactionRequest changes the fields that are set. An empty AssetID
// unlinks the transaction from its asset.
type UpdateTransactionRequest struct {
	TransactionID string           `json:"transactionId" validate:"required"`
	BillID        *string          `json:"billId,omitempty" validate:"omitempty,min=1"`
	CategoryID    *string          `json:"categoryId,omitempty" validate:"omitempty,min=1"`
	Type          *string          `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Date          *string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
	AssetID       *string          `json:"assetId,omitempty"`
}

type UpdateTransactionResponse struct {
	Transaction   *Transaction `json:"transaction"`
	UpdatedAssets []*Asset     `json:"updatedAssets"`
}

type DeleteTransactionRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

type DeleteTransactionResponse struct {
	DeletedTransactionID string `json:"deletedTransactionId"`
	UpdatedAsset         *Asset `json:"updatedAsset,omitempty"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type CreateCategoryRequest struct {
	BillID   string `json:"billId" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
	Type     string `json:"type" validate:"required,oneof=income expense"`
	Icon     string `json:"icon"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
	ParentID string `json:"parentId,omitempty"`
}

type CreateCategoryResponse struct {
	Category *Category `json:"category"`
}

type UpdateCategoryRequest struct {
	CategoryID string  `json:"categoryId" validate:"required"`
	Name       *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Type       *string `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Icon       *string `json:"icon,omitempty"`
	Color      *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	ParentID   *string `json:"parentId,omitempty"`
}

type UpdateCategoryResponse struct {
	Category *Category `json:"category"`
}

type DeleteCategoryRequest struct {
	CategoryID string `json:"categoryId" validate:"required"`
}

type DeleteCategoryResponse struct {
	DeletedCategoryID string `json:"deletedCategoryId"`
}
