package api

import "github.com/shopspring/decimal"

type ListAssetsRequest struct{}

type ListAssetsResponse struct {
	Assets []*Asset `json:"assets"`
}

type CreateAssetRequest struct {
	Name    string          `json:"name" validate:"required,max=100"`
	Type    string          `json:"type" validate:"max=50"`
	Balance decimal.Decimal `json:"balance"`
}

type CreateAssetResponse struct {
	Asset *Asset `json:"asset"`
}

// UpdateAssetRequest changes the fields that are set. Setting Balance records
// a manual correction.
type UpdateAssetRequest struct {
	AssetID string           `json:"assetId" validate:"required"`
	Name    *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Type    *string          `json:"type,omitempty" validate:"omitempty,max=50"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

type UpdateAssetResponse struct {
	Asset *Asset `json:"asset"`
}

type DeleteAssetRequest struct {
	AssetID string `json:"assetId" validate:"required"`
}

type DeleteAssetResponse struct {
	DeletedAssetID       string `json:"deletedAssetId"`
	UnlinkedTransactions int    `json:"unlinkedTransactions"`
}

type AuditAssetsRequest struct{}

type AuditAssetsResponse struct {
	Discrepancies []*Discrepancy `json:"discrepancies"`
}
