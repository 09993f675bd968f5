package ledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/calculator"
	"github.com/mmynk/fintrack/internal/models"
)

// AssetInput holds the fields of a new asset. Balance becomes the opening balance.
type AssetInput struct {
	Name    string
	Type    string
	Balance decimal.Decimal
}

// AssetPatch lists asset fields to change. Setting Balance is a manual
// correction: the opening balance is re-derived so history still adds up.
type AssetPatch struct {
	Name    *string
	Type    *string
	Balance *decimal.Decimal
}

// ListAssets returns the assets owned by userID.
func ListAssets(snap *models.Snapshot, userID string) []models.Asset {
	out := []models.Asset{}
	for _, a := range snap.Assets {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

func CreateAsset(snap *models.Snapshot, userID string, in AssetInput) (*models.Asset, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("asset name is required")
	}

	a := models.Asset{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           name,
		Type:           in.Type,
		Balance:        in.Balance,
		OpeningBalance: in.Balance,
	}
	snap.Assets = append(snap.Assets, a)
	return &a, nil
}

func UpdateAsset(snap *models.Snapshot, userID, assetID string, patch AssetPatch) (*models.Asset, error) {
	a := ownedAsset(snap, userID, assetID)
	if a == nil {
		return nil, notFound("asset", assetID)
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalid("asset name is required")
		}
		a.Name = name
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Balance != nil {
		linked := calculator.LinkedSums(entries(snap))[assetID]
		a.Balance = *patch.Balance
		a.OpeningBalance = patch.Balance.Sub(linked)
	}

	out := *a
	return &out, nil
}

// DeleteAsset removes an asset and unlinks every transaction pointing at it.
// It returns the number of transactions that were unlinked.
func DeleteAsset(snap *models.Snapshot, userID, assetID string) (int, error) {
	if ownedAsset(snap, userID, assetID) == nil {
		return 0, notFound("asset", assetID)
	}

	unlinked := 0
	for i := range snap.Transactions {
		if snap.Transactions[i].AssetID == assetID {
			snap.Transactions[i].AssetID = ""
			unlinked++
		}
	}
	snap.Assets = removeWhere(snap.Assets, func(a models.Asset) bool { return a.ID == assetID })
	return unlinked, nil
}

func ownedAsset(snap *models.Snapshot, userID, assetID string) *models.Asset {
	a := snap.Asset(assetID)
	if a == nil || a.UserID != userID {
		return nil
	}
	return a
}
