package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/models"
)

// TransactionInput holds the caller-supplied fields of a new transaction.
type TransactionInput struct {
	BillID     string
	CategoryID string
	Type       models.TransactionType
	Amount     decimal.Decimal
	Date       string
	Notes      string
	AssetID    string // Optional
}

// TransactionPatch lists fields to change. Nil fields are left untouched;
// a non-nil empty AssetID unlinks the transaction from its asset.
type TransactionPatch struct {
	BillID     *string
	CategoryID *string
	Type       *models.TransactionType
	Amount     *decimal.Decimal
	Date       *string
	Notes      *string
	AssetID    *string
}

func (p TransactionPatch) apply(tx *models.Transaction) {
	if p.BillID != nil {
		tx.BillID = *p.BillID
	}
	if p.CategoryID != nil {
		tx.CategoryID = *p.CategoryID
	}
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.Notes != nil {
		tx.Notes = *p.Notes
	}
	if p.AssetID != nil {
		tx.AssetID = strings.TrimSpace(*p.AssetID)
	}
}

// CreateResult is the outcome of CreateTransaction.
type CreateResult struct {
	Transaction  models.Transaction
	UpdatedAsset *models.Asset // Nil when the transaction is not linked
}

// UpdateResult is the outcome of UpdateTransaction.
type UpdateResult struct {
	Transaction models.Transaction

	// UpdatedAssets lists each distinct asset whose balance was touched:
	// none, one, or two when the link moved between assets.
	UpdatedAssets []models.Asset
}

// DeleteResult is the outcome of DeleteTransaction.
type DeleteResult struct {
	DeletedID    string
	UpdatedAsset *models.Asset
}

// ListTransactions returns every transaction in the bills userID can read.
// A non-empty billID restricts the result to that bill.
func ListTransactions(snap *models.Snapshot, userID, billID string) ([]models.Transaction, error) {
	readable := readableBills(snap, userID)
	if billID != "" {
		if snap.Bill(billID) == nil {
			return nil, notFound("bill", billID)
		}
		if !readable[billID] {
			return nil, ErrForbidden
		}
	}

	out := []models.Transaction{}
	for _, tx := range snap.Transactions {
		if !readable[tx.BillID] {
			continue
		}
		if billID != "" && tx.BillID != billID {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

// CreateTransaction records a transaction and, when it is linked to an asset,
// moves the asset's balance by the signed amount.
func CreateTransaction(snap *models.Snapshot, callerID string, in TransactionInput) (*CreateResult, error) {
	if _, err := requireWrite(snap, callerID, in.BillID); err != nil {
		return nil, err
	}

	tx := models.Transaction{
		ID:         uuid.New().String(),
		BillID:     in.BillID,
		CategoryID: in.CategoryID,
		UserID:     callerID,
		Type:       in.Type,
		Amount:     in.Amount,
		Date:       in.Date,
		Notes:      in.Notes,
		AssetID:    strings.TrimSpace(in.AssetID),
	}
	if err := validateTransaction(snap, callerID, &tx, ""); err != nil {
		return nil, err
	}

	snap.Transactions = append(snap.Transactions, tx)

	result := &CreateResult{Transaction: tx}
	if tx.AssetID != "" {
		asset := snap.Asset(tx.AssetID)
		asset.Balance = asset.Balance.Add(tx.SignedAmount())
		updated := *asset
		result.UpdatedAsset = &updated
	}
	return result, nil
}

// UpdateTransaction merges patch into a transaction. The original effect on
// the old asset is reverted and the new effect applied to the new asset, which
// may be the same one, a different one, or none.
func UpdateTransaction(snap *models.Snapshot, callerID, txID string, patch TransactionPatch) (*UpdateResult, error) {
	cur := snap.Transaction(txID)
	if cur == nil {
		return nil, notFound("transaction", txID)
	}
	if _, err := requireWrite(snap, callerID, cur.BillID); err != nil {
		return nil, err
	}

	next := *cur
	patch.apply(&next)

	if next.BillID != cur.BillID {
		if _, err := requireWrite(snap, callerID, next.BillID); err != nil {
			return nil, err
		}
	}
	if err := validateTransaction(snap, callerID, &next, cur.AssetID); err != nil {
		return nil, err
	}

	// Nothing is mutated above this line.
	var touched []string
	if cur.AssetID != "" {
		if old := snap.Asset(cur.AssetID); old != nil {
			old.Balance = old.Balance.Sub(cur.SignedAmount())
			touched = append(touched, old.ID)
		}
	}
	// A kept link to a deleted asset stays as it is and moves no balance.
	if asset := snap.Asset(next.AssetID); next.AssetID != "" && asset != nil {
		asset.Balance = asset.Balance.Add(next.SignedAmount())
		if len(touched) == 0 || touched[0] != asset.ID {
			touched = append(touched, asset.ID)
		}
	}
	*cur = next

	result := &UpdateResult{Transaction: next, UpdatedAssets: []models.Asset{}}
	for _, id := range touched {
		result.UpdatedAssets = append(result.UpdatedAssets, *snap.Asset(id))
	}
	return result, nil
}

// DeleteTransaction removes a transaction and reverts its effect on the linked asset.
func DeleteTransaction(snap *models.Snapshot, callerID, txID string) (*DeleteResult, error) {
	tx := snap.Transaction(txID)
	if tx == nil {
		return nil, notFound("transaction", txID)
	}
	if _, err := requireWrite(snap, callerID, tx.BillID); err != nil {
		return nil, err
	}

	result := &DeleteResult{DeletedID: tx.ID}
	if tx.AssetID != "" {
		if asset := snap.Asset(tx.AssetID); asset != nil {
			asset.Balance = asset.Balance.Sub(tx.SignedAmount())
			updated := *asset
			result.UpdatedAsset = &updated
		}
	}

	snap.Transactions = removeWhere(snap.Transactions, func(t models.Transaction) bool { return t.ID == txID })
	return result, nil
}

// validateTransaction checks a transaction record before it is written.
// linkedAssetID is the asset the stored record already points at; keeping that
// link is allowed even when the asset belongs to another bill member.
func validateTransaction(snap *models.Snapshot, callerID string, tx *models.Transaction, linkedAssetID string) error {
	if !tx.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !tx.Type.Valid() {
		return invalid("type must be income or expense, got %q", tx.Type)
	}
	if _, err := time.Parse(models.DateLayout, tx.Date); err != nil {
		return invalid("date must be YYYY-MM-DD, got %q", tx.Date)
	}

	category := snap.Category(tx.CategoryID)
	if category == nil || category.BillID != tx.BillID {
		return notFound("category", tx.CategoryID)
	}
	if category.Type != tx.Type {
		return ErrTypeCategoryMismatch
	}

	if tx.AssetID != "" {
		asset := snap.Asset(tx.AssetID)
		if asset == nil {
			if tx.AssetID == linkedAssetID {
				return nil
			}
			return notFound("asset", tx.AssetID)
		}
		if tx.AssetID != linkedAssetID && asset.UserID != callerID {
			return notFound("asset", tx.AssetID)
		}
	}
	return nil
}
