package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/fintrack/internal/calculator"
	"github.com/mmynk/fintrack/internal/models"
)

// BillView is a bill as seen by one user.
type BillView struct {
	models.Bill
	Permission models.Permission
	Totals     calculator.Totals
}

// BillPatch lists bill fields to change. Nil fields are left untouched.
type BillPatch struct {
	Name        *string
	Description *string
}

// ListBills returns the bills userID owns, tagged owner, followed by the bills
// shared with userID, tagged with the granted permission.
func ListBills(snap *models.Snapshot, userID string) []BillView {
	totals := calculator.BillTotals(entries(snap))

	owned := []BillView{}
	var shared []BillView
	for _, b := range snap.Bills {
		perm := EffectivePermission(snap, userID, b.ID)
		switch perm {
		case models.PermissionNone:
			continue
		case models.PermissionOwner:
			owned = append(owned, BillView{Bill: b, Permission: perm, Totals: totals[b.ID]})
		default:
			shared = append(shared, BillView{Bill: b, Permission: perm, Totals: totals[b.ID]})
		}
	}
	return append(owned, shared...)
}

// CreateBill creates a bill owned by userID.
func CreateBill(snap *models.Snapshot, userID, name, description string) (*models.Bill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("bill name is required")
	}

	bill := models.Bill{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		UserID:      userID,
		CreatedAt:   time.Now().Unix(),
	}
	snap.Bills = append(snap.Bills, bill)
	return &bill, nil
}

// UpdateBill renames or re-describes a bill. Requires write permission.
// Ownership never changes.
func UpdateBill(snap *models.Snapshot, userID, billID string, patch BillPatch) (*BillView, error) {
	bill, err := requireWrite(snap, userID, billID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalid("bill name is required")
		}
		bill.Name = name
	}
	if patch.Description != nil {
		bill.Description = *patch.Description
	}

	return &BillView{
		Bill:       *bill,
		Permission: EffectivePermission(snap, userID, billID),
		Totals:     calculator.BillTotals(entries(snap))[billID],
	}, nil
}

// DeleteBill removes a bill together with its transactions, shares and
// categories. Only the owner may delete.
//
// Asset balances are NOT reverted for the removed transactions: assets are
// independent of bills and users reconcile them separately.
func DeleteBill(snap *models.Snapshot, userID, billID string) error {
	bill := snap.Bill(billID)
	if bill == nil {
		return notFound("bill", billID)
	}
	if bill.UserID != userID {
		return ErrNotOwner
	}

	snap.Bills = removeWhere(snap.Bills, func(b models.Bill) bool { return b.ID == billID })
	snap.Transactions = removeWhere(snap.Transactions, func(t models.Transaction) bool { return t.BillID == billID })
	snap.BillShares = removeWhere(snap.BillShares, func(s models.BillShare) bool { return s.BillID == billID })
	snap.Categories = removeWhere(snap.Categories, func(c models.Category) bool { return c.BillID == billID })
	return nil
}
