// Package ledger implements the FinTrack core: bill permissions, sharing, and
// transaction writes that keep asset balances reconciled.
//
// Every function operates on a *models.Snapshot. Read functions never modify it.
// Write functions validate everything before mutating, and are meant to run
// inside storage.Guard.Update so that the mutated snapshot is saved as a unit.
package ledger

import "github.com/mmynk/fintrack/internal/models"

// EffectivePermission returns userID's access level on billID.
// Unknown bills yield PermissionNone.
func EffectivePermission(snap *models.Snapshot, userID, billID string) models.Permission {
	bill := snap.Bill(billID)
	if bill == nil {
		return models.PermissionNone
	}
	if bill.UserID == userID {
		return models.PermissionOwner
	}
	if share := snap.ShareFor(billID, userID); share != nil && share.Permission.Grantable() {
		return share.Permission
	}
	return models.PermissionNone
}

// CanRead reports whether userID may see billID and its contents.
func CanRead(snap *models.Snapshot, userID, billID string) bool {
	return EffectivePermission(snap, userID, billID) != models.PermissionNone
}

// CanWrite reports whether userID may change billID's transactions and categories.
func CanWrite(snap *models.Snapshot, userID, billID string) bool {
	switch EffectivePermission(snap, userID, billID) {
	case models.PermissionOwner, models.PermissionEdit:
		return true
	default:
		return false
	}
}

// requireWrite returns NotFound for unknown bills and Forbidden when userID
// lacks write access.
func requireWrite(snap *models.Snapshot, userID, billID string) (*models.Bill, error) {
	bill := snap.Bill(billID)
	if bill == nil {
		return nil, notFound("bill", billID)
	}
	if !CanWrite(snap, userID, billID) {
		return nil, ErrForbidden
	}
	return bill, nil
}

// readableBills returns the set of bill IDs userID can read.
func readableBills(snap *models.Snapshot, userID string) map[string]bool {
	ids := make(map[string]bool)
	for _, b := range snap.Bills {
		if b.UserID == userID {
			ids[b.ID] = true
		}
	}
	for _, s := range snap.BillShares {
		if s.SharedWithUserID == userID && s.Permission.Grantable() {
			ids[s.BillID] = true
		}
	}
	return ids
}
