package ledger

import (
	"github.com/google/uuid"

	"github.com/mmynk/fintrack/internal/models"
)

// CreateShare grants the user registered under email access to billID.
func CreateShare(snap *models.Snapshot, ownerID, billID, email string, permission models.Permission) (*models.BillShare, error) {
	if !permission.Grantable() {
		return nil, invalid("permission must be view or edit, got %q", permission)
	}

	bill := snap.Bill(billID)
	if bill == nil {
		return nil, notFound("bill", billID)
	}
	if bill.UserID != ownerID {
		return nil, ErrNotOwner
	}

	target := snap.UserByEmail(email)
	if target == nil {
		return nil, ErrUnknownUser
	}
	if target.ID == ownerID {
		return nil, ErrSelfShare
	}
	if snap.ShareFor(billID, target.ID) != nil {
		return nil, ErrDuplicateShare
	}

	share := models.BillShare{
		ID:                  uuid.New().String(),
		BillID:              billID,
		OwnerUserID:         ownerID,
		SharedWithUserID:    target.ID,
		SharedWithUserEmail: target.Email,
		Permission:          permission,
	}
	snap.BillShares = append(snap.BillShares, share)
	return &share, nil
}

// UpdateSharePermission changes the permission of an existing share.
func UpdateSharePermission(snap *models.Snapshot, callerID, shareID string, permission models.Permission) (*models.BillShare, error) {
	if !permission.Grantable() {
		return nil, invalid("permission must be view or edit, got %q", permission)
	}

	share := snap.Share(shareID)
	if share == nil {
		return nil, notFound("share", shareID)
	}
	if share.OwnerUserID != callerID {
		return nil, ErrNotOwner
	}

	share.Permission = permission
	out := *share
	projectShareEmail(snap, &out)
	return &out, nil
}

// DeleteShare removes a share. A missing share is reported, never ignored.
func DeleteShare(snap *models.Snapshot, callerID, shareID string) error {
	share := snap.Share(shareID)
	if share == nil {
		return notFound("share", shareID)
	}
	if share.OwnerUserID != callerID {
		return ErrNotOwner
	}

	snap.BillShares = removeWhere(snap.BillShares, func(s models.BillShare) bool { return s.ID == shareID })
	return nil
}

// ListShares returns the shares ownerID has granted, with display emails
// projected from the current user records.
func ListShares(snap *models.Snapshot, ownerID string) []models.BillShare {
	out := []models.BillShare{}
	for _, s := range snap.BillShares {
		if s.OwnerUserID != ownerID {
			continue
		}
		projectShareEmail(snap, &s)
		out = append(out, s)
	}
	return out
}

func projectShareEmail(snap *models.Snapshot, share *models.BillShare) {
	if u := snap.User(share.SharedWithUserID); u != nil {
		share.SharedWithUserEmail = u.Email
	}
}

// removeWhere filters s in place, dropping elements for which drop returns true.
func removeWhere[T any](s []T, drop func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}
