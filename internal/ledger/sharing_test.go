package ledger

import (
	"testing"

	"github.com/mmynk/fintrack/internal/models"
)

func TestCreateShare(t *testing.T) {
	f := newFixture(t)

	share, err := CreateShare(f.snap, "u1", f.billID, "  U2@Example.com ", models.PermissionView)
	if err != nil {
		t.Fatalf("CreateShare failed: %v", err)
	}
	if share.SharedWithUserID != "u2" {
		t.Errorf("expected share with u2, got %s", share.SharedWithUserID)
	}
	if share.OwnerUserID != "u1" {
		t.Errorf("expected owner u1, got %s", share.OwnerUserID)
	}
	if share.SharedWithUserEmail != "u2@example.com" {
		t.Errorf("expected stored email u2@example.com, got %s", share.SharedWithUserEmail)
	}

	tests := []struct {
		name   string
		caller string
		billID string
		email  string
		perm   models.Permission
		want   error
	}{
		{name: "owner permission not grantable", caller: "u1", billID: f.billID, email: "u3@example.com", perm: models.PermissionOwner, want: ErrInvalidInput},
		{name: "empty permission", caller: "u1", billID: f.billID, email: "u3@example.com", perm: "", want: ErrInvalidInput},
		{name: "unknown bill", caller: "u1", billID: "missing", email: "u3@example.com", perm: models.PermissionView, want: ErrNotFound},
		{name: "not owner", caller: "u2", billID: f.billID, email: "u3@example.com", perm: models.PermissionView, want: ErrNotOwner},
		{name: "unknown email", caller: "u1", billID: f.billID, email: "ghost@example.com", perm: models.PermissionView, want: ErrUnknownUser},
		{name: "self share", caller: "u1", billID: f.billID, email: "u1@example.com", perm: models.PermissionEdit, want: ErrSelfShare},
		{name: "duplicate", caller: "u1", billID: f.billID, email: "u2@example.com", perm: models.PermissionEdit, want: ErrDuplicateShare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateShare(f.snap, tt.caller, tt.billID, tt.email, tt.perm)
			assertErrorIs(t, err, tt.want)
		})
	}

	if len(f.snap.BillShares) != 1 {
		t.Errorf("expected 1 share, got %d", len(f.snap.BillShares))
	}
}

func TestUpdateSharePermission(t *testing.T) {
	f := newFixture(t)
	share := f.share(t, "u2@example.com", models.PermissionView)

	if CanWrite(f.snap, "u2", f.billID) {
		t.Fatal("expected viewer to lack write access")
	}

	updated, err := UpdateSharePermission(f.snap, "u1", share.ID, models.PermissionEdit)
	if err != nil {
		t.Fatalf("UpdateSharePermission failed: %v", err)
	}
	if updated.Permission != models.PermissionEdit {
		t.Errorf("expected edit permission, got %s", updated.Permission)
	}
	if !CanWrite(f.snap, "u2", f.billID) {
		t.Error("expected editor to gain write access")
	}

	_, err = UpdateSharePermission(f.snap, "u2", share.ID, models.PermissionView)
	assertErrorIs(t, err, ErrForbidden)

	_, err = UpdateSharePermission(f.snap, "u1", "missing", models.PermissionView)
	assertErrorIs(t, err, ErrNotFound)

	_, err = UpdateSharePermission(f.snap, "u1", share.ID, models.PermissionOwner)
	assertErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteShare(t *testing.T) {
	f := newFixture(t)
	share := f.share(t, "u2@example.com", models.PermissionEdit)

	err := DeleteShare(f.snap, "u2", share.ID)
	assertErrorIs(t, err, ErrForbidden)

	if err := DeleteShare(f.snap, "u1", share.ID); err != nil {
		t.Fatalf("DeleteShare failed: %v", err)
	}
	if CanRead(f.snap, "u2", f.billID) {
		t.Error("expected access revoked after delete")
	}

	err = DeleteShare(f.snap, "u1", share.ID)
	assertErrorIs(t, err, ErrNotFound)
}

func TestListSharesProjectsCurrentEmail(t *testing.T) {
	f := newFixture(t)
	f.share(t, "u2@example.com", models.PermissionView)

	other, err := CreateBill(f.snap, "u2", "Theirs", "")
	if err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	if _, err := CreateShare(f.snap, "u2", other.ID, "u3@example.com", models.PermissionView); err != nil {
		t.Fatalf("CreateShare failed: %v", err)
	}

	f.snap.User("u2").Email = "renamed@example.com"

	shares := ListShares(f.snap, "u1")
	if len(shares) != 1 {
		t.Fatalf("expected 1 share, got %d", len(shares))
	}
	if shares[0].SharedWithUserEmail != "renamed@example.com" {
		t.Errorf("expected projected email renamed@example.com, got %s", shares[0].SharedWithUserEmail)
	}
	if got := len(ListShares(f.snap, "u3")); got != 0 {
		t.Errorf("expected recipient to own no shares, got %d", got)
	}
}
