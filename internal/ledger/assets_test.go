package ledger

import (
	"testing"

	"github.com/mmynk/fintrack/internal/models"
)

func TestAssetOwnership(t *testing.T) {
	f := newFixture(t)

	if got := len(ListAssets(f.snap, "u1")); got != 2 {
		t.Errorf("expected 2 assets for u1, got %d", got)
	}
	if got := len(ListAssets(f.snap, "u3")); got != 0 {
		t.Errorf("expected no assets for u3, got %d", got)
	}

	_, err := UpdateAsset(f.snap, "u2", f.assetU1, AssetPatch{Name: ptr("Mine now")})
	assertErrorIs(t, err, ErrNotFound)

	_, err = DeleteAsset(f.snap, "u2", f.assetU1)
	assertErrorIs(t, err, ErrNotFound)

	_, err = CreateAsset(f.snap, "u1", AssetInput{Name: " ", Balance: dec("1")})
	assertErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateAssetBalanceRederivesOpening(t *testing.T) {
	f := newFixture(t)

	if _, err := CreateTransaction(f.snap, "u1", TransactionInput{
		BillID: f.billID, CategoryID: f.expense, Type: models.Expense,
		Amount: dec("150"), Date: "2024-01-01", AssetID: f.assetU1,
	}); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	updated, err := UpdateAsset(f.snap, "u1", f.assetU1, AssetPatch{Name: ptr("Main"), Balance: ptr(dec("700"))})
	if err != nil {
		t.Fatalf("UpdateAsset failed: %v", err)
	}
	if updated.Name != "Main" || !updated.Balance.Equal(dec("700")) {
		t.Errorf("unexpected asset: %+v", updated)
	}
	if !updated.OpeningBalance.Equal(dec("850")) {
		t.Errorf("expected opening balance 850, got %s", updated.OpeningBalance)
	}
	assertConsistent(t, f.snap)
}

func TestDeleteAssetUnlinksTransactions(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 2; i++ {
		if _, err := CreateTransaction(f.snap, "u1", TransactionInput{
			BillID: f.billID, CategoryID: f.income, Type: models.Income,
			Amount: dec("10"), Date: "2024-01-01", AssetID: f.assetU1,
		}); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	unlinked, err := DeleteAsset(f.snap, "u1", f.assetU1)
	if err != nil {
		t.Fatalf("DeleteAsset failed: %v", err)
	}
	if unlinked != 2 {
		t.Errorf("expected 2 unlinked transactions, got %d", unlinked)
	}
	if f.snap.Asset(f.assetU1) != nil {
		t.Error("expected asset removed")
	}
	for _, tx := range f.snap.Transactions {
		if tx.AssetID != "" {
			t.Errorf("expected transaction %s unlinked, got %s", tx.ID, tx.AssetID)
		}
	}
	assertConsistent(t, f.snap)
}
