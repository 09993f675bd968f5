package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

// fixture is a snapshot with two users, a bill owned by u1 with one category
// per type, and an asset per user.
type fixture struct {
	snap     *models.Snapshot
	billID   string
	expense  string // expense category
	income   string // income category
	assetU1  string
	assetU1b string
	assetU2  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	snap := models.NewSnapshot()
	snap.Users = append(snap.Users,
		models.User{ID: "u1", Email: "u1@example.com", Name: "u1"},
		models.User{ID: "u2", Email: "u2@example.com", Name: "u2"},
		models.User{ID: "u3", Email: "u3@example.com", Name: "u3"},
	)

	bill, err := CreateBill(snap, "u1", "Household", "")
	if err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	expense, err := CreateCategory(snap, "u1", CategoryInput{BillID: bill.ID, Name: "Groceries", Type: models.Expense})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	income, err := CreateCategory(snap, "u1", CategoryInput{BillID: bill.ID, Name: "Salary", Type: models.Income})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	a1, _ := CreateAsset(snap, "u1", AssetInput{Name: "Checking", Type: "bank", Balance: dec("1000")})
	a1b, _ := CreateAsset(snap, "u1", AssetInput{Name: "Cash", Type: "cash", Balance: dec("300")})
	a2, _ := CreateAsset(snap, "u2", AssetInput{Name: "Wallet", Type: "cash", Balance: dec("50")})

	return &fixture{
		snap:     snap,
		billID:   bill.ID,
		expense:  expense.ID,
		income:   income.ID,
		assetU1:  a1.ID,
		assetU1b: a1b.ID,
		assetU2:  a2.ID,
	}
}

func (f *fixture) share(t *testing.T, email string, perm models.Permission) *models.BillShare {
	t.Helper()
	share, err := CreateShare(f.snap, "u1", f.billID, email, perm)
	if err != nil {
		t.Fatalf("CreateShare failed: %v", err)
	}
	return share
}

func (f *fixture) balance(t *testing.T, assetID string) decimal.Decimal {
	t.Helper()
	a := f.snap.Asset(assetID)
	if a == nil {
		t.Fatalf("asset %s missing", assetID)
	}
	return a.Balance
}

func assertBalance(t *testing.T, f *fixture, assetID, want string) {
	t.Helper()
	if got := f.balance(t, assetID); !got.Equal(dec(want)) {
		t.Errorf("asset %s balance: expected %s, got %s", assetID, want, got)
	}
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}

func assertConsistent(t *testing.T, snap *models.Snapshot) {
	t.Helper()
	for _, d := range Audit(snap) {
		t.Errorf("asset %s: stored %s, expected %s", d.AccountID, d.Stored, d.Expected)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
