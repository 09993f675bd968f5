package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLinkedSums(t *testing.T) {
	entries := []Entry{
		{BillID: "b1", AssetID: "a1", Signed: d("-200")},
		{BillID: "b1", AssetID: "a1", Signed: d("50")},
		{BillID: "b1", AssetID: "a2", Signed: d("10.25")},
		{BillID: "b2", Signed: d("-999")},
	}

	sums := LinkedSums(entries)

	if len(sums) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(sums))
	}
	if !sums["a1"].Equal(d("-150")) {
		t.Errorf("a1: expected -150, got %s", sums["a1"])
	}
	if !sums["a2"].Equal(d("10.25")) {
		t.Errorf("a2: expected 10.25, got %s", sums["a2"])
	}
}

func TestExpectedBalance(t *testing.T) {
	entries := []Entry{
		{AssetID: "a1", Signed: d("-0.1")},
		{AssetID: "a1", Signed: d("-0.2")},
		{AssetID: "a2", Signed: d("5")},
	}

	got := ExpectedBalance("a1", d("1000"), entries)
	if !got.Equal(d("999.7")) {
		t.Errorf("expected 999.7, got %s", got)
	}

	got = ExpectedBalance("missing", d("42"), entries)
	if !got.Equal(d("42")) {
		t.Errorf("expected opening balance for unlinked account, got %s", got)
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		accounts []AccountForBalance
		entries  []Entry
		want     []string
	}{
		{
			name:     "consistent account",
			accounts: []AccountForBalance{{ID: "a1", Opening: d("1000"), Stored: d("800")}},
			entries:  []Entry{{AssetID: "a1", Signed: d("-200")}},
			want:     nil,
		},
		{
			name: "drifted accounts are sorted",
			accounts: []AccountForBalance{
				{ID: "b", Opening: d("0"), Stored: d("1")},
				{ID: "a", Opening: d("10"), Stored: d("0")},
				{ID: "c", Opening: d("5"), Stored: d("5")},
			},
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.accounts, tt.entries)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d discrepancies, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].AccountID != id {
					t.Errorf("discrepancy %d: expected %s, got %s", i, id, got[i].AccountID)
				}
				if !got[i].Difference.Equal(got[i].Stored.Sub(got[i].Expected)) {
					t.Errorf("discrepancy %d: difference %s does not match stored-expected", i, got[i].Difference)
				}
			}
		})
	}
}

func TestBillTotals(t *testing.T) {
	entries := []Entry{
		{BillID: "b1", Signed: d("100")},
		{BillID: "b1", Signed: d("-30.5")},
		{BillID: "b1", AssetID: "a1", Signed: d("-19.5")},
		{BillID: "b2", Signed: d("7")},
	}

	totals := BillTotals(entries)

	b1 := totals["b1"]
	if !b1.Income.Equal(d("100")) {
		t.Errorf("b1 income: expected 100, got %s", b1.Income)
	}
	if !b1.Expense.Equal(d("50")) {
		t.Errorf("b1 expense: expected 50, got %s", b1.Expense)
	}
	if !b1.Net.Equal(d("50")) {
		t.Errorf("b1 net: expected 50, got %s", b1.Net)
	}
	if b1.Count != 3 {
		t.Errorf("b1 count: expected 3, got %d", b1.Count)
	}

	if totals["b2"].Count != 1 {
		t.Errorf("b2 count: expected 1, got %d", totals["b2"].Count)
	}
}
