package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Entry is a transaction reduced to what balance calculations need.
type Entry struct {
	BillID  string
	AssetID string          // Empty when the transaction is not linked to an asset
	Signed  decimal.Decimal // Positive for income, negative for expense
}

// AccountForBalance is an asset with its opening and stored balances.
type AccountForBalance struct {
	ID      string
	Opening decimal.Decimal
	Stored  decimal.Decimal
}

// Discrepancy reports an account whose stored balance drifted from its history.
type Discrepancy struct {
	AccountID  string
	Stored     decimal.Decimal
	Expected   decimal.Decimal
	Difference decimal.Decimal // Stored - Expected
}

// LinkedSums returns the sum of signed amounts per asset.
// Entries without an asset are ignored.
func LinkedSums(entries []Entry) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.AssetID == "" {
			continue
		}
		sums[e.AssetID] = sums[e.AssetID].Add(e.Signed)
	}
	return sums
}

// ExpectedBalance computes opening + sum of the entries linked to accountID.
func ExpectedBalance(accountID string, opening decimal.Decimal, entries []Entry) decimal.Decimal {
	return opening.Add(LinkedSums(entries)[accountID])
}

// Reconcile compares every account's stored balance with the balance implied by
// its opening balance and linked entries. Matching accounts are omitted.
// Results are ordered by account ID.
func Reconcile(accounts []AccountForBalance, entries []Entry) []Discrepancy {
	sums := LinkedSums(entries)

	var out []Discrepancy
	for _, acc := range accounts {
		expected := acc.Opening.Add(sums[acc.ID])
		if acc.Stored.Equal(expected) {
			continue
		}
		out = append(out, Discrepancy{
			AccountID:  acc.ID,
			Stored:     acc.Stored,
			Expected:   expected,
			Difference: acc.Stored.Sub(expected),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out
}
