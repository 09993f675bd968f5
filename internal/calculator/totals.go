package calculator

import "github.com/shopspring/decimal"

// Totals summarizes the entries of one bill.
type Totals struct {
	Income  decimal.Decimal // Sum of positive entries
	Expense decimal.Decimal // Sum of negative entries, as a positive number
	Net     decimal.Decimal // Income - Expense
	Count   int
}

// BillTotals aggregates entries per bill.
func BillTotals(entries []Entry) map[string]Totals {
	totals := make(map[string]Totals)
	for _, e := range entries {
		t := totals[e.BillID]
		if e.Signed.IsNegative() {
			t.Expense = t.Expense.Add(e.Signed.Neg())
		} else {
			t.Income = t.Income.Add(e.Signed)
		}
		t.Net = t.Net.Add(e.Signed)
		t.Count++
		totals[e.BillID] = t
	}
	return totals
}
