package ledger

import (
	"github.com/mmynk/fintrack/internal/calculator"
	"github.com/mmynk/fintrack/internal/models"
)

// Audit recomputes every asset's balance from its opening balance and linked
// transactions, and returns the assets whose stored balance disagrees.
func Audit(snap *models.Snapshot) []calculator.Discrepancy {
	accounts := make([]calculator.AccountForBalance, len(snap.Assets))
	for i, a := range snap.Assets {
		accounts[i] = calculator.AccountForBalance{
			ID:      a.ID,
			Opening: a.OpeningBalance,
			Stored:  a.Balance,
		}
	}
	return calculator.Reconcile(accounts, entries(snap))
}

func entries(snap *models.Snapshot) []calculator.Entry {
	out := make([]calculator.Entry, len(snap.Transactions))
	for i, tx := range snap.Transactions {
		out[i] = calculator.Entry{
			BillID:  tx.BillID,
			AssetID: tx.AssetID,
			Signed:  tx.SignedAmount(),
		}
	}
	return out
}
