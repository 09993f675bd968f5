package service

import (
	"github.com/mmynk/fintrack/internal/calculator"
	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/pkg/api"
)

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toAPIBill(b *ledger.BillView) *api.Bill {
	return &api.Bill{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		UserID:      b.UserID,
		CreatedAt:   b.CreatedAt,
		Permission:  string(b.Permission),
		Totals: api.BillTotals{
			Income:           b.Totals.Income,
			Expense:          b.Totals.Expense,
			Net:              b.Totals.Net,
			TransactionCount: b.Totals.Count,
		},
	}
}

func toAPIShare(s *models.BillShare) *api.BillShare {
	return &api.BillShare{
		ID:                  s.ID,
		BillID:              s.BillID,
		OwnerUserID:         s.OwnerUserID,
		SharedWithUserID:    s.SharedWithUserID,
		SharedWithUserEmail: s.SharedWithUserEmail,
		Permission:          string(s.Permission),
	}
}

func toAPICategory(c *models.Category) *api.Category {
	return &api.Category{
		ID:       c.ID,
		BillID:   c.BillID,
		UserID:   c.UserID,
		Name:     c.Name,
		Type:     string(c.Type),
		Icon:     c.Icon,
		Color:    c.Color,
		IsSeed:   c.IsSeed,
		ParentID: c.ParentID,
	}
}

func toAPITransaction(t *models.Transaction) *api.Transaction {
	return &api.Transaction{
		ID:         t.ID,
		BillID:     t.BillID,
		CategoryID: t.CategoryID,
		UserID:     t.UserID,
		Type:       string(t.Type),
		Amount:     t.Amount,
		Date:       t.Date,
		Notes:      t.Notes,
		AssetID:    t.AssetID,
	}
}

// toAPIAsset returns nil for a nil asset.
func toAPIAsset(a *models.Asset) *api.Asset {
	if a == nil {
		return nil
	}
	return &api.Asset{
		ID:             a.ID,
		UserID:         a.UserID,
		Name:           a.Name,
		Type:           a.Type,
		Balance:        a.Balance,
		OpeningBalance: a.OpeningBalance,
	}
}

func toAPIDiscrepancy(d *calculator.Discrepancy) *api.Discrepancy {
	return &api.Discrepancy{
		AssetID:    d.AccountID,
		Stored:     d.Stored,
		Expected:   d.Expected,
		Difference: d.Difference,
	}
}
