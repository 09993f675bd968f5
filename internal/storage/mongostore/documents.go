package mongostore

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/models"
)

// Amounts are stored as decimal strings; BSON has no codec for decimal.Decimal.

type snapshotDoc struct {
	ID           string           `bson:"_id"`
	Revision     int64            `bson:"revision"`
	Users        []userDoc        `bson:"users"`
	Bills        []billDoc        `bson:"bills"`
	BillShares   []shareDoc       `bson:"billShares"`
	Categories   []categoryDoc    `bson:"categories"`
	Transactions []transactionDoc `bson:"transactions"`
	Assets       []assetDoc       `bson:"assets"`
}

type userDoc struct {
	ID           string `bson:"id"`
	Email        string `bson:"email"`
	Name         string `bson:"name"`
	PasswordHash string `bson:"passwordHash,omitempty"`
	CreatedAt    int64  `bson:"createdAt,omitempty"`
}

type billDoc struct {
	ID          string `bson:"id"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
	UserID      string `bson:"userId"`
	CreatedAt   int64  `bson:"createdAt,omitempty"`
}

type shareDoc struct {
	ID                  string `bson:"id"`
	BillID              string `bson:"billId"`
	OwnerUserID         string `bson:"ownerUserId"`
	SharedWithUserID    string `bson:"sharedWithUserId"`
	SharedWithUserEmail string `bson:"sharedWithUserEmail"`
	Permission          string `bson:"permission"`
}

type categoryDoc struct {
	ID       string `bson:"id"`
	BillID   string `bson:"billId"`
	UserID   string `bson:"userId"`
	Name     string `bson:"name"`
	Type     string `bson:"type"`
	Icon     string `bson:"icon"`
	Color    string `bson:"color"`
	IsSeed   bool   `bson:"isSeed,omitempty"`
	ParentID string `bson:"parentId,omitempty"`
}

type transactionDoc struct {
	ID         string `bson:"id"`
	BillID     string `bson:"billId"`
	CategoryID string `bson:"categoryId"`
	UserID     string `bson:"userId"`
	Type       string `bson:"type"`
	Amount     string `bson:"amount"`
	Date       string `bson:"date"`
	Notes      string `bson:"notes"`
	AssetID    string `bson:"assetId,omitempty"`
}

type assetDoc struct {
	ID             string `bson:"id"`
	UserID         string `bson:"userId"`
	Name           string `bson:"name"`
	Type           string `bson:"type"`
	Balance        string `bson:"balance"`
	OpeningBalance string `bson:"openingBalance"`
}

func toDoc(snap *models.Snapshot) *snapshotDoc {
	doc := &snapshotDoc{
		ID:           snapshotID,
		Revision:     snap.Revision,
		Users:        make([]userDoc, 0, len(snap.Users)),
		Bills:        make([]billDoc, 0, len(snap.Bills)),
		BillShares:   make([]shareDoc, 0, len(snap.BillShares)),
		Categories:   make([]categoryDoc, 0, len(snap.Categories)),
		Transactions: make([]transactionDoc, 0, len(snap.Transactions)),
		Assets:       make([]assetDoc, 0, len(snap.Assets)),
	}
	for _, u := range snap.Users {
		doc.Users = append(doc.Users, userDoc(u))
	}
	for _, b := range snap.Bills {
		doc.Bills = append(doc.Bills, billDoc(b))
	}
	for _, s := range snap.BillShares {
		doc.BillShares = append(doc.BillShares, shareDoc{
			ID:                  s.ID,
			BillID:              s.BillID,
			OwnerUserID:         s.OwnerUserID,
			SharedWithUserID:    s.SharedWithUserID,
			SharedWithUserEmail: s.SharedWithUserEmail,
			Permission:          string(s.Permission),
		})
	}
	for _, c := range snap.Categories {
		doc.Categories = append(doc.Categories, categoryDoc{
			ID:       c.ID,
			BillID:   c.BillID,
			UserID:   c.UserID,
			Name:     c.Name,
			Type:     string(c.Type),
			Icon:     c.Icon,
			Color:    c.Color,
			IsSeed:   c.IsSeed,
			ParentID: c.ParentID,
		})
	}
	for _, t := range snap.Transactions {
		doc.Transactions = append(doc.Transactions, transactionDoc{
			ID:         t.ID,
			BillID:     t.BillID,
			CategoryID: t.CategoryID,
			UserID:     t.UserID,
			Type:       string(t.Type),
			Amount:     t.Amount.String(),
			Date:       t.Date,
			Notes:      t.Notes,
			AssetID:    t.AssetID,
		})
	}
	for _, a := range snap.Assets {
		doc.Assets = append(doc.Assets, assetDoc{
			ID:             a.ID,
			UserID:         a.UserID,
			Name:           a.Name,
			Type:           a.Type,
			Balance:        a.Balance.String(),
			OpeningBalance: a.OpeningBalance.String(),
		})
	}
	return doc
}

func fromDoc(doc *snapshotDoc) (*models.Snapshot, error) {
	snap := models.NewSnapshot()
	snap.Revision = doc.Revision
	for _, u := range doc.Users {
		snap.Users = append(snap.Users, models.User(u))
	}
	for _, b := range doc.Bills {
		snap.Bills = append(snap.Bills, models.Bill(b))
	}
	for _, s := range doc.BillShares {
		snap.BillShares = append(snap.BillShares, models.BillShare{
			ID:                  s.ID,
			BillID:              s.BillID,
			OwnerUserID:         s.OwnerUserID,
			SharedWithUserID:    s.SharedWithUserID,
			SharedWithUserEmail: s.SharedWithUserEmail,
			Permission:          models.Permission(s.Permission),
		})
	}
	for _, c := range doc.Categories {
		snap.Categories = append(snap.Categories, models.Category{
			ID:       c.ID,
			BillID:   c.BillID,
			UserID:   c.UserID,
			Name:     c.Name,
			Type:     models.TransactionType(c.Type),
			Icon:     c.Icon,
			Color:    c.Color,
			IsSeed:   c.IsSeed,
			ParentID: c.ParentID,
		})
	}
	for _, t := range doc.Transactions {
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: invalid amount %q: %w", t.ID, t.Amount, err)
		}
		snap.Transactions = append(snap.Transactions, models.Transaction{
			ID:         t.ID,
			BillID:     t.BillID,
			CategoryID: t.CategoryID,
			UserID:     t.UserID,
			Type:       models.TransactionType(t.Type),
			Amount:     amount,
			Date:       t.Date,
			Notes:      t.Notes,
			AssetID:    t.AssetID,
		})
	}
	for _, a := range doc.Assets {
		balance, err := decimal.NewFromString(a.Balance)
		if err != nil {
			return nil, fmt.Errorf("asset %s: invalid balance %q: %w", a.ID, a.Balance, err)
		}
		opening, err := decimal.NewFromString(a.OpeningBalance)
		if err != nil {
			return nil, fmt.Errorf("asset %s: invalid opening balance %q: %w", a.ID, a.OpeningBalance, err)
		}
		snap.Assets = append(snap.Assets, models.Asset{
			ID:             a.ID,
			UserID:         a.UserID,
			Name:           a.Name,
			Type:           a.Type,
			Balance:        balance,
			OpeningBalance: opening,
		})
	}
	return snap, nil
}
