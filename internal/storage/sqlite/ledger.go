package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/fintrack/internal/models"
)

func insertBills(ctx context.Context, tx *sql.Tx, bills []models.Bill) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO bills (id, name, description, user_id, created_at) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare bill insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bills {
		if _, err := stmt.ExecContext(ctx, b.ID, b.Name, b.Description, b.UserID, b.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert bill: %w", err)
		}
	}
	return nil
}

func loadBills(ctx context.Context, tx *sql.Tx) ([]models.Bill, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, name, description, user_id, created_at FROM bills ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get bills: %w", err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		var b models.Bill
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.UserID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}
	return bills, nil
}

func insertShares(ctx context.Context, tx *sql.Tx, shares []models.BillShare) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bill_shares (id, bill_id, owner_user_id, shared_with_user_id, shared_with_user_email, permission)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare share insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range shares {
		if _, err := stmt.ExecContext(ctx,
			s.ID, s.BillID, s.OwnerUserID, s.SharedWithUserID, s.SharedWithUserEmail, string(s.Permission),
		); err != nil {
			return fmt.Errorf("failed to insert share: %w", err)
		}
	}
	return nil
}

func loadShares(ctx context.Context, tx *sql.Tx) ([]models.BillShare, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, bill_id, owner_user_id, shared_with_user_id, shared_with_user_email, permission
		FROM bill_shares
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get shares: %w", err)
	}
	defer rows.Close()

	shares := []models.BillShare{}
	for rows.Next() {
		var s models.BillShare
		if err := rows.Scan(&s.ID, &s.BillID, &s.OwnerUserID, &s.SharedWithUserID, &s.SharedWithUserEmail, &s.Permission); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}
	return shares, nil
}

func insertCategories(ctx context.Context, tx *sql.Tx, categories []models.Category) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO categories (id, bill_id, user_id, name, type, icon, color, is_seed, parent_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare category insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range categories {
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.BillID, c.UserID, c.Name, string(c.Type), c.Icon, c.Color, c.IsSeed, c.ParentID,
		); err != nil {
			return fmt.Errorf("failed to insert category: %w", err)
		}
	}
	return nil
}

func loadCategories(ctx context.Context, tx *sql.Tx) ([]models.Category, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, bill_id, user_id, name, type, icon, color, is_seed, parent_id
		FROM categories
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.BillID, &c.UserID, &c.Name, &c.Type, &c.Icon, &c.Color, &c.IsSeed, &c.ParentID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

func insertTransactions(ctx context.Context, tx *sql.Tx, txs []models.Transaction) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (id, bill_id, category_id, user_id, type, amount, date, notes, asset_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txs {
		if _, err := stmt.ExecContext(ctx,
			t.ID, t.BillID, t.CategoryID, t.UserID, string(t.Type), t.Amount.String(), t.Date, t.Notes, t.AssetID,
		); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}
	return nil
}

func loadTransactions(ctx context.Context, tx *sql.Tx) ([]models.Transaction, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, bill_id, category_id, user_id, type, amount, date, notes, asset_id
		FROM transactions
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.BillID, &t.CategoryID, &t.UserID, &t.Type, &t.Amount, &t.Date, &t.Notes, &t.AssetID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txs, nil
}

func insertAssets(ctx context.Context, tx *sql.Tx, assets []models.Asset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO assets (id, user_id, name, type, balance, opening_balance)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare asset insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range assets {
		if _, err := stmt.ExecContext(ctx,
			a.ID, a.UserID, a.Name, a.Type, a.Balance.String(), a.OpeningBalance.String(),
		); err != nil {
			return fmt.Errorf("failed to insert asset: %w", err)
		}
	}
	return nil
}

func loadAssets(ctx context.Context, tx *sql.Tx) ([]models.Asset, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, user_id, name, type, balance, opening_balance FROM assets ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get assets: %w", err)
	}
	defer rows.Close()

	assets := []models.Asset{}
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.OpeningBalance); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}
	return assets, nil
}
