package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/fintrack/internal/models"
)

func insertUsers(ctx context.Context, tx *sql.Tx, users []models.User) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO users (id, email, name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare user insert: %w", err)
	}
	defer stmt.Close()

	for _, u := range users {
		if _, err := stmt.ExecContext(ctx, u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
	}
	return nil
}

func loadUsers(ctx context.Context, tx *sql.Tx) ([]models.User, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, email, name, password_hash, created_at
		FROM users
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
