package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
)

const legacyDB = `{
  "users": [
    {"id": "u1", "email": "alice@example.com", "name": "alice", "password": "secret"}
  ],
  "bills": [
    {"id": "b1", "name": "Personal", "description": "My personal daily expenses.", "userId": "u1", "createdAt": "2024-01-02T03:04:05.000Z"}
  ],
  "billShares": [],
  "categories": [
    {"id": "c1", "name": "seedCategories.groceries", "isSeed": true, "type": "expense", "icon": "🛒", "color": "#FF9800", "userId": "u1", "billId": "b1"}
  ],
  "transactions": [
    {"id": "t1", "billId": "b1", "categoryId": "c1", "type": "expense", "amount": 200, "date": "2024-01-05", "notes": "", "userId": "u1", "assetId": "a1"},
    {"id": "t2", "billId": "b1", "categoryId": "c1", "type": "expense", "amount": 19.99, "date": "2024-01-06", "notes": "", "userId": "u1"}
  ],
  "assets": [
    {"id": "a1", "userId": "u1", "name": "Checking", "type": "bank", "balance": 800}
  ]
}`

func TestLoadLegacyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	if err := os.WriteFile(path, []byte(legacyDB), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	store, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if snap.Revision != 0 {
		t.Errorf("Expected revision 0, got %d", snap.Revision)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(snap.Users[0].PasswordHash), []byte("secret")); err != nil {
		t.Errorf("Expected legacy password to be hashed: %v", err)
	}
	if snap.Bills[0].CreatedAt != 1704164645 {
		t.Errorf("Expected createdAt 1704164645, got %d", snap.Bills[0].CreatedAt)
	}
	if !snap.Transactions[1].Amount.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("Expected amount 19.99, got %s", snap.Transactions[1].Amount)
	}
	if !snap.Assets[0].OpeningBalance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected derived opening balance 1000, got %s", snap.Assets[0].OpeningBalance)
	}
}

func TestLegacyPasswordsHashedOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte(legacyDB), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	store, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	var doc struct {
		Revision int64            `json:"revision"`
		Users    []map[string]any `json:"users"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Rewritten file is not JSON: %v", err)
	}
	if _, ok := doc.Users[0]["password"]; ok {
		t.Error("Expected plaintext password to be removed from the file")
	}
	persisted, _ := doc.Users[0]["passwordHash"].(string)
	if persisted == "" {
		t.Fatal("Expected passwordHash in the rewritten file")
	}
	if doc.Revision != 0 {
		t.Errorf("Expected revision to stay 0, got %d", doc.Revision)
	}

	for i := range 2 {
		snap, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load %d failed: %v", i, err)
		}
		if got := snap.Users[0].PasswordHash; got != persisted {
			t.Errorf("Load %d: expected hash %q, got %q", i, persisted, got)
		}
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(after) != string(raw) {
		t.Error("Expected Load to leave an upgraded file untouched")
	}
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "db.json")

	store, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	snap, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	snap.Users = append(snap.Users, models.User{ID: "u1", Email: "a@example.com", Name: "a", PasswordHash: "hash"})
	snap.Bills = append(snap.Bills, models.Bill{ID: "b1", Name: "Personal", UserID: "u1", CreatedAt: 1700000000})
	snap.Assets = append(snap.Assets, models.Asset{ID: "a1", UserID: "u1", Name: "Cash", Balance: decimal.NewFromInt(5), OpeningBalance: decimal.Zero})

	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if snap.Revision != 1 {
		t.Errorf("Expected revision 1, got %d", snap.Revision)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Saved file is not JSON: %v", err)
	}
	for _, key := range []string{"users", "bills", "billShares", "categories", "transactions", "assets", "revision"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("Expected key %q in saved file", key)
		}
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Bills[0].CreatedAt != 1700000000 {
		t.Errorf("Expected createdAt to round trip, got %d", loaded.Bills[0].CreatedAt)
	}
	// A stored zero opening balance is kept, not re-derived.
	if !loaded.Assets[0].OpeningBalance.IsZero() {
		t.Errorf("Expected opening balance 0, got %s", loaded.Assets[0].OpeningBalance)
	}

	stale := snap.Clone()
	stale.Revision = 0
	if err := store.Save(ctx, stale); !errors.Is(err, storage.ErrStaleSnapshot) {
		t.Errorf("Expected ErrStaleSnapshot, got %v", err)
	}
}
