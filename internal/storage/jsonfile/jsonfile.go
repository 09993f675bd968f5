// Package jsonfile stores the snapshot as a single JSON document on disk.
// It reads the db.json layout written by earlier FinTrack servers.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/fintrack/internal/calculator"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on top of one JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// New returns a Store for path. The file is created on first save. An
// existing file with plaintext passwords is rewritten with their hashes.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	s := &Store{path: path}
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// document is the on-disk layout. Older files differ in three ways: users
// carry a plaintext password, bill createdAt is an ISO timestamp, and assets
// have no openingBalance.
type document struct {
	Revision     int64                `json:"revision"`
	Users        []userDoc            `json:"users"`
	Bills        []billDoc            `json:"bills"`
	BillShares   []models.BillShare   `json:"billShares"`
	Categories   []models.Category    `json:"categories"`
	Transactions []models.Transaction `json:"transactions"`
	Assets       []assetDoc           `json:"assets"`
}

type userDoc struct {
	models.User
	Password string `json:"password,omitempty"`
}

type billDoc struct {
	models.Bill
	CreatedAt unixTime `json:"createdAt,omitempty"`
}

// unixTime decodes either unix seconds or an RFC 3339 string.
type unixTime int64

func (u *unixTime) UnmarshalJSON(data []byte) error {
	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*u = unixTime(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}
	if s == "" {
		*u = 0
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}
	*u = unixTime(t.Unix())
	return nil
}

type assetDoc struct {
	models.Asset
	OpeningBalance *decimal.Decimal `json:"openingBalance,omitempty"`
}

func (s *Store) Load(ctx context.Context) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (*models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}

	upgraded, err := hashLegacyPasswords(&doc)
	if err != nil {
		return nil, err
	}
	if upgraded > 0 {
		// Same revision: only the password encoding changed.
		if err := s.write(&doc); err != nil {
			return nil, err
		}
		slog.Info("Hashed legacy plaintext passwords", "path", s.path, "users", upgraded)
	}
	return fromDocument(&doc), nil
}

// hashLegacyPasswords replaces plaintext passwords with bcrypt hashes in
// place and returns how many it replaced.
func hashLegacyPasswords(doc *document) (int, error) {
	n := 0
	for i := range doc.Users {
		u := &doc.Users[i]
		if u.Password == "" {
			continue
		}
		if u.PasswordHash == "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return 0, fmt.Errorf("failed to hash legacy password: %w", err)
			}
			u.PasswordHash = string(hash)
		}
		u.Password = ""
		n++
	}
	return n, nil
}

// Save writes the snapshot to a temp file and renames it over the old one.
func (s *Store) Save(ctx context.Context, snap *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	if current.Revision != snap.Revision {
		return storage.ErrStaleSnapshot
	}

	doc := toDocument(snap)
	doc.Revision++
	if err := s.write(doc); err != nil {
		return err
	}

	snap.Revision = doc.Revision
	return nil
}

// write replaces the file with doc through a synced temp file and a rename.
func (s *Store) write(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".db-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

func fromDocument(doc *document) *models.Snapshot {
	snap := models.NewSnapshot()
	snap.Revision = doc.Revision
	for _, u := range doc.Users {
		snap.Users = append(snap.Users, u.User)
	}
	for _, b := range doc.Bills {
		bill := b.Bill
		bill.CreatedAt = int64(b.CreatedAt)
		snap.Bills = append(snap.Bills, bill)
	}
	snap.BillShares = append(snap.BillShares, doc.BillShares...)
	snap.Categories = append(snap.Categories, doc.Categories...)
	snap.Transactions = append(snap.Transactions, doc.Transactions...)

	var linked map[string]decimal.Decimal
	for _, a := range doc.Assets {
		asset := a.Asset
		if a.OpeningBalance != nil {
			asset.OpeningBalance = *a.OpeningBalance
		} else {
			// Derive the opening balance that makes the stored balance reconcile.
			if linked == nil {
				linked = calculator.LinkedSums(entriesOf(snap.Transactions))
			}
			asset.OpeningBalance = asset.Balance.Sub(linked[asset.ID])
		}
		snap.Assets = append(snap.Assets, asset)
	}
	return snap
}

func toDocument(snap *models.Snapshot) *document {
	doc := &document{
		Revision:     snap.Revision,
		Users:        make([]userDoc, len(snap.Users)),
		Bills:        make([]billDoc, len(snap.Bills)),
		BillShares:   snap.BillShares,
		Categories:   snap.Categories,
		Transactions: snap.Transactions,
		Assets:       make([]assetDoc, len(snap.Assets)),
	}
	for i, u := range snap.Users {
		doc.Users[i] = userDoc{User: u}
	}
	for i, b := range snap.Bills {
		doc.Bills[i] = billDoc{Bill: b, CreatedAt: unixTime(b.CreatedAt)}
	}
	for i, a := range snap.Assets {
		opening := a.OpeningBalance
		doc.Assets[i] = assetDoc{Asset: a, OpeningBalance: &opening}
	}
	return doc
}

func entriesOf(txs []models.Transaction) []calculator.Entry {
	out := make([]calculator.Entry, len(txs))
	for i, tx := range txs {
		out[i] = calculator.Entry{BillID: tx.BillID, AssetID: tx.AssetID, Signed: tx.SignedAmount()}
	}
	return out
}
