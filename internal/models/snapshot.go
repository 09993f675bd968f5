package models

import "strings"

// Snapshot is the full persisted state.
// Stores load and save it as a unit.
type Snapshot struct {
	// Revision increments on every successful save.
	Revision int64 `json:"revision"`

	Users        []User        `json:"users"`
	Bills        []Bill        `json:"bills"`
	BillShares   []BillShare   `json:"billShares"`
	Categories   []Category    `json:"categories"`
	Transactions []Transaction `json:"transactions"`
	Assets       []Asset       `json:"assets"`
}

// NewSnapshot returns an empty snapshot with non-nil collections.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:        []User{},
		Bills:        []Bill{},
		BillShares:   []BillShare{},
		Categories:   []Category{},
		Transactions: []Transaction{},
		Assets:       []Asset{},
	}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Revision:     s.Revision,
		Users:        append([]User{}, s.Users...),
		Bills:        append([]Bill{}, s.Bills...),
		BillShares:   append([]BillShare{}, s.BillShares...),
		Categories:   append([]Category{}, s.Categories...),
		Transactions: append([]Transaction{}, s.Transactions...),
		Assets:       append([]Asset{}, s.Assets...),
	}
}

func (s *Snapshot) User(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// UserByEmail returns the user with the given email, or nil.
// Emails compare case-insensitively.
func (s *Snapshot) UserByEmail(email string) *User {
	email = strings.TrimSpace(email)
	for i := range s.Users {
		if strings.EqualFold(s.Users[i].Email, email) {
			return &s.Users[i]
		}
	}
	return nil
}

func (s *Snapshot) Bill(id string) *Bill {
	for i := range s.Bills {
		if s.Bills[i].ID == id {
			return &s.Bills[i]
		}
	}
	return nil
}

func (s *Snapshot) Share(id string) *BillShare {
	for i := range s.BillShares {
		if s.BillShares[i].ID == id {
			return &s.BillShares[i]
		}
	}
	return nil
}

// ShareFor returns the share granting userID access to billID, or nil.
func (s *Snapshot) ShareFor(billID, userID string) *BillShare {
	for i := range s.BillShares {
		if s.BillShares[i].BillID == billID && s.BillShares[i].SharedWithUserID == userID {
			return &s.BillShares[i]
		}
	}
	return nil
}

func (s *Snapshot) Category(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

func (s *Snapshot) Transaction(id string) *Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}

func (s *Snapshot) Asset(id string) *Asset {
	for i := range s.Assets {
		if s.Assets[i].ID == id {
			return &s.Assets[i]
		}
	}
	return nil
}
