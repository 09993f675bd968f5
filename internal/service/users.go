package service

import (
	"context"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
)

// Ensure UserStore implements auth.UserStorage
var _ auth.UserStorage = (*UserStore)(nil)

// UserStore keeps users in the guarded snapshot. Creating a user also creates
// their personal bill with the seed categories.
type UserStore struct {
	guard *storage.Guard
	seeds []ledger.CategoryTemplate
}

func NewUserStore(guard *storage.Guard, seeds []ledger.CategoryTemplate) *UserStore {
	return &UserStore{guard: guard, seeds: seeds}
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.guard.Update(ctx, func(snap *models.Snapshot) error {
		_, err := ledger.RegisterUser(snap, user, s.seeds)
		return err
	})
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.find(ctx, func(snap *models.Snapshot) *models.User { return snap.UserByEmail(email) })
}

func (s *UserStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.find(ctx, func(snap *models.Snapshot) *models.User { return snap.User(id) })
}

func (s *UserStore) find(ctx context.Context, lookup func(*models.Snapshot) *models.User) (*models.User, error) {
	var user *models.User
	err := s.guard.View(ctx, func(snap *models.Snapshot) error {
		if u := lookup(snap); u != nil {
			copied := *u
			user = &copied
		}
		return nil
	})
	return user, err
}
