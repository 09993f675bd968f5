package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/fintrack/internal/models"
)

// CategoryTemplate describes a category created for every new user.
type CategoryTemplate struct {
	Name  string
	Type  models.TransactionType
	Icon  string
	Color string
}

const (
	defaultBillName        = "Personal"
	defaultBillDescription = "My personal daily expenses."
)

// RegisterUser adds user to the snapshot together with a personal bill seeded
// with one category per template. The returned bill is the seeded one.
func RegisterUser(snap *models.Snapshot, user *models.User, seeds []CategoryTemplate) (*models.Bill, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return nil, invalid("email is required")
	}
	if snap.UserByEmail(user.Email) != nil {
		return nil, ErrEmailExists
	}
	for _, seed := range seeds {
		if !seed.Type.Valid() {
			return nil, invalid("seed category %q has type %q", seed.Name, seed.Type)
		}
	}
	if user.Name == "" {
		user.Name = strings.SplitN(user.Email, "@", 2)[0]
	}
	snap.Users = append(snap.Users, *user)

	bill, err := CreateBill(snap, user.ID, defaultBillName, defaultBillDescription)
	if err != nil {
		return nil, err
	}

	for _, seed := range seeds {
		snap.Categories = append(snap.Categories, models.Category{
			ID:     uuid.New().String(),
			BillID: bill.ID,
			UserID: user.ID,
			Name:   seed.Name,
			Type:   seed.Type,
			Icon:   seed.Icon,
			Color:  seed.Color,
			IsSeed: true,
		})
	}
	return bill, nil
}
