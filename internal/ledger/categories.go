package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/fintrack/internal/models"
)

// CategoryInput holds the fields of a new category.
type CategoryInput struct {
	BillID   string
	Name     string
	Type     models.TransactionType
	Icon     string
	Color    string
	ParentID string
}

// CategoryPatch lists category fields to change. The bill cannot change.
type CategoryPatch struct {
	Name     *string
	Type     *models.TransactionType
	Icon     *string
	Color    *string
	ParentID *string
}

// ListCategories returns the categories of every bill userID can read.
func ListCategories(snap *models.Snapshot, userID string) []models.Category {
	readable := readableBills(snap, userID)
	out := []models.Category{}
	for _, c := range snap.Categories {
		if readable[c.BillID] {
			out = append(out, c)
		}
	}
	return out
}

func CreateCategory(snap *models.Snapshot, userID string, in CategoryInput) (*models.Category, error) {
	if _, err := requireWrite(snap, userID, in.BillID); err != nil {
		return nil, err
	}

	c := models.Category{
		ID:       uuid.New().String(),
		BillID:   in.BillID,
		UserID:   userID,
		Name:     strings.TrimSpace(in.Name),
		Type:     in.Type,
		Icon:     in.Icon,
		Color:    in.Color,
		ParentID: in.ParentID,
	}
	if err := validateCategory(snap, &c); err != nil {
		return nil, err
	}

	snap.Categories = append(snap.Categories, c)
	return &c, nil
}

// UpdateCategory changes a category. A category's type cannot change while
// transactions or child categories depend on it.
func UpdateCategory(snap *models.Snapshot, userID, categoryID string, patch CategoryPatch) (*models.Category, error) {
	cur := snap.Category(categoryID)
	if cur == nil {
		return nil, notFound("category", categoryID)
	}
	if _, err := requireWrite(snap, userID, cur.BillID); err != nil {
		return nil, err
	}

	next := *cur
	if patch.Name != nil {
		next.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Type != nil {
		next.Type = *patch.Type
	}
	if patch.Icon != nil {
		next.Icon = *patch.Icon
	}
	if patch.Color != nil {
		next.Color = *patch.Color
	}
	if patch.ParentID != nil {
		next.ParentID = *patch.ParentID
	}

	if err := validateCategory(snap, &next); err != nil {
		return nil, err
	}
	if next.Type != cur.Type && categoryReferenced(snap, categoryID) {
		return nil, ErrTypeCategoryMismatch
	}

	*cur = next
	return &next, nil
}

// DeleteCategory removes a category that nothing references.
func DeleteCategory(snap *models.Snapshot, userID, categoryID string) error {
	c := snap.Category(categoryID)
	if c == nil {
		return notFound("category", categoryID)
	}
	if _, err := requireWrite(snap, userID, c.BillID); err != nil {
		return err
	}
	if categoryReferenced(snap, categoryID) {
		return ErrCategoryInUse
	}

	snap.Categories = removeWhere(snap.Categories, func(c models.Category) bool { return c.ID == categoryID })
	return nil
}

func validateCategory(snap *models.Snapshot, c *models.Category) error {
	if c.Name == "" {
		return invalid("category name is required")
	}
	if !c.Type.Valid() {
		return invalid("type must be income or expense, got %q", c.Type)
	}
	if c.ParentID == "" {
		return nil
	}

	parent := snap.Category(c.ParentID)
	if parent == nil || parent.BillID != c.BillID {
		return notFound("parent category", c.ParentID)
	}
	if parent.Type != c.Type {
		return invalid("parent category type %q does not match %q", parent.Type, c.Type)
	}
	// Walk up from the parent; reaching c means the new link would form a cycle.
	p := parent
	for steps := 0; p != nil && steps <= len(snap.Categories); steps++ {
		if p.ID == c.ID {
			return invalid("category cannot be its own ancestor")
		}
		if p.ParentID == "" {
			break
		}
		p = snap.Category(p.ParentID)
	}
	return nil
}

func categoryReferenced(snap *models.Snapshot, categoryID string) bool {
	for _, tx := range snap.Transactions {
		if tx.CategoryID == categoryID {
			return true
		}
	}
	for _, c := range snap.Categories {
		if c.ParentID == categoryID {
			return true
		}
	}
	return false
}
