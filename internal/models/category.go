package models

// Category groups transactions of one type inside a bill.
type Category struct {
	ID     string `json:"id"`
	BillID string `json:"billId"`

	// UserID is the user who created the category.
	UserID string `json:"userId"`

	Name string          `json:"name"`
	Type TransactionType `json:"type"`

	// Icon and Color are display hints owned by the client.
	Icon  string `json:"icon"`
	Color string `json:"color"`

	// IsSeed marks categories created at registration from the seed catalog.
	IsSeed bool `json:"isSeed,omitempty"`

	// ParentID optionally nests this category under another category of the same bill.
	ParentID string `json:"parentId,omitempty"`
}
