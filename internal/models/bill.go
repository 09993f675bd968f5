package models

// Bill is a named ledger owned by one user.
// Transactions and categories always belong to exactly one bill.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Name is the human-readable name (e.g., "Personal", "Household").
	Name string `json:"name"`

	Description string `json:"description"`

	// UserID is the owner. Only the owner may delete or share the bill.
	UserID string `json:"userId"`

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64 `json:"createdAt,omitempty"`
}

// BillShare grants another user access to a bill.
type BillShare struct {
	ID          string `json:"id"`
	BillID      string `json:"billId"`
	OwnerUserID string `json:"ownerUserId"`

	// SharedWithUserID is the grantee. At most one share exists per (BillID, SharedWithUserID).
	SharedWithUserID string `json:"sharedWithUserId"`

	// SharedWithUserEmail is a display copy of the grantee's email.
	// It is refreshed from the users collection on read and never used for authorization.
	SharedWithUserEmail string `json:"sharedWithUserEmail"`

	// Permission is either PermissionView or PermissionEdit.
	Permission Permission `json:"permission"`
}
