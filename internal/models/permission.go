package models

// Permission is a user's effective access level on a bill.
type Permission string

const (
	PermissionNone  Permission = "none"
	PermissionView  Permission = "view"
	PermissionEdit  Permission = "edit"
	PermissionOwner Permission = "owner"
)

// Grantable reports whether p can be stored on a BillShare.
func (p Permission) Grantable() bool {
	return p == PermissionView || p == PermissionEdit
}

// TransactionType distinguishes income from expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}
