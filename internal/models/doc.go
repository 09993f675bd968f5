// Package models defines the core domain models for FinTrack.
//
// # Entities
//
//   - User: a registered account. Owns bills and assets.
//   - Bill: a named ledger with exactly one owner.
//   - BillShare: a view or edit grant on a bill for another user.
//   - Category: an income or expense bucket scoped to one bill.
//   - Transaction: an income or expense entry in a bill, optionally linked to an asset.
//   - Asset: an account whose stored balance tracks its linked transactions.
//
// # Snapshot
//
// Snapshot holds every collection at once. Stores load and save whole snapshots;
// the ledger package mutates them in memory inside a single critical section.
//
// # Design Principles
//
// 1. **IDs, not pointers**: relationships are expressed with ID strings
// 2. **Decimal money**: amounts and balances use shopspring/decimal, never float64
// 3. **Stored balances**: Asset.Balance is maintained on write, not recomputed on read
package models
