// Package models defines the core domain models for mosquefund.
//
// # Models
//
//   - Profile: a staff member who can sign in with a PIN (admin or cashier)
//   - Transaction: a single credit or debit entry in the fund ledger
//   - CommitteeMember: a directory entry shown on the committee page
//
// # Design Principles
//
// 1. **Store owns the data**: the service only holds transient copies fetched per request
// 2. **Magnitudes, not signs**: transaction amounts are stored as non-negative values,
// the sign is derived from the transaction type
// 3. **Weak references**: Transaction.CreatedBy is a profile ID string, never a pointer,
// and the transaction survives if the profile is removed
package models
