// Package models defines the core domain models for SmartSplit.
//
// The following models make up the ledger:
//   - Member: A participant in the group with a running net balance
//   - Expense: A payment by one member shared equally among a set of members
//   - Transfer: A directed settle-up payment between two members
//
// Members are identified by display name (no user accounts); the name acts
// as the primary key throughout. Money is represented with decimal values so
// that applying and reversing an expense is exact, which is what makes
// delete-by-position safe.
package models
