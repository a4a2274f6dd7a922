package domain

import "time"

// Wallet holds a user's balance in minor currency units.
// The balance never goes negative: every debit is a conditional
// update that refuses to cross zero.
type Wallet struct {
	UserID       int64
	BalanceCents int64
	UpdatedAt    time.Time
}
