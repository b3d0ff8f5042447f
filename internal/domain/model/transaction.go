package model

import (
	"sort"
	"time"
)

// TransactionKind distinguishes credits from debits.
type TransactionKind string

const (
	TransactionCharge TransactionKind = "CHARGE"
	TransactionUse    TransactionKind = "USE"
)

// Transaction is a single immutable history entry for an account.
// Amount is the magnitude of the change, never the resulting balance.
type Transaction struct {
	ID        int64
	AccountID int64
	Kind      TransactionKind
	Amount    int64
	Timestamp time.Time
}

// SortTransactionsByTime orders history entries chronologically in place.
// The sort is stable: entries with equal timestamps keep their input order.
// Stores may return entries in arbitrary order, so every read path applies
// this before handing history to a caller.
func SortTransactionsByTime(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})
}
