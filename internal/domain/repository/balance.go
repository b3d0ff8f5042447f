package repository

import (
	"context"

	"github.com/pointware/pointledger/internal/domain/model"
)

// BalanceRepository manages per-account point balances.
// Lookup of an account that was never mutated returns a zero balance,
// not an error. Upsert must be an atomic single-key write visible to
// subsequent lookups from any caller.
type BalanceRepository interface {
	Lookup(ctx context.Context, accountID int64) (*model.AccountBalance, error)
	Upsert(ctx context.Context, accountID int64, balance int64) (*model.AccountBalance, error)
	AccountIDs(ctx context.Context, limit int) ([]int64, error)
}
