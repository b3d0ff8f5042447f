package repository

import (
	"context"
	"time"

	"github.com/pointware/pointledger/internal/domain/model"
)

// HistoryRepository provides access to the append-only transaction log.
// ListFor returns entries in unspecified order; callers sort before use.
type HistoryRepository interface {
	AppendFor(ctx context.Context, accountID int64, amount int64, kind model.TransactionKind, at time.Time) (*model.Transaction, error)
	ListFor(ctx context.Context, accountID int64) ([]model.Transaction, error)
}
