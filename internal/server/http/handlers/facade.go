package handlers

import (
	"context"

	"github.com/pointware/pointledger/internal/domain/model"
)

// PointFacade provides the point ledger operations exposed via HTTP.
type PointFacade interface {
	Balance(ctx context.Context, accountID int64) (*model.AccountBalance, error)
	Charge(ctx context.Context, accountID, amount int64) (*model.AccountBalance, error)
	Use(ctx context.Context, accountID, amount int64) (*model.AccountBalance, error)
	History(ctx context.Context, accountID int64) ([]model.Transaction, error)
}
