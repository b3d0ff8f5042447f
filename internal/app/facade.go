package app

import (
	"context"

	"github.com/pointware/pointledger/internal/domain/model"
	"github.com/pointware/pointledger/internal/domain/repository"
	"github.com/pointware/pointledger/internal/usecase"
)

// PointFacade aggregates the operations handlers and the audit worker need.
type PointFacade struct {
	ledger   *usecase.LedgerUseCase
	balances repository.BalanceRepository
}

// NewPointFacade constructs PointFacade.
func NewPointFacade(ledger *usecase.LedgerUseCase, balances repository.BalanceRepository) *PointFacade {
	return &PointFacade{ledger: ledger, balances: balances}
}

func (f *PointFacade) Balance(ctx context.Context, accountID int64) (*model.AccountBalance, error) {
	return f.ledger.GetBalance(ctx, accountID)
}

func (f *PointFacade) Charge(ctx context.Context, accountID, amount int64) (*model.AccountBalance, error) {
	return f.ledger.Charge(ctx, accountID, amount)
}

func (f *PointFacade) Use(ctx context.Context, accountID, amount int64) (*model.AccountBalance, error) {
	return f.ledger.Use(ctx, accountID, amount)
}

func (f *PointFacade) History(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	return f.ledger.GetHistory(ctx, accountID)
}

func (f *PointFacade) AccountsForAudit(ctx context.Context, limit int) ([]int64, error) {
	return f.balances.AccountIDs(ctx, limit)
}
