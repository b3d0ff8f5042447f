package test

import (
	"context"

	"github.com/pointware/pointledger/internal/domain/model"
)

// PointFacadeStub provides controllable behaviour for point endpoints.
type PointFacadeStub struct {
	BalanceFn func(context.Context, int64) (*model.AccountBalance, error)
	ChargeFn  func(context.Context, int64, int64) (*model.AccountBalance, error)
	UseFn     func(context.Context, int64, int64) (*model.AccountBalance, error)
	HistoryFn func(context.Context, int64) ([]model.Transaction, error)
}

// Balance delegates to the configured function or returns a fixed snapshot.
func (s PointFacadeStub) Balance(ctx context.Context, accountID int64) (*model.AccountBalance, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, accountID)
	}
	return &model.AccountBalance{AccountID: accountID, Balance: 100}, nil
}

// Charge delegates to the configured function or echoes the amount back.
func (s PointFacadeStub) Charge(ctx context.Context, accountID, amount int64) (*model.AccountBalance, error) {
	if s.ChargeFn != nil {
		return s.ChargeFn(ctx, accountID, amount)
	}
	return &model.AccountBalance{AccountID: accountID, Balance: amount}, nil
}

// Use delegates to the configured function or returns a zero balance.
func (s PointFacadeStub) Use(ctx context.Context, accountID, amount int64) (*model.AccountBalance, error) {
	if s.UseFn != nil {
		return s.UseFn(ctx, accountID, amount)
	}
	return &model.AccountBalance{AccountID: accountID}, nil
}

// History delegates to the configured function or returns a single entry.
func (s PointFacadeStub) History(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, accountID)
	}
	return []model.Transaction{{ID: 1, AccountID: accountID, Kind: model.TransactionCharge, Amount: 10}}, nil
}

// AuditFacadeStub mimics audit worker interactions with the point facade.
type AuditFacadeStub struct {
	AccountsFn func(context.Context, int) ([]int64, error)
	BalanceFn  func(context.Context, int64) (*model.AccountBalance, error)
	HistoryFn  func(context.Context, int64) ([]model.Transaction, error)
}

// AccountsForAudit returns configured account batches.
func (s AuditFacadeStub) AccountsForAudit(ctx context.Context, limit int) ([]int64, error) {
	if s.AccountsFn != nil {
		return s.AccountsFn(ctx, limit)
	}
	return nil, nil
}

// Balance returns the configured balance or an empty one.
func (s AuditFacadeStub) Balance(ctx context.Context, accountID int64) (*model.AccountBalance, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, accountID)
	}
	return &model.AccountBalance{AccountID: accountID}, nil
}

// History returns the configured history or none.
func (s AuditFacadeStub) History(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, accountID)
	}
	return nil, nil
}
