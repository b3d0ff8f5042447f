package test

import (
	"context"
	"time"

	"github.com/pointware/pointledger/internal/domain/model"
)

// BalanceRepositoryStub stores balances in-memory for tests and lets
// individual behaviours be overridden per test.
type BalanceRepositoryStub struct {
	LookupFn     func(context.Context, int64) (*model.AccountBalance, error)
	UpsertFn     func(context.Context, int64, int64) (*model.AccountBalance, error)
	AccountIDsFn func(context.Context, int) ([]int64, error)

	Balances map[int64]*model.AccountBalance
	Upserts  []BalanceUpsertCall
}

// BalanceUpsertCall records arguments of one Upsert invocation.
type BalanceUpsertCall struct {
	AccountID int64
	Balance   int64
}

// NewBalanceRepositoryStub constructs stub repository with initialized state.
func NewBalanceRepositoryStub() *BalanceRepositoryStub {
	return &BalanceRepositoryStub{Balances: make(map[int64]*model.AccountBalance)}
}

// Lookup returns the stored balance or a zero-valued one for unknown accounts.
func (s *BalanceRepositoryStub) Lookup(ctx context.Context, accountID int64) (*model.AccountBalance, error) {
	if s.LookupFn != nil {
		return s.LookupFn(ctx, accountID)
	}
	if b, ok := s.Balances[accountID]; ok {
		copied := *b
		return &copied, nil
	}
	return &model.AccountBalance{AccountID: accountID}, nil
}

// Upsert stores the new balance and records the call.
func (s *BalanceRepositoryStub) Upsert(ctx context.Context, accountID int64, balance int64) (*model.AccountBalance, error) {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, accountID, balance)
	}
	if s.Balances == nil {
		s.Balances = make(map[int64]*model.AccountBalance)
	}
	updated := &model.AccountBalance{AccountID: accountID, Balance: balance, UpdatedAt: time.Now()}
	s.Balances[accountID] = updated
	s.Upserts = append(s.Upserts, BalanceUpsertCall{AccountID: accountID, Balance: balance})
	copied := *updated
	return &copied, nil
}

// AccountIDs returns known account identifiers up to limit.
func (s *BalanceRepositoryStub) AccountIDs(ctx context.Context, limit int) ([]int64, error) {
	if s.AccountIDsFn != nil {
		return s.AccountIDsFn(ctx, limit)
	}
	ids := make([]int64, 0, len(s.Balances))
	for id := range s.Balances {
		if limit > 0 && len(ids) == limit {
			break
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// HistoryRepositoryStub keeps appended transactions in a slice.
type HistoryRepositoryStub struct {
	AppendFn func(context.Context, int64, int64, model.TransactionKind, time.Time) (*model.Transaction, error)
	ListFn   func(context.Context, int64) ([]model.Transaction, error)

	Items  []model.Transaction
	nextID int64
}

// AppendFor records the transaction and assigns a monotonically growing id.
func (s *HistoryRepositoryStub) AppendFor(ctx context.Context, accountID int64, amount int64, kind model.TransactionKind, at time.Time) (*model.Transaction, error) {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, accountID, amount, kind, at)
	}
	s.nextID++
	tx := model.Transaction{ID: s.nextID, AccountID: accountID, Kind: kind, Amount: amount, Timestamp: at}
	s.Items = append(s.Items, tx)
	return &tx, nil
}

// ListFor returns recorded transactions for the account.
func (s *HistoryRepositoryStub) ListFor(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, accountID)
	}
	var result []model.Transaction
	for _, tx := range s.Items {
		if tx.AccountID == accountID {
			result = append(result, tx)
		}
	}
	return result, nil
}
