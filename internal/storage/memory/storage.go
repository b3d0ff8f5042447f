package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pointware/pointledger/internal/domain/model"
	"github.com/pointware/pointledger/internal/domain/repository"
)

// Storage keeps balances and transaction history in process memory. It
// backs the service when no database is configured and honours the same
// repository contracts as the postgres backend.
type Storage struct {
	mu       sync.RWMutex
	balances map[int64]model.AccountBalance
	history  map[int64][]model.Transaction
	nextTxID int64
}

type balanceRepository struct {
	storage *Storage
}

type historyRepository struct {
	storage *Storage
}

// New creates empty in-memory storage.
func New() *Storage {
	return &Storage{
		balances: make(map[int64]model.AccountBalance),
		history:  make(map[int64][]model.Transaction),
	}
}

// Balances returns the balance repository view of the storage.
func (s *Storage) Balances() repository.BalanceRepository {
	return &balanceRepository{storage: s}
}

// Histories returns the history repository view of the storage.
func (s *Storage) Histories() repository.HistoryRepository {
	return &historyRepository{storage: s}
}

func (r *balanceRepository) Lookup(ctx context.Context, accountID int64) (*model.AccountBalance, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	if b, ok := r.storage.balances[accountID]; ok {
		return &b, nil
	}
	return &model.AccountBalance{AccountID: accountID}, nil
}

func (r *balanceRepository) Upsert(ctx context.Context, accountID int64, balance int64) (*model.AccountBalance, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	updated := model.AccountBalance{AccountID: accountID, Balance: balance, UpdatedAt: time.Now()}
	r.storage.balances[accountID] = updated
	return &updated, nil
}

func (r *balanceRepository) AccountIDs(ctx context.Context, limit int) ([]int64, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	ids := make([]int64, 0, len(r.storage.balances))
	for id := range r.storage.balances {
		if limit > 0 && len(ids) == limit {
			break
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *historyRepository) AppendFor(ctx context.Context, accountID int64, amount int64, kind model.TransactionKind, at time.Time) (*model.Transaction, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	r.storage.nextTxID++
	tx := model.Transaction{
		ID:        r.storage.nextTxID,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		Timestamp: at,
	}
	r.storage.history[accountID] = append(r.storage.history[accountID], tx)
	return &tx, nil
}

func (r *historyRepository) ListFor(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	stored := r.storage.history[accountID]
	result := make([]model.Transaction, len(stored))
	copy(result, stored)
	return result, nil
}
