package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/pointware/pointledger/internal/domain/errors"
	"github.com/pointware/pointledger/internal/domain/model"
	"github.com/pointware/pointledger/internal/domain/repository"
	"github.com/pointware/pointledger/internal/locker"
)

// LedgerUseCase orchestrates point balance reads and mutations. Mutations
// run under the account's lock so that concurrent charge/use calls for one
// account are linearizable; reads never take the lock.
type LedgerUseCase struct {
	balances  repository.BalanceRepository
	histories repository.HistoryRepository
	locks     locker.Locker
	now       func() time.Time
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(b repository.BalanceRepository, h repository.HistoryRepository, l locker.Locker) *LedgerUseCase {
	return &LedgerUseCase{balances: b, histories: h, locks: l, now: time.Now}
}

// GetBalance returns the current balance of an account, zero-valued for an
// account never mutated. The result is a snapshot that may be concurrent
// with an in-flight mutation.
func (u *LedgerUseCase) GetBalance(ctx context.Context, accountID int64) (*model.AccountBalance, error) {
	if err := ValidateAccountID(accountID); err != nil {
		return nil, err
	}
	balance, err := u.balances.Lookup(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrLookupFailed, err)
	}
	return balance, nil
}

// Charge credits amount points to the account and returns the updated balance.
func (u *LedgerUseCase) Charge(ctx context.Context, accountID, amount int64) (*model.AccountBalance, error) {
	return u.update(ctx, accountID, amount, model.TransactionCharge)
}

// Use debits amount points from the account and returns the updated balance.
// Fails with ErrInsufficientPoints when the debit would drive the balance
// negative.
func (u *LedgerUseCase) Use(ctx context.Context, accountID, amount int64) (*model.AccountBalance, error) {
	return u.update(ctx, accountID, amount, model.TransactionUse)
}

// update is the guarded read-modify-write-append sequence shared by Charge
// and Use. Validation happens before the lock is taken so an invalid request
// has no observable side effects. The balance write and the history append
// both happen, in that order, under the same lock hold.
func (u *LedgerUseCase) update(ctx context.Context, accountID, amount int64, kind model.TransactionKind) (*model.AccountBalance, error) {
	if err := ValidateAccountID(accountID); err != nil {
		return nil, err
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	var updated *model.AccountBalance
	err := u.locks.WithAccount(accountID, func() error {
		current, err := u.balances.Lookup(ctx, accountID)
		if err != nil {
			return fmt.Errorf("%w: %v", domainErrors.ErrLookupFailed, err)
		}

		candidate := current.Balance + amount
		if kind == model.TransactionUse {
			candidate = current.Balance - amount
		}
		if candidate < 0 {
			return domainErrors.ErrInsufficientPoints
		}

		updated, err = u.balances.Upsert(ctx, accountID, candidate)
		if err != nil {
			return fmt.Errorf("%w: %v", domainErrors.ErrPersistFailed, err)
		}

		if _, err := u.histories.AppendFor(ctx, accountID, amount, kind, u.now()); err != nil {
			// The balance write is already committed; surface the gap
			// distinctly so operators can reconcile it.
			return fmt.Errorf("%w: %v", domainErrors.ErrHistoryAppendFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetHistory returns all transactions of an account sorted chronologically.
// An account with no history yields an empty sequence, not an error.
func (u *LedgerUseCase) GetHistory(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	if err := ValidateAccountID(accountID); err != nil {
		return nil, err
	}
	transactions, err := u.histories.ListFor(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrLookupFailed, err)
	}
	model.SortTransactionsByTime(transactions)
	return transactions, nil
}
