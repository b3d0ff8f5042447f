package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/pointware/pointledger/internal/domain/errors"
	"github.com/pointware/pointledger/internal/locker"
	testhelpers "github.com/pointware/pointledger/internal/test"
	"github.com/pointware/pointledger/internal/usecase"
)

func newFacade() (*PointFacade, *testhelpers.BalanceRepositoryStub, *testhelpers.HistoryRepositoryStub) {
	balances := testhelpers.NewBalanceRepositoryStub()
	histories := &testhelpers.HistoryRepositoryStub{}
	ledger := usecase.NewLedgerUseCase(balances, histories, locker.NewAccountLocks())
	return NewPointFacade(ledger, balances), balances, histories
}

func TestPointFacadeChargeUseAndBalance(t *testing.T) {
	facade, _, histories := newFacade()

	updated, err := facade.Charge(context.Background(), 1, 100)
	if err != nil {
		t.Fatalf("charge returned error: %v", err)
	}
	if updated.Balance != 100 {
		t.Fatalf("expected balance 100, got %d", updated.Balance)
	}

	updated, err = facade.Use(context.Background(), 1, 40)
	if err != nil {
		t.Fatalf("use returned error: %v", err)
	}
	if updated.Balance != 60 {
		t.Fatalf("expected balance 60, got %d", updated.Balance)
	}

	balance, err := facade.Balance(context.Background(), 1)
	if err != nil {
		t.Fatalf("balance returned error: %v", err)
	}
	if balance.Balance != 60 {
		t.Fatalf("expected balance 60, got %d", balance.Balance)
	}

	if len(histories.Items) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(histories.Items))
	}
}

func TestPointFacadePropagatesDomainErrors(t *testing.T) {
	facade, _, _ := newFacade()

	if _, err := facade.Use(context.Background(), 1, 10); !errors.Is(err, domainErrors.ErrInsufficientPoints) {
		t.Fatalf("expected insufficient points, got %v", err)
	}
	if _, err := facade.Balance(context.Background(), -1); !errors.Is(err, domainErrors.ErrInvalidAccountID) {
		t.Fatalf("expected invalid account id, got %v", err)
	}
}

func TestPointFacadeHistoryIsChronological(t *testing.T) {
	facade, _, _ := newFacade()

	for _, amount := range []int64{10, 20, 30} {
		if _, err := facade.Charge(context.Background(), 2, amount); err != nil {
			t.Fatalf("charge returned error: %v", err)
		}
	}

	history, err := facade.History(context.Background(), 2)
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.Before(history[i-1].Timestamp) {
			t.Fatalf("history out of order at %d", i)
		}
	}
}

func TestPointFacadeAccountsForAudit(t *testing.T) {
	facade, _, _ := newFacade()

	if _, err := facade.Charge(context.Background(), 5, 10); err != nil {
		t.Fatalf("charge returned error: %v", err)
	}
	if _, err := facade.Charge(context.Background(), 6, 10); err != nil {
		t.Fatalf("charge returned error: %v", err)
	}

	ids, err := facade.AccountsForAudit(context.Background(), 10)
	if err != nil {
		t.Fatalf("accounts for audit returned error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(ids))
	}
}
