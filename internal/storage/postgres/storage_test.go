package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	"github.com/pointware/pointledger/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS balances").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS point_history").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_point_history_account").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("init schema failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaPropagatesError(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS balances").WillReturnError(errors.New("permission denied"))

	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected schema error, got nil")
	}
}

func TestBalanceLookup(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	mock.ExpectQuery("SELECT balance, updated_at FROM balances").
		WithArgs(int64(7)).
		WillReturnRows(pgxmockv3.NewRows([]string{"balance", "updated_at"}).AddRow(int64(150), now))

	got, err := storage.Balances().Lookup(context.Background(), 7)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.AccountID != 7 || got.Balance != 150 || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected balance: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBalanceLookupUnknownAccountReturnsZero(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT balance, updated_at FROM balances").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	got, err := storage.Balances().Lookup(context.Background(), 404)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.AccountID != 404 || got.Balance != 0 {
		t.Fatalf("expected zero balance, got %+v", got)
	}
}

func TestBalanceLookupPropagatesStorageError(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT balance, updated_at FROM balances").
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	if _, err := storage.Balances().Lookup(context.Background(), 1); err == nil {
		t.Fatal("expected storage error, got nil")
	}
}

func TestBalanceUpsert(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	mock.ExpectQuery("INSERT INTO balances").
		WithArgs(int64(7), int64(220)).
		WillReturnRows(pgxmockv3.NewRows([]string{"balance", "updated_at"}).AddRow(int64(220), now))

	got, err := storage.Balances().Upsert(context.Background(), 7, 220)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if got.Balance != 220 || got.AccountID != 7 {
		t.Fatalf("unexpected upsert result: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountIDsWithLimit(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT account_id FROM balances").
		WithArgs(2).
		WillReturnRows(pgxmockv3.NewRows([]string{"account_id"}).AddRow(int64(1)).AddRow(int64(2)))

	ids, err := storage.Balances().AccountIDs(context.Background(), 2)
	if err != nil {
		t.Fatalf("account ids failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestAccountIDsWithoutLimit(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT account_id FROM balances").
		WillReturnRows(pgxmockv3.NewRows([]string{"account_id"}).AddRow(int64(5)))

	ids, err := storage.Balances().AccountIDs(context.Background(), 0)
	if err != nil {
		t.Fatalf("account ids failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != 5 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestHistoryAppendFor(t *testing.T) {
	storage, mock := newMockStorage(t)
	at := time.Now()
	mock.ExpectQuery("INSERT INTO point_history").
		WithArgs(int64(7), "CHARGE", int64(50), at).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(11)))

	tx, err := storage.Histories().AppendFor(context.Background(), 7, 50, model.TransactionCharge, at)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if tx.ID != 11 || tx.Kind != model.TransactionCharge || tx.Amount != 50 {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHistoryListFor(t *testing.T) {
	storage, mock := newMockStorage(t)
	base := time.Now()
	mock.ExpectQuery("SELECT id, account_id, kind, amount, recorded_at FROM point_history").
		WithArgs(int64(7)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "account_id", "kind", "amount", "recorded_at"}).
			AddRow(int64(2), int64(7), "USE", int64(30), base.Add(time.Second)).
			AddRow(int64(1), int64(7), "CHARGE", int64(50), base))

	transactions, err := storage.Histories().ListFor(context.Background(), 7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	if transactions[0].Kind != model.TransactionUse || transactions[1].Kind != model.TransactionCharge {
		t.Fatalf("expected storage order to be preserved as returned: %+v", transactions)
	}
}

func TestHistoryListForPropagatesError(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT id, account_id, kind, amount, recorded_at FROM point_history").
		WithArgs(int64(7)).
		WillReturnError(errors.New("timeout"))

	if _, err := storage.Histories().ListFor(context.Background(), 7); err == nil {
		t.Fatal("expected storage error, got nil")
	}
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectPing()

	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check failed: %v", err)
	}
}

func TestNewRejectsMalformedDSN(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New(context.Background(), "not a dsn ::", logger); err == nil {
		t.Fatal("expected dsn parse error, got nil")
	}
}
