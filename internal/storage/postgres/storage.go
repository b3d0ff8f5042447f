package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pointware/pointledger/internal/domain/model"
	"github.com/pointware/pointledger/internal/domain/repository"
)

// pool is the subset of pgxpool.Pool the storage relies on.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pool
	logger *slog.Logger
}

type balanceRepository struct {
	storage *Storage
}

type historyRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: p, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		p.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Balances returns the balance repository backed by this storage.
func (s *Storage) Balances() repository.BalanceRepository {
	return &balanceRepository{storage: s}
}

// Histories returns the history repository backed by this storage.
func (s *Storage) Histories() repository.HistoryRepository {
	return &historyRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS balances (
            account_id BIGINT PRIMARY KEY,
            balance BIGINT NOT NULL DEFAULT 0,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS point_history (
            id BIGSERIAL PRIMARY KEY,
            account_id BIGINT NOT NULL,
            kind TEXT NOT NULL,
            amount BIGINT NOT NULL,
            recorded_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_point_history_account ON point_history(account_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- BalanceRepository implementation ---

func (r *balanceRepository) Lookup(ctx context.Context, accountID int64) (*model.AccountBalance, error) {
	const query = `SELECT balance, updated_at FROM balances WHERE account_id=$1`
	b := model.AccountBalance{AccountID: accountID}
	err := r.storage.pool.QueryRow(ctx, query, accountID).Scan(&b.Balance, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.AccountBalance{AccountID: accountID}, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *balanceRepository) Upsert(ctx context.Context, accountID int64, balance int64) (*model.AccountBalance, error) {
	const query = `INSERT INTO balances (account_id, balance, updated_at)
                   VALUES ($1, $2, NOW())
                   ON CONFLICT (account_id) DO UPDATE
                   SET balance = EXCLUDED.balance, updated_at = NOW()
                   RETURNING balance, updated_at`
	b := model.AccountBalance{AccountID: accountID}
	if err := r.storage.pool.QueryRow(ctx, query, accountID, balance).Scan(&b.Balance, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *balanceRepository) AccountIDs(ctx context.Context, limit int) ([]int64, error) {
	query := `SELECT account_id FROM balances ORDER BY account_id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// --- HistoryRepository implementation ---

func (r *historyRepository) AppendFor(ctx context.Context, accountID int64, amount int64, kind model.TransactionKind, at time.Time) (*model.Transaction, error) {
	const query = `INSERT INTO point_history (account_id, kind, amount, recorded_at)
                   VALUES ($1, $2, $3, $4) RETURNING id`
	tx := model.Transaction{AccountID: accountID, Kind: kind, Amount: amount, Timestamp: at}
	if err := r.storage.pool.QueryRow(ctx, query, accountID, string(kind), amount, at).Scan(&tx.ID); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *historyRepository) ListFor(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	// No ORDER BY on purpose: the repository contract leaves ordering
	// unspecified and the use case sorts on read.
	const query = `SELECT id, account_id, kind, amount, recorded_at FROM point_history WHERE account_id=$1`
	rows, err := r.storage.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var kind string
		if err := rows.Scan(&tx.ID, &tx.AccountID, &kind, &tx.Amount, &tx.Timestamp); err != nil {
			return nil, err
		}
		tx.Kind = model.TransactionKind(kind)
		result = append(result, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
