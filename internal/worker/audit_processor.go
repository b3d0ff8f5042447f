package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pointware/pointledger/internal/domain/model"
)

// PointFacade exposes the subset of application functionality required by the worker.
type PointFacade interface {
	AccountsForAudit(ctx context.Context, limit int) ([]int64, error)
	Balance(ctx context.Context, accountID int64) (*model.AccountBalance, error)
	History(ctx context.Context, accountID int64) ([]model.Transaction, error)
}

// AuditProcessor periodically replays account histories and reports balances
// that diverge from their history walk. A diverging account is the footprint
// a failed history append leaves behind, so surfacing it lets operators
// reconcile instead of losing the gap silently.
type AuditProcessor struct {
	facade       PointFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan int64
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewAuditProcessor constructs audit worker pool.
func NewAuditProcessor(facade PointFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *AuditProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &AuditProcessor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan int64, batchSize*workers),
	}
}

// Start launches background processing.
func (p *AuditProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *AuditProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *AuditProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *AuditProcessor) fetchAndDispatch(ctx context.Context) {
	accounts, err := p.facade.AccountsForAudit(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch accounts for audit failed", slog.String("error", err.Error()))
		return
	}
	for _, accountID := range accounts {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- accountID:
		}
	}
}

func (p *AuditProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case accountID, ok := <-p.jobs:
			if !ok {
				return
			}
			p.auditAccount(ctx, accountID)
		}
	}
}

func (p *AuditProcessor) auditAccount(ctx context.Context, accountID int64) {
	balance, err := p.facade.Balance(ctx, accountID)
	if err != nil {
		p.logger.Error("audit balance read failed", slog.Int64("account", accountID), slog.String("error", err.Error()))
		return
	}
	history, err := p.facade.History(ctx, accountID)
	if err != nil {
		p.logger.Error("audit history read failed", slog.Int64("account", accountID), slog.String("error", err.Error()))
		return
	}

	var walk int64
	for _, tx := range history {
		switch tx.Kind {
		case model.TransactionCharge:
			walk += tx.Amount
		case model.TransactionUse:
			walk -= tx.Amount
		}
		if walk < 0 {
			p.logger.Error("history walk went negative",
				slog.Int64("account", accountID),
				slog.Int64("transaction", tx.ID),
			)
			return
		}
	}

	// Balance and history are read without the account lock, so a mutation
	// landing between the two reads can produce a transient mismatch. A
	// divergence that persists across passes is the real signal.
	if walk != balance.Balance {
		p.logger.Warn("balance diverges from history walk",
			slog.Int64("account", accountID),
			slog.Int64("balance", balance.Balance),
			slog.Int64("walk", walk),
		)
	}
}
