package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/pointware/pointledger/internal/config"
	"github.com/pointware/pointledger/internal/domain/repository"
	"github.com/pointware/pointledger/internal/storage/memory"
	"github.com/pointware/pointledger/internal/storage/postgres"
)

// Module wires the repository factory and its backing storage. PostgreSQL
// is used when a database URI is configured, in-memory storage otherwise.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.BalanceRepository { return f.Balances() },
		func(f repository.Factory) repository.HistoryRepository { return f.Histories() },
	),
)

type factoryParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("no database configured, using in-memory storage")
		return memory.New(), nil
	}

	st, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			st.Close()
			return nil
		},
	})
	return st, nil
}
