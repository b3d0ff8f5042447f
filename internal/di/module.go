package di

import (
	"go.uber.org/fx"

	"github.com/pointware/pointledger/internal/app"
	"github.com/pointware/pointledger/internal/config"
	"github.com/pointware/pointledger/internal/locker"
	"github.com/pointware/pointledger/internal/logger"
	"github.com/pointware/pointledger/internal/server/http/router"
	"github.com/pointware/pointledger/internal/storage"
	"github.com/pointware/pointledger/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		locker.Module,
		storage.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
