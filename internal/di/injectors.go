//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"fitledger/internal"
	"fitledger/internal/controllers"
	"fitledger/internal/ledger"
	"fitledger/internal/models"
	"fitledger/internal/providers"
	"fitledger/internal/services"
	"fitledger/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		models.NewAccountStore,
		models.NewTokenLedger,
		services.NewRewardService,

		ledger.NewZstdCompressor,
		ledger.NewFileManager,
		ledger.NewScheduler,

		controllers.NewApiController,
		controllers.NewAdminController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
