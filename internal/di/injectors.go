//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"ftd/internal"
	"ftd/internal/controllers"
	"ftd/internal/providers"
	"ftd/internal/services"
	"ftd/internal/storage"
	"ftd/internal/structures"
	"ftd/internal/tracker"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewZstdCompressor,
		storage.NewFileStore,

		services.NewLedgerService,
		services.NewWorkoutService,
		services.NewRewardNotifier,
		services.NewRewardService,

		tracker.NewSession,
		tracker.NewScheduler,

		controllers.NewTrackingController,
		controllers.NewWorkoutController,
		controllers.NewRewardController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
