//go:build wireinject
// +build wireinject

package app

import (
	"jobboard/internal/config"

	"github.com/google/wire"
)

// InitializeContainer assembles the runtime dependencies. The returned cleanup
// releases them in reverse order.
func InitializeContainer(cfg config.Config) (*Container, func(), error) {
	wire.Build(
		// Infrastructure
		provideLogger,
		provideDatabase,
		provideCache,
		provideDirectory,

		// Storage
		provideJobRepository,

		// Services
		provideEnricher,
		provideJobUsecase,
		provideTokenService,

		newContainer,
	)

	return nil, nil, nil
}
