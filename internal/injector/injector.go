//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
)

func InitializeUniverse(cfg *config.Config, logger *zap.Logger) *app.Universe {
	wire.Build(app.ProviderSet)
	return nil
}
