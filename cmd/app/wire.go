//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/celestial/internal/bootstrap"
	"github.com/yanqian/celestial/internal/domain/astronomy"
	"github.com/yanqian/celestial/internal/domain/lunar"
	"github.com/yanqian/celestial/internal/infra/astronomy/ipgeolocation"
	"github.com/yanqian/celestial/internal/infra/config"
	httpiface "github.com/yanqian/celestial/internal/interface/http"
	"github.com/yanqian/celestial/pkg/logger"
)

var lunarSet = wire.NewSet(
	config.Load,
	logger.New,
	provideLunarConfig,
	lunar.NewService,
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		lunarSet,
		provideAstronomyClient,
		astronomy.NewService,
		wire.Bind(new(astronomy.Client), new(*ipgeolocation.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

func initializeLunarService() (lunar.Service, error) {
	wire.Build(lunarSet)
	return nil, nil
}
