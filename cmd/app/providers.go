package main

import (
	"fmt"

	"github.com/yanqian/celestial/internal/domain/lunar"
	"github.com/yanqian/celestial/internal/infra/astronomy/ipgeolocation"
	"github.com/yanqian/celestial/internal/infra/config"
	"github.com/yanqian/celestial/pkg/util"
)

func provideLunarConfig(cfg *config.Config) (lunar.Config, error) {
	tz, err := util.LoadLocation(cfg.Lunar.Timezone)
	if err != nil {
		return lunar.Config{}, fmt.Errorf("load lunar timezone: %w", err)
	}
	return lunar.Config{
		Timezone:     tz,
		CalendarDays: cfg.Lunar.CalendarDays,
	}, nil
}

func provideAstronomyClient(cfg *config.Config) *ipgeolocation.Client {
	return ipgeolocation.NewClient(cfg.Astronomy.APIBaseURL, cfg.Astronomy.APIKey, cfg.Astronomy.Timeout)
}
