package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/yanqian/celestial/internal/infra/config"
)

// App runs the celestial API: moon phase endpoints plus the astronomy lookup and its live feed.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server}
}

// Run serves until ctx is cancelled, then drains open requests within http.shutdownTimeout.
// Live astronomy feeds are hijacked connections and are not tracked by Shutdown.
func (a *App) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("celestial api listening",
			"address", a.server.Addr,
			"lunar_timezone", a.cfg.Lunar.Timezone,
			"live_refresh", a.cfg.Astronomy.LiveRefreshInterval.String(),
		)
		serveErr <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("draining http server", "timeout", a.cfg.HTTP.ShutdownTimeout.String())
	drainCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}
