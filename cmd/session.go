package cmd

import (
	"fmt"
	"log/slog"

	"github.com/seclab/labstatus/internal/banner"
	"github.com/seclab/labstatus/internal/config"
	"github.com/seclab/labstatus/internal/statusapi"
	"github.com/seclab/labstatus/internal/ui"
	"github.com/seclab/labstatus/internal/webhook"
)

const plainLegend = "any key: toggle  f: fire  c: coffee  |: custom  ctrl+c: quit"

// newSession wires the status client, webhook and banners for the loop.
func newSession(cfg *config.Config, logger *slog.Logger, log ui.LogChecker) (*ui.Session, error) {
	banners, err := banner.New(cfg.BannerFont)
	if err != nil {
		return nil, fmt.Errorf("preparing banners: %w", err)
	}

	legend, err := banner.Legend()
	if err != nil {
		logger.Warn("legend render failed, using plain text", "err", err)
		legend = plainLegend
	}

	opts := []statusapi.Option{
		statusapi.WithCredentials(cfg.APIUser, cfg.APIPass),
		statusapi.WithLogger(logger),
	}
	if cfg.Webhook != "" {
		opts = append(opts, statusapi.WithNotifier(webhook.New(cfg.Webhook, logger)))
	}
	if !cfg.HasCredentials() {
		logger.Warn("API_USER/API_PASS not set, status changes will fail")
	}

	return &ui.Session{
		Client:   statusapi.New(cfg.APIURL, opts...),
		Banners:  banners,
		Log:      log,
		Logger:   logger,
		Interval: cfg.RefreshInterval,
		Legend:   legend,
	}, nil
}
