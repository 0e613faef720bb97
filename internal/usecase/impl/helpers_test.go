package impl

import (
	"io"
	"log/slog"
	"time"

	"offerfeed/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			APIKey:        "service-key",
			RequireAPIKey: true,
		},
		Discovery: &config.DiscoveryConfig{
			PageSize:         20,
			MaxPageSize:      100,
			DefaultFeedLimit: 20,
			SubscribedLimit:  10,
			AllCategories:    "Todas",
		},
	}
}

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}
