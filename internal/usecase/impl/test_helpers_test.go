package impl

import (
	"io"
	"log/slog"

	"pawmart/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(lowStockThreshold int) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
	}
	cfg.Inventory.LowStockThreshold = lowStockThreshold

	return cfg
}
