package main

import (
	"log/slog"

	"github.com/soleret/hamming/internal/config"
	"github.com/soleret/hamming/pkg/adapters/memory"
	redisAdapter "github.com/soleret/hamming/pkg/adapters/redis"
	"github.com/soleret/hamming/pkg/ports"
)

// newStore selects the fingerprint store backend. The returned func
// releases the backend when the command is done with it.
func newStore(cfg config.Redis, logger *slog.Logger) (ports.Store, func()) {
	if cfg.Addr == "" {
		logger.Info("Using in-memory fingerprint store")
		return memory.NewStore(), func() {}
	}

	var opts []redisAdapter.Option
	if cfg.Prefix != "" {
		opts = append(opts, redisAdapter.WithPrefix(cfg.Prefix))
	}

	store := redisAdapter.New(cfg.Addr, cfg.Password, cfg.DB, opts...)
	logger.Info("Using Redis fingerprint store", "addr", cfg.Addr)
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close Redis store", "error", err)
		}
	}
}
