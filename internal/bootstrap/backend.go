// Package bootstrap opens the configured store backend for the binaries.
package bootstrap

import (
	"context"
	"log/slog"

	"github.com/vanshika/finsight/backend/internal/config"
	"github.com/vanshika/finsight/backend/internal/graph"
	"github.com/vanshika/finsight/backend/internal/store"
)

// OpenBackend connects to the backend selected by STORE_MODE. The caller
// owns the returned backend and must Close it.
func OpenBackend(ctx context.Context, logger *slog.Logger, cfg config.Config) (store.Backend, error) {
	switch cfg.StoreMode() {
	case store.ModeGraph:
		if cfg.Graph.URI == "" {
			return nil, graph.ErrMissingURI
		}
		client, err := graph.NewNeo4jClient(ctx, graph.Options{
			URI:            cfg.Graph.URI,
			Database:       cfg.Graph.Database,
			Username:       cfg.Graph.Username,
			Password:       cfg.Graph.Password,
			MaxConnections: cfg.Graph.MaxConnections,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
		return store.NewGraph(client), nil
	case store.ModeKV:
		kv, err := store.NewRedisKeyValue(ctx, store.RedisOptions{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("connected to redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
		return store.NewKV(kv), nil
	default:
		logger.Info("using in-memory store, data is lost on restart")
		return store.NewMemory(), nil
	}
}
