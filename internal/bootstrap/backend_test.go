package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/finsight/backend/internal/config"
	"github.com/vanshika/finsight/backend/internal/graph"
	"github.com/vanshika/finsight/backend/internal/store"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestOpenBackend_Memory(t *testing.T) {
	backend, err := OpenBackend(context.Background(), discard, config.Config{Store: config.StoreConfig{Mode: "memory"}})
	require.NoError(t, err)
	defer backend.Close(context.Background())

	assert.IsType(t, &store.Memory{}, backend)
	assert.NoError(t, backend.Ping(context.Background()))
}

func TestOpenBackend_GraphRequiresURI(t *testing.T) {
	_, err := OpenBackend(context.Background(), discard, config.Config{Store: config.StoreConfig{Mode: "graph"}})
	assert.ErrorIs(t, err, graph.ErrMissingURI)
}
