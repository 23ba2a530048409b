package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ShopCatalog/internal/catalog"
	"ShopCatalog/internal/config"
)

func testConfig(source string) config.Config {
	return config.Config{
		Port:            "0",
		CatalogSource:   source,
		LogLevel:        "info",
		ShutdownTimeout: time.Second,
	}
}

func TestRun_InitialLoadFailureReturnsError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.json"))

	err := run(context.Background(), cfg, zap.New(core))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrDatasetUnavailable)
	assert.Equal(t, 1, logs.FilterMessage("catalog load failed").Len())
}

func TestRun_BadSourceReturnsError(t *testing.T) {
	err := run(context.Background(), testConfig("postgres://%zz"), zap.NewNop())
	assert.ErrorIs(t, err, catalog.ErrDatasetUnavailable)
}

func TestRun_StopsCleanlyOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products":[]}`), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	assert.NoError(t, run(ctx, testConfig(path), zap.NewNop()))
}
