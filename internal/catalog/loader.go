package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Loader reads a fresh Snapshot from a dataset source. Implementations must
// wrap failures in ErrDatasetUnavailable or ErrDatasetMalformed.
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// NewLoader picks a Loader for source: postgres:// and postgresql:// URLs
// read from PostgreSQL, anything else is treated as a JSON file path.
func NewLoader(ctx context.Context, source string) (Loader, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", ErrDatasetUnavailable)
	}

	if isPostgresURL(source) {
		return NewPostgresLoader(ctx, source)
	}
	return FileLoader{Path: source}, nil
}

// Load reads a Snapshot from source without publishing it anywhere.
func Load(ctx context.Context, source string) (*Snapshot, error) {
	l, err := NewLoader(ctx, source)
	if err != nil {
		return nil, err
	}
	if c, ok := l.(interface{ Close() error }); ok {
		defer func() { _ = c.Close() }()
	}
	return l.Load(ctx)
}

type FileLoader struct {
	Path string
}

func (l FileLoader) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}
	defer f.Close()

	products, err := DecodeDataset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path, err)
	}
	return NewSnapshot("file:"+l.Path, products)
}

func isPostgresURL(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}
