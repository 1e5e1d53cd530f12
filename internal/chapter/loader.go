package chapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"golang.org/x/sync/singleflight"
)

// Loader decodes chapters from a Source and keeps recently used ones in
// memory. Concurrent loads of the same id share one fetch.
type Loader struct {
	src   Source
	cache *ristretto.Cache[string, Chapter]
	ttl   time.Duration
	group singleflight.Group
	log   *slog.Logger
}

// LoaderOptions tune the in-process cache.
type LoaderOptions struct {
	MaxCostBytes int64
	TTL          time.Duration
	Logger       *slog.Logger
}

func NewLoader(src Source, opts LoaderOptions) (*Loader, error) {
	if opts.MaxCostBytes <= 0 {
		opts.MaxCostBytes = 8 << 20
	}
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, Chapter]{
		NumCounters: opts.MaxCostBytes / 100 * 10,
		MaxCost:     opts.MaxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("chapter cache: %w", err)
	}

	return &Loader{
		src:   src,
		cache: cache,
		ttl:   opts.TTL,
		log:   opts.Logger,
	}, nil
}

// Load returns the chapter for id.
func (l *Loader) Load(ctx context.Context, id string) (Chapter, error) {
	if ch, ok := l.cache.Get(id); ok {
		l.log.Debug("chapter cache hit", "chapter", id)
		return ch, nil
	}

	v, err, shared := l.group.Do(id, func() (any, error) {
		data, err := l.src.Fetch(ctx, id)
		if err != nil {
			return Chapter{}, err
		}
		ch, err := Decode(id, data)
		if err != nil {
			return Chapter{}, err
		}
		l.cache.SetWithTTL(id, ch, int64(len(data)), l.ttl)
		return ch, nil
	})
	if err != nil {
		return Chapter{}, fmt.Errorf("load chapter %s: %w", id, err)
	}
	if shared {
		l.log.Debug("chapter fetch shared", "chapter", id)
	}
	return v.(Chapter), nil
}

// List returns the chapter identifiers offered by the source.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	ids, err := l.src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	return ids, nil
}

// Close releases the cache and the source, when the source holds
// resources of its own.
func (l *Loader) Close() error {
	l.cache.Close()
	if c, ok := l.src.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close chapter source: %w", err)
		}
	}
	return nil
}
