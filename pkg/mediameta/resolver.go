package mediameta

import (
	"context"
	"errors"
	"net/url"
	"path"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgLog "listenote/pkg/log"
)

// DefaultTitle is used when a locator yields no usable display title.
const DefaultTitle = "Untitled"

// Metadata is what import needs to know about an audio file.
type Metadata struct {
	Title      string
	DurationMs int64 // 0 when unknown
}

// Prober extracts metadata from a locator. Implementations may hit the
// filesystem or an external tool; failures are recovered by the Resolver.
type Prober interface {
	Probe(ctx context.Context, locator string) (Metadata, error)
}

// Resolver resolves audio metadata with an LRU cache in front of the prober.
// Resolution never fails: a probe error yields DefaultTitle and duration 0.
type Resolver struct {
	prober  Prober
	cache   *lru.Cache[string, Metadata]
	timeout time.Duration
	l       pkgLog.Logger
}

// NewResolver creates a Resolver caching up to cacheSize probed locators.
func NewResolver(prober Prober, cacheSize int, timeout time.Duration, l pkgLog.Logger) (*Resolver, error) {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New[string, Metadata](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		prober:  prober,
		cache:   cache,
		timeout: timeout,
		l:       l,
	}, nil
}

// Resolve returns metadata for a locator, probing at most once per cached
// entry. Probe failures are logged and recovered with defaults, never
// surfaced to the caller.
func (r *Resolver) Resolve(ctx context.Context, locator string) Metadata {
	if meta, ok := r.cache.Get(locator); ok {
		return meta
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	meta, err := r.prober.Probe(ctx, locator)
	if err != nil {
		r.l.Debugf(ctx, "mediameta: probe %q failed, using defaults: %v", locator, err)
		return Metadata{Title: DefaultTitle}
	}
	if meta.Title == "" {
		meta.Title = DefaultTitle
	}
	if meta.DurationMs < 0 {
		meta.DurationMs = 0
	}

	r.cache.Add(locator, meta)
	return meta
}

// PathProber derives a display title from the locator's path basename. It
// cannot decode audio, so duration stays unknown.
type PathProber struct{}

var errNoTitle = errors.New("locator has no usable basename")

// Probe implements Prober.
func (PathProber) Probe(ctx context.Context, locator string) (Metadata, error) {
	raw := locator
	if u, err := url.Parse(locator); err == nil && u.Path != "" {
		raw = u.Path
	}

	base := path.Base(raw)
	if base == "." || base == "/" || base == "" {
		return Metadata{}, errNoTitle
	}
	if unescaped, err := url.PathUnescape(base); err == nil {
		base = unescaped
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" {
		return Metadata{}, errNoTitle
	}

	return Metadata{Title: base}, nil
}
