package main

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/groupcache"
)

var (
	renderCache         *groupcache.Group
	renderCacheDuration time.Duration
)

// ctxKey is the type used to pass the fill function to a cache getter.
type ctxKey string

// initRenderCache initializes the rendered-page cache with the given size
// and expiry.
func initRenderCache(cacheBytes int64, cacheDuration time.Duration) {
	renderCacheDuration = cacheDuration
	renderCache = groupcache.NewGroup("renderPage", cacheBytes, groupcache.GetterFunc(
		func(ctx context.Context, key string, dest groupcache.Sink) error {
			fill, ok := ctx.Value(ctxKey("fill")).(func() ([]byte, error))
			if !ok {
				return fmt.Errorf("renderPage group: no fill function for %q", key)
			}
			b, err := fill()
			if err != nil {
				return fmt.Errorf("renderPage group: %w", err)
			}
			return dest.SetBytes(b)
		}))
}

// cachedRender returns the rendered bytes for the given path and template,
// calling fill on a cache miss. Keys are quantized by time so entries
// expire around renderCacheDuration.
func cachedRender(path, templateName string, fill func() ([]byte, error)) ([]byte, error) {
	var (
		buf groupcache.ByteView
		q   = make(url.Values, 3)
	)
	q.Set("path", path)
	q.Set("template", templateName)
	q.Set("t", strconv.FormatInt(quantize(time.Now(), renderCacheDuration, path), 10))
	ctx := context.WithValue(context.Background(), ctxKey("fill"), fill)
	err := renderCache.Get(ctx, q.Encode(), groupcache.ByteViewSink(&buf))
	if err != nil {
		return nil, fmt.Errorf("cachedRender: %w", err)
	}
	b := make([]byte, buf.Len())
	if _, err := io.ReadFull(buf.Reader(), b); err != nil {
		return nil, fmt.Errorf("cachedRender: %w", err)
	}
	return b, nil
}

// quantize buckets t into intervals of d, offset per key so that cache
// entries do not all expire at the same moment. A zero duration disables
// expiration.
func quantize(t time.Time, d time.Duration, key string) int64 {
	if d == 0 {
		return 0
	}
	h := fnv.New32a()
	io.WriteString(h, key)
	offset := int64(h.Sum32()) % int64(d)
	return (t.UnixNano() + offset) / int64(d)
}
