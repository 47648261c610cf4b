package httpmw

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultCacheTTL is how long a memoized response stays servable.
	DefaultCacheTTL = time.Minute
	// DefaultCacheSize bounds the number of memoized responses.
	DefaultCacheSize = 512

	maxCachedBodySize = 4 << 20
)

// CacheDoer memoizes successful GET responses by full URL (including the
// query string) for a fixed TTL. Concurrent requests for the same key within
// the window share one underlying call: the first caller triggers the fetch
// and late joiners receive the same eventual value. An expired entry is
// evicted by the LRU and the next request fetches fresh.
type CacheDoer struct {
	next    Doer
	logger  *logrus.Logger
	entries *expirable.LRU[string, *cachedResponse]
	group   singleflight.Group
}

func NewCacheDoer(logger *logrus.Logger, ttl time.Duration, size int, next Doer) *CacheDoer {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CacheDoer{
		next:    next,
		logger:  logger,
		entries: expirable.NewLRU[string, *cachedResponse](size, nil, ttl),
	}
}

func (d *CacheDoer) Do(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return d.next.Do(req)
	}

	key := req.URL.String()
	if cached, ok := d.entries.Get(key); ok {
		cacheHits.Inc()
		return cached.response(req), nil
	}

	v, err, shared := d.group.Do(key, func() (any, error) {
		// a concurrent caller may have populated the entry while we waited
		if cached, ok := d.entries.Get(key); ok {
			return cached, nil
		}

		// the shared fetch must outlive the first caller: a late joiner still
		// deserves the response even if the caller that started it goes away
		fetchReq := req.Clone(context.WithoutCancel(req.Context()))
		resp, err := d.next.Do(fetchReq)
		if err != nil {
			return nil, err
		}

		cached, err := newCachedResponse(resp)
		if err != nil {
			return nil, fmt.Errorf("read response body for cache: %w", err)
		}
		if cached.status >= 200 && cached.status < 300 {
			d.entries.Add(key, cached)
		}
		return cached, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		coalescedRequests.Inc()
	}
	cacheMisses.Inc()

	return v.(*cachedResponse).response(req), nil
}

// Evict drops the entry for the given URL, if present.
func (d *CacheDoer) Evict(url string) {
	d.entries.Remove(url)
}

// cachedResponse is an immutable, fully buffered response; every reader gets
// a fresh body.
type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

func newCachedResponse(resp *http.Response) (*cachedResponse, error) {
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCachedBodySize))
	if err != nil {
		return nil, err
	}

	return &cachedResponse{
		status: resp.StatusCode,
		header: resp.Header.Clone(),
		body:   body,
	}, nil
}

func (c *cachedResponse) response(req *http.Request) *http.Response {
	return &http.Response{
		StatusCode:    c.status,
		Status:        http.StatusText(c.status),
		Header:        c.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(c.body)),
		ContentLength: int64(len(c.body)),
		Request:       req,
	}
}
