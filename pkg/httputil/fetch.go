package httputil

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/csese/networkD3/pkg/cache"
	"github.com/csese/networkD3/pkg/errors"
)

// DefaultFetchTTL is how long fetched resources stay fresh in the cache.
const DefaultFetchTTL = 24 * time.Hour

// maxFetchBytes bounds a single fetched resource. Graph data files are
// small; anything larger is almost certainly a mistake.
const maxFetchBytes = 32 << 20

// Fetcher downloads remote graph data with retry and caching.
// The zero value is not usable; construct with [NewFetcher].
type Fetcher struct {
	client     *http.Client
	cache      cache.Cache
	ttl        time.Duration
	logger     *log.Logger
	retryDelay time.Duration
}

// NewFetcher creates a Fetcher backed by the given cache. A nil cache
// disables caching; a nil logger discards logs.
func NewFetcher(c cache.Cache, ttl time.Duration, logger *log.Logger) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	if ttl == 0 {
		ttl = DefaultFetchTTL
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Fetcher{
		client:     &http.Client{Timeout: 30 * time.Second},
		cache:      c,
		ttl:        ttl,
		logger:     logger,
		retryDelay: time.Second,
	}
}

// Fetch retrieves the resource at url, consulting the cache first.
// Transient failures (connection errors, 5xx responses) are retried with
// backoff; client errors fail immediately.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := errors.ValidateURL(url); err != nil {
		return nil, err
	}

	key := cache.FetchKey(url)
	if data, ok, err := f.cache.Get(ctx, key); err == nil && ok {
		f.logger.Debug("cache hit", "url", url)
		return data, nil
	}

	var body []byte
	err := Retry(ctx, 3, f.retryDelay, func() error {
		var ferr error
		body, ferr = f.get(ctx, url)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	if err := f.cache.Set(ctx, key, body, f.ttl); err != nil {
		// A broken cache should not fail the fetch.
		f.logger.Warn("cache write failed", "url", url, "err", err)
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound, "%s returned 404", url)
	case resp.StatusCode >= 500:
		return nil, &RetryableError{Err: errors.New(errors.ErrCodeNetwork, "%s returned %d", url, resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return nil, errors.New(errors.ErrCodeNetwork, "%s returned %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "read %s", url)}
	}
	return body, nil
}
