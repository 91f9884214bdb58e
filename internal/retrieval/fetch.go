// Package retrieval wraps network fetches and data loaders with retries and
// an in-memory TTL cache.
package retrieval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/metrics"
)

const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// ErrRetriesExhausted is returned once every attempt has failed
var ErrRetriesExhausted = errors.New("fetch failed after retries")

// RetryOptions controls FetchWithRetry. The delay is fixed between attempts.
type RetryOptions struct {
	MaxRetries int
	Delay      time.Duration
}

func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries: DefaultMaxRetries,
		Delay:      DefaultRetryDelay,
	}
}

// HTTPDoer is satisfied by *http.Client
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// SleepFunc waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

type Fetcher struct {
	client  HTTPDoer
	logger  *slog.Logger
	metrics metrics.MetricsCollector
	sleep   SleepFunc
}

type FetcherOption func(*Fetcher)

func WithFetchMetrics(m metrics.MetricsCollector) FetcherOption {
	return func(f *Fetcher) {
		f.metrics = m
	}
}

func WithSleep(sleep SleepFunc) FetcherOption {
	return func(f *Fetcher) {
		f.sleep = sleep
	}
}

func NewFetcher(client HTTPDoer, logger *slog.Logger, opts ...FetcherOption) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	f := &Fetcher{
		client:  client,
		logger:  logger,
		metrics: metrics.Noop(),
		sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchWithRetry performs a GET on url, making up to opts.MaxRetries
// sequential attempts. A 2xx response is returned at once and the caller
// must close its body. Transport failures are followed by opts.Delay before
// the next attempt; non-2xx responses are discarded and retried without a
// delay. The fetcher sets no deadline of its own; ctx carries the caller's.
func (f *Fetcher) FetchWithRetry(ctx context.Context, url string, opts RetryOptions) (*http.Response, error) {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}

	var lastErr error
	lastStatus := 0

	for attempt := 1; attempt <= opts.MaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			lastErr = err
			f.metrics.RecordFetchAttempt(metrics.FetchOutcomeTransportError)
			f.logger.Warn("Fetch attempt failed",
				"url", url,
				"attempt", attempt,
				"max_retries", opts.MaxRetries,
				"error", err)

			if attempt < opts.MaxRetries {
				if err := f.sleep(ctx, opts.Delay); err != nil {
					return nil, err
				}
			}
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			f.metrics.RecordFetchAttempt(metrics.FetchOutcomeSuccess)
			return resp, nil
		}

		lastStatus = resp.StatusCode
		f.metrics.RecordFetchAttempt(metrics.FetchOutcomeBadStatus)
		f.logger.Warn("Fetch attempt returned non-success status",
			"url", url,
			"attempt", attempt,
			"status_code", resp.StatusCode)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w (%d attempts): %w", ErrRetriesExhausted, opts.MaxRetries, lastErr)
	}
	return nil, fmt.Errorf("%w (%d attempts): last status %d", ErrRetriesExhausted, opts.MaxRetries, lastStatus)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
