package retrieval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func okResponse(body string) *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}
}

type sleepRecorder struct {
	delays []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}

func TestFetchWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	client := doerFunc(func(req *http.Request) (*http.Response, error) {
		attempts++
		if attempts <= 2 {
			return nil, fmt.Errorf("connection reset (attempt %d)", attempts)
		}
		return okResponse("payload"), nil
	})
	sleeps := &sleepRecorder{}
	f := NewFetcher(client, testLogger(), WithSleep(sleeps.sleep))

	resp, err := f.FetchWithRetry(context.Background(), "http://example.test/data", RetryOptions{MaxRetries: 3, Delay: 10 * time.Millisecond})
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "payload", string(body))
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, sleeps.delays)
}

func TestFetchWithRetry_AlwaysFailing(t *testing.T) {
	attempts := 0
	client := doerFunc(func(req *http.Request) (*http.Response, error) {
		attempts++
		return nil, fmt.Errorf("dial failure %d", attempts)
	})
	sleeps := &sleepRecorder{}
	f := NewFetcher(client, testLogger(), WithSleep(sleeps.sleep))

	resp, err := f.FetchWithRetry(context.Background(), "http://example.test/data", RetryOptions{MaxRetries: 3, Delay: 10 * time.Millisecond})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetriesExhausted))
	assert.Contains(t, err.Error(), "dial failure 3")
	assert.Equal(t, 3, attempts)
	assert.Len(t, sleeps.delays, 2)
}

func TestFetchWithRetry_RealDelay(t *testing.T) {
	var attempts int32
	client := doerFunc(func(req *http.Request) (*http.Response, error) {
		if atomic.AddInt32(&attempts, 1) <= 2 {
			return nil, errors.New("unreachable")
		}
		return okResponse(""), nil
	})
	f := NewFetcher(client, testLogger())

	start := time.Now()
	resp, err := f.FetchWithRetry(context.Background(), "http://example.test", RetryOptions{MaxRetries: 3, Delay: 10 * time.Millisecond})
	require.NoError(t, err)
	resp.Body.Close()

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFetchWithRetry_NonSuccessStatus(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	sleeps := &sleepRecorder{}
	f := NewFetcher(server.Client(), testLogger(), WithSleep(sleeps.sleep))

	_, err := f.FetchWithRetry(context.Background(), server.URL, RetryOptions{MaxRetries: 3, Delay: time.Second})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetriesExhausted))
	assert.Contains(t, err.Error(), "last status 503")
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Empty(t, sleeps.delays)
}

func TestFetchWithRetry_RecoversFromBadStatus(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("fresh"))
	}))
	defer server.Close()

	f := NewFetcher(server.Client(), testLogger())

	resp, err := f.FetchWithRetry(context.Background(), server.URL, DefaultRetryOptions())
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "fresh", string(body))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestFetchWithRetry_ContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := doerFunc(func(req *http.Request) (*http.Response, error) {
		cancel()
		return nil, errors.New("timeout")
	})
	f := NewFetcher(client, testLogger())

	_, err := f.FetchWithRetry(ctx, "http://example.test", RetryOptions{MaxRetries: 3, Delay: time.Hour})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchWithRetry_Defaults(t *testing.T) {
	attempts := 0
	client := doerFunc(func(req *http.Request) (*http.Response, error) {
		attempts++
		return nil, errors.New("down")
	})
	f := NewFetcher(client, testLogger(), WithSleep(func(context.Context, time.Duration) error { return nil }))

	_, err := f.FetchWithRetry(context.Background(), "http://example.test", RetryOptions{})

	assert.Error(t, err)
	assert.Equal(t, DefaultMaxRetries, attempts)
}
