package mixto

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func fastRetry(max int) RetryConfig {
	return RetryConfig{
		MaxRetries:  max,
		BackoffBase: time.Millisecond,
		BackoffMax:  10 * time.Millisecond,
	}
}

func TestRetry429ThenSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(429)
			w.Write([]byte(`{"message":"rate limited"}`))
			return
		}
		w.WriteHeader(200)
		w.Write([]byte(`{"username":"hacker"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, WithRetry(fastRetry(3)))
	info, err := c.UserGet(context.Background())
	if err != nil {
		t.Fatalf("expected success after retries, got: %v", err)
	}
	if info.Username != "hacker" {
		t.Errorf("unexpected username: %s", info.Username)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetry503ThenSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(503)
			w.Write([]byte(`{"message":"unavailable"}`))
			return
		}
		w.WriteHeader(200)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, WithRetry(fastRetry(2)))
	if _, err := c.WorkspaceList(context.Background()); err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestNoRetryOn401(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(401)
		w.Write([]byte(`{"message":"unauthorized"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, WithRetry(fastRetry(3)))
	if _, err := c.UserGet(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("expected 1 call (no retry on 401), got %d", calls)
	}
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
		w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, WithRetry(RetryConfig{
		MaxRetries:  5,
		BackoffBase: time.Second,
		BackoffMax:  5 * time.Second,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := c.UserGet(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestShouldRetry(t *testing.T) {
	if shouldRetry(nil) {
		t.Error("nil should not be retryable")
	}
	if shouldRetry(mapHTTPError(400, "bad", nil)) {
		t.Error("400 should not be retryable")
	}
	if shouldRetry(mapHTTPError(401, "unauth", nil)) {
		t.Error("401 should not be retryable")
	}
	if shouldRetry(mapHTTPError(404, "missing", nil)) {
		t.Error("404 should not be retryable")
	}
	if !shouldRetry(mapHTTPError(429, "rl", nil)) {
		t.Error("429 should be retryable")
	}
	if !shouldRetry(mapHTTPError(503, "down", nil)) {
		t.Error("503 should be retryable")
	}
	connErr := &ConnectionError{APIError: newAPIError("timeout", 0)}
	if !shouldRetry(connErr) {
		t.Error("ConnectionError should be retryable")
	}
}

func TestBackoffDelayBounds(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries:  3,
		BackoffBase: 100 * time.Millisecond,
		BackoffMax:  time.Second,
	}
	for attempt := 0; attempt < 10; attempt++ {
		d := backoffDelay(cfg, attempt)
		if d < 0 || d > cfg.BackoffMax {
			t.Errorf("attempt %d: delay %v out of bounds", attempt, d)
		}
	}
}
