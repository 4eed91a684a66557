package mixto

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every MIXTO_* variable so resolution tests only see the
// sources they set up themselves.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MIXTO_HOST", "MIXTO_API_KEY", "MIXTO_WORKSPACE_ID",
		"MIXTO_WORKSPACE_NAME", "MIXTO_INSTANCE", "MIXTO_CONFIG",
	} {
		t.Setenv(k, "")
	}
}

// missingConfigFile returns a path that is guaranteed not to exist.
func missingConfigFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "mixto.json")
}

func newTestClient(t *testing.T, host string, opts ...Option) *Client {
	t.Helper()
	clearEnv(t)
	opts = append([]Option{WithConfigFile(missingConfigFile(t))}, opts...)
	c, err := New(Config{Host: host, APIKey: "test-key"}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewExplicit(t *testing.T) {
	clearEnv(t)
	c, err := New(
		Config{Host: "https://mixto.example", APIKey: "some-key"},
		WithConfigFile(missingConfigFile(t)),
	)
	if err != nil {
		t.Fatal(err)
	}
	if c.conf.Host != "https://mixto.example" {
		t.Errorf("unexpected host: %s", c.conf.Host)
	}
	if c.conf.APIKey != "some-key" {
		t.Errorf("unexpected api key: %s", c.conf.APIKey)
	}
	if c.cfg.timeout != 30*time.Second {
		t.Errorf("unexpected timeout: %v", c.cfg.timeout)
	}
}

func TestNewMissingConfig(t *testing.T) {
	clearEnv(t)
	_, err := New(Config{}, WithConfigFile(missingConfigFile(t)))
	if err == nil {
		t.Fatal("expected error for unresolved config")
	}
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
	if len(confErr.Missing) != 2 {
		t.Errorf("expected host and api key missing, got %v", confErr.Missing)
	}
}

func TestNewFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MIXTO_HOST", "https://env.mixto.example")
	t.Setenv("MIXTO_API_KEY", "env-key")

	c, err := New(Config{}, WithConfigFile(missingConfigFile(t)))
	if err != nil {
		t.Fatal(err)
	}
	if c.conf.Host != "https://env.mixto.example" {
		t.Errorf("unexpected host: %s", c.conf.Host)
	}
	if c.conf.APIKey != "env-key" {
		t.Errorf("unexpected api key: %s", c.conf.APIKey)
	}
}

func TestExplicitWinsOverEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MIXTO_HOST", "https://env.mixto.example")
	t.Setenv("MIXTO_API_KEY", "env-key")

	c, err := New(
		Config{Host: "https://explicit.mixto.example", APIKey: "explicit-key"},
		WithConfigFile(missingConfigFile(t)),
	)
	if err != nil {
		t.Fatal(err)
	}
	if c.conf.Host != "https://explicit.mixto.example" {
		t.Errorf("explicit host should win, got %s", c.conf.Host)
	}
	if c.conf.APIKey != "explicit-key" {
		t.Errorf("explicit api key should win, got %s", c.conf.APIKey)
	}
}

func TestNewTrailingSlash(t *testing.T) {
	c := newTestClient(t, "https://mixto.example///")
	if c.conf.Host != "https://mixto.example" {
		t.Errorf("trailing slash not stripped: %s", c.conf.Host)
	}
}

func TestAPIKeyHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("x-api-key"); key != "test-key" {
			t.Errorf("expected x-api-key=test-key, got %s", key)
		}
		json.NewEncoder(w).Encode(UserInfo{Username: "hacker"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	info, err := c.UserGet(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if info.Username != "hacker" {
		t.Errorf("unexpected username: %s", info.Username)
	}
}

func TestErrorBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"message":"entry not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.EntryCommits(context.Background(), "nope")
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nfErr.Message != "entry not found" {
		t.Errorf("unexpected message: %s", nfErr.Message)
	}
}

func TestConnectionErrorOnRefused(t *testing.T) {
	// Grab a port that nothing listens on.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, WithRetry(RetryConfig{MaxRetries: 0}))
	_, err := c.UserGet(context.Background())
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected *ConnectionError, got %T", err)
	}
}
