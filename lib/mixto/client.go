package mixto

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client talks to a Mixto server. It is immutable after construction and
// safe for concurrent use.
type Client struct {
	conf Config
	cfg  clientConfig
}

// New instantiates the client. Empty Config fields are resolved from the
// environment (MIXTO_HOST, MIXTO_API_KEY, ...) and then from the config
// file (~/.mixto.json by default). Returns *ConfigurationError when host
// or API key cannot be resolved.
func New(conf Config, opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()
	for _, o := range opts {
		o(&cfg)
	}

	resolved, err := resolve(conf, cfg.configFile)
	if err != nil {
		return nil, err
	}
	resolved.Host = strings.TrimRight(resolved.Host, "/")

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: cfg.timeout}
	}
	return &Client{conf: resolved, cfg: cfg}, nil
}

// Config returns the resolved configuration, API key included.
func (c *Client) Config() Config { return c.conf }

// Host returns the resolved base URL with trailing slashes stripped.
func (c *Client) Host() string { return c.conf.Host }

func (c *Client) makeURL(path string) string {
	return c.conf.Host + path
}

// do performs a JSON request against the API with retry on transient
// failures. A nil result discards the response body.
func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("mixto: marshal request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			var delay time.Duration
			if rlErr, ok := lastErr.(*RateLimitError); ok && rlErr.RetryAfter != nil {
				delay = time.Duration(*rlErr.RetryAfter * float64(time.Second))
			} else {
				delay = backoffDelay(c.cfg.retry, attempt-1)
			}
			select {
			case <-ctx.Done():
				return &ConnectionError{
					APIError: newAPIError(ctx.Err().Error(), 0),
					Cause:    ctx.Err(),
				}
			case <-time.After(delay):
			}
		}

		var reqBody io.Reader
		if data != nil {
			reqBody = bytes.NewReader(data)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.makeURL(path), reqBody)
		if err != nil {
			return fmt.Errorf("mixto: create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if data != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		_, err = c.send(req, result)
		if err == nil {
			return nil
		}
		if !shouldRetry(err) {
			return err
		}
		lastErr = err
		if ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}

// send executes a single prepared request, decoding a 2xx response into
// result and mapping everything else to a typed error. The x-api-key
// header is attached here so every code path authenticates the same way.
func (c *Client) send(req *http.Request, result any) ([]byte, error) {
	req.Header.Set("x-api-key", c.conf.APIKey)

	if c.cfg.logger != nil {
		c.cfg.logger.Debugf("%s %s", req.Method, req.URL)
	}

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{
			APIError: newAPIError(fmt.Sprintf("request failed: %v", err), 0),
			Cause:    err,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{
			APIError: newAPIError(fmt.Sprintf("read response: %v", err), 0),
			Cause:    err,
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return respBody, fmt.Errorf("mixto: unmarshal response: %w", err)
			}
		}
		return respBody, nil
	}

	message := fmt.Sprintf("HTTP %d", resp.StatusCode)
	var errResp struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
		message = errResp.Message
	} else if t := strings.TrimSpace(string(respBody)); t != "" && len(t) < 512 {
		message = t
	}

	var retryAfter *float64
	if resp.StatusCode == 429 {
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if v, err := strconv.ParseFloat(ra, 64); err == nil {
				retryAfter = &v
			}
		}
	}
	return respBody, mapHTTPError(resp.StatusCode, message, retryAfter)
}

// download performs a GET and returns the raw body. The caller must close
// it. Used for file and backup retrieval where the body is not JSON.
func (c *Client) download(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.makeURL(path), nil)
	if err != nil {
		return nil, fmt.Errorf("mixto: create request: %w", err)
	}
	req.Header.Set("x-api-key", c.conf.APIKey)

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{
			APIError: newAPIError(fmt.Sprintf("request failed: %v", err), 0),
			Cause:    err,
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, mapHTTPError(resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}
	return resp.Body, nil
}
