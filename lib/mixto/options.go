package mixto

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Option configures the client beyond connection parameters.
type Option func(*clientConfig)

type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	retry      RetryConfig
	configFile string
	logger     *log.Logger
}

func defaultClientConfig() clientConfig {
	return clientConfig{
		timeout:    30 * time.Second,
		retry:      defaultRetryConfig(),
		configFile: DefaultConfigPath(),
	}
}

// WithTimeout sets the HTTP request timeout (default 30s).
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.timeout = d }
}

// WithRetry overrides the retry configuration.
func WithRetry(cfg RetryConfig) Option {
	return func(c *clientConfig) { c.retry = cfg }
}

// WithHTTPClient provides a custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = hc }
}

// WithConfigFile overrides the config file used for resolution
// (default ~/.mixto.json).
func WithConfigFile(path string) Option {
	return func(c *clientConfig) { c.configFile = path }
}

// WithLogger sets a logger for request-level debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}
