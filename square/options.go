package square

import (
	"crypto/tls"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/rs/zerolog"
)

// Option configures a Client in NewClient.
type Option func(c *Client)

// WithEnvironment selects Sandbox or Production.
func WithEnvironment(env Environment) Option {
	return func(c *Client) {
		c.env = env
	}
}

// WithBaseURL overrides the environment's API root, e.g. for a proxy or a
// test server. A trailing slash is ignored.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sends requests through hc, keeping its transport and TLS
// settings.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTransport replaces the round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithTLSConfig sets the TLS configuration of the default transport.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) {
		c.tlsConfig = cfg
	}
}

// WithLogger routes request and transport logs to l. The client is silent by
// default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger.Wrap(l)
	}
}

// WithSquareVersion pins the Square-Version header.
func WithSquareVersion(version string) Option {
	return func(c *Client) {
		if v := strings.TrimSpace(version); v != "" {
			c.squareVersion = v
		}
	}
}

// WithRetry sets the retry budget and backoff bounds. A count of 0 disables
// retries. A zero wait or maxWait keeps the default bound. maxWait also caps
// a Retry-After delay sent by Square; raise it to wait the full delay.
func WithRetry(count int, wait, maxWait time.Duration) Option {
	return func(c *Client) {
		def := defaultRetryPolicy()
		if count < 0 {
			count = 0
		}
		if wait <= 0 {
			wait = def.wait
		}
		if maxWait <= 0 {
			maxWait = def.maxWait
		}
		if maxWait < wait {
			maxWait = wait
		}
		c.retry = retryPolicy{count: count, wait: wait, maxWait: maxWait}
	}
}

// WithIdempotencyKeyFunc replaces the idempotency key generator.
func WithIdempotencyKeyFunc(fn IdempotencyKeyFunc) Option {
	return func(c *Client) {
		if fn != nil {
			c.newKey = fn
		}
	}
}
