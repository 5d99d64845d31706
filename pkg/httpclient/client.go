// Package httpclient implements the transport layer: a rate-limited GET
// client that hands back the raw status code and body for the caller to
// classify. Non-2xx responses are never turned into errors here.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/avast/retry-go"
	"github.com/veiloq/coinmarket/pkg/logging"
	"github.com/veiloq/coinmarket/pkg/ratelimit"
)

// Response carries the verbatim outcome of a fetch. StatusCode and Body are
// returned as received so that classification stays with the caller.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport fetches the raw bytes behind a URL. Implementations must return
// non-2xx statuses as a Response, not an error; transport-level failures
// (DNS, timeout, cancelled context) are the only error cases.
type Transport interface {
	Fetch(ctx context.Context, url string) (*Response, error)
}

// Config holds configuration for the HTTP client.
type Config struct {
	// Timeout bounds each request end to end.
	Timeout   time.Duration
	RateLimit ratelimit.Rate

	// MaxAttempts is the total number of tries per fetch. The default of 1
	// means no retries; callers that want retry-on-5xx opt in explicitly.
	MaxAttempts uint
	RetryDelay  time.Duration

	// Debug enables request/response dumps on the logger's debug channel.
	Debug bool

	// MaxBodyLogSize caps how much of a dumped body is logged.
	MaxBodyLogSize int

	Logger logging.Logger
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *Config {
	return &Config{
		Timeout: 20 * time.Second,
		RateLimit: ratelimit.Rate{
			Limit:    10,
			Interval: time.Second,
		},
		MaxAttempts:    1,
		RetryDelay:     time.Second,
		MaxBodyLogSize: 4096,
		Logger:         logging.NewNop(),
	}
}

// client implements the Transport interface over net/http.
type client struct {
	config     *Config
	httpClient *http.Client
	limiter    ratelimit.RateLimiter
	logger     logging.Logger
}

// New creates a Transport with the given configuration. A nil config uses
// DefaultConfig.
func New(config *Config) Transport {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Logger == nil {
		config.Logger = logging.NewNop()
	}
	if config.MaxAttempts == 0 {
		config.MaxAttempts = 1
	}
	if config.MaxBodyLogSize == 0 {
		config.MaxBodyLogSize = 4096
	}

	return &client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: ratelimit.NewTokenBucketLimiter(config.RateLimit),
		logger:  config.Logger,
	}
}

// Fetch implements Transport.
func (c *client) Fetch(ctx context.Context, url string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait error: %w", err)
	}

	var resp *Response
	err := retry.Do(
		func() error {
			resp = nil

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return fmt.Errorf("error creating request: %w", err)
			}
			if c.config.Debug {
				c.logRequest(req)
			}

			start := time.Now()
			res, err := c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("http request error: %w", err)
			}
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			if err != nil {
				return fmt.Errorf("error reading response body: %w", err)
			}
			if c.config.Debug {
				c.logResponse(req, res, body, time.Since(start))
			}

			resp = &Response{StatusCode: res.StatusCode, Body: body}

			// Transient upstream failures only matter when the caller
			// opted into more than one attempt.
			if res.StatusCode >= 500 || res.StatusCode == http.StatusTooManyRequests {
				return fmt.Errorf("retryable status code: %d", res.StatusCode)
			}
			return nil
		},
		retry.Attempts(c.config.MaxAttempts),
		retry.Delay(c.config.RetryDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("retrying request",
				logging.Int("attempt", int(n)),
				logging.String("url", url),
				logging.Err(err),
			)
		}),
	)

	if err != nil {
		if resp != nil {
			// The upstream answered; hand the final status back for
			// classification instead of burying it in a retry error.
			return resp, nil
		}
		return nil, err
	}
	return resp, nil
}

// logRequest dumps the outgoing request on the debug channel.
func (c *client) logRequest(req *http.Request) {
	dump, err := httputil.DumpRequestOut(req, false)
	if err != nil {
		c.logger.Warn("failed to dump request for logging", logging.Err(err))
		return
	}
	c.logger.Debug("http request",
		logging.String("method", req.Method),
		logging.String("url", req.URL.String()),
		logging.String("dump", string(dump)),
	)
}

// logResponse dumps the response headers plus a bounded slice of the body.
func (c *client) logResponse(req *http.Request, res *http.Response, body []byte, duration time.Duration) {
	dump, err := httputil.DumpResponse(res, false)
	if err != nil {
		c.logger.Warn("failed to dump response for logging", logging.Err(err))
		return
	}
	logBody := body
	if len(logBody) > c.config.MaxBodyLogSize {
		logBody = logBody[:c.config.MaxBodyLogSize]
	}
	c.logger.Debug("http response",
		logging.String("method", req.Method),
		logging.String("url", req.URL.String()),
		logging.Int("status", res.StatusCode),
		logging.Duration("duration", duration),
		logging.String("dump", string(dump)+string(logBody)),
	)
}
