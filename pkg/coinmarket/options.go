package coinmarket

import (
	"time"

	"github.com/veiloq/coinmarket/pkg/httpclient"
	"github.com/veiloq/coinmarket/pkg/logging"
	"github.com/veiloq/coinmarket/pkg/ratelimit"
)

// Default upstream endpoints. Tests point these at local stub servers.
const (
	defaultWebBaseURL    = "https://coinmarketcap.com"
	defaultAPIBaseURL    = "https://api.coinmarketcap.com/v1"
	defaultFilesBaseURL  = "https://files.coinmarketcap.com"
	defaultGraphsBaseURL = "https://graphs2.coinmarketcap.com"
	defaultImageBaseURL  = "https://s2.coinmarketcap.com/static/img/coins"
)

// Options configures a Client.
type Options struct {
	// Timeout bounds every upstream request end to end.
	Timeout time.Duration

	// Debug enables diagnostics: verbose fetch logging plus raw
	// request/response dumps at the transport layer.
	Debug bool

	// RateLimit paces upstream requests.
	RateLimit ratelimit.Rate

	// MaxAttempts and RetryDelay configure the transport's retry policy.
	// The default of 1 attempt means no retries; retrying is strictly the
	// caller's decision.
	MaxAttempts uint
	RetryDelay  time.Duration

	// Consumers is the worker pool size used by the bulk operations
	// (EveryCurrency, EveryMarkets).
	Consumers int

	// Endpoint overrides, empty means production defaults.
	WebBaseURL    string
	APIBaseURL    string
	FilesBaseURL  string
	GraphsBaseURL string
	ImageBaseURL  string

	// Transport replaces the built-in HTTP client; used by tests to stub
	// the upstream.
	Transport httpclient.Transport

	Logger logging.Logger
}

// NewOptions returns default options: 20 second timeout, diagnostics off,
// 10 requests per second, no retries, 10 bulk consumers.
func NewOptions() *Options {
	return &Options{
		Timeout: 20 * time.Second,
		RateLimit: ratelimit.Rate{
			Limit:    10,
			Interval: time.Second,
		},
		MaxAttempts: 1,
		RetryDelay:  time.Second,
		Consumers:   10,
	}
}

func (o *Options) withDefaults() *Options {
	out := *o
	if out.Timeout == 0 {
		out.Timeout = 20 * time.Second
	}
	if out.RateLimit.Limit == 0 {
		out.RateLimit = ratelimit.Rate{Limit: 10, Interval: time.Second}
	}
	if out.MaxAttempts == 0 {
		out.MaxAttempts = 1
	}
	if out.Consumers <= 0 {
		out.Consumers = 10
	}
	if out.WebBaseURL == "" {
		out.WebBaseURL = defaultWebBaseURL
	}
	if out.APIBaseURL == "" {
		out.APIBaseURL = defaultAPIBaseURL
	}
	if out.FilesBaseURL == "" {
		out.FilesBaseURL = defaultFilesBaseURL
	}
	if out.GraphsBaseURL == "" {
		out.GraphsBaseURL = defaultGraphsBaseURL
	}
	if out.ImageBaseURL == "" {
		out.ImageBaseURL = defaultImageBaseURL
	}
	if out.Logger == nil {
		if out.Debug {
			out.Logger = logging.NewZapLogger(logging.WithDebugLevel())
		} else {
			out.Logger = logging.NewNop()
		}
	}
	return &out
}
