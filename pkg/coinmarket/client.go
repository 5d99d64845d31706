// Package coinmarket is the public facade of the library: retrieval
// operations that resolve identifiers, fetch upstream pages and endpoints,
// and hand the raw text to the extraction pipeline.
//
// A Client keeps two process-lifetime caches: the symbol/slug/id
// correspondence table (populated at most once) and the exchange-rate
// table (refreshed when older than RateStaleness). Everything else is
// derived per call.
package coinmarket

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/veiloq/coinmarket/pkg/httpclient"
	"github.com/veiloq/coinmarket/pkg/logging"
	"github.com/veiloq/coinmarket/pkg/market"
)

// Client retrieves market data for cryptocurrencies and exchanges.
// It is safe for concurrent use.
type Client struct {
	opts      *Options
	transport httpclient.Transport
	logger    logging.Logger

	corr struct {
		mu         sync.Mutex
		symbolSlug map[string]string
		symbolID   map[string]int
		symbols    []string
		slugs      []string
	}

	rates struct {
		mu        sync.Mutex
		table     map[string]float64
		refreshed time.Time
	}

	exch struct {
		mu    sync.Mutex
		names []string
		slugs []string
	}
}

// New creates a Client. A nil opts uses NewOptions defaults.
func New(opts *Options) *Client {
	if opts == nil {
		opts = NewOptions()
	}
	opts = opts.withDefaults()

	transport := opts.Transport
	if transport == nil {
		transport = httpclient.New(&httpclient.Config{
			Timeout:     opts.Timeout,
			RateLimit:   opts.RateLimit,
			MaxAttempts: opts.MaxAttempts,
			RetryDelay:  opts.RetryDelay,
			Debug:       opts.Debug,
			Logger:      opts.Logger,
		})
	}

	return &Client{
		opts:      opts,
		transport: transport,
		logger:    opts.Logger,
	}
}

// get fetches a URL and classifies the outcome: 200 becomes the body text,
// 404 ErrNotFound, 429 ErrRateLimited, anything else an HTTPError. The
// transport hitting its timeout surfaces as ErrTimeout. No retries happen
// here.
func (c *Client) get(ctx context.Context, url string) (string, error) {
	resp, err := c.transport.Fetch(ctx, url)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return "", fmt.Errorf("%w: %s", market.ErrTimeout, url)
		}
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return string(resp.Body), nil
	case http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", market.ErrNotFound, url)
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: %s", market.ErrRateLimited, url)
	default:
		if c.opts.Debug {
			body := string(resp.Body)
			if len(body) > 4096 {
				body = body[:4096]
			}
			c.logger.Debug("unclassified http failure",
				logging.Int("status", resp.StatusCode),
				logging.String("url", url),
				logging.String("body", body),
			)
		}
		return "", &market.HTTPError{StatusCode: resp.StatusCode, URL: url}
	}
}

// currencyURL builds the profile page URL for a slug.
func (c *Client) currencyURL(slug string) string {
	return fmt.Sprintf("%s/currencies/%s/", c.opts.WebBaseURL, slug)
}

// resolveCurrency maps a caller-supplied identifier, symbol or slug, to
// the slug used in upstream URLs. Unknown symbols fail with
// ErrInvalidArgument; slug-shaped identifiers pass through lowercased.
func (c *Client) resolveCurrency(ctx context.Context, id string) (string, error) {
	if market.IsSymbol(id) {
		slugBySymbol, _, err := c.correspondences(ctx)
		if err != nil {
			return "", err
		}
		slug, ok := slugBySymbol[id]
		if !ok {
			return "", fmt.Errorf("%w: unknown currency symbol %q", market.ErrInvalidArgument, id)
		}
		return slug, nil
	}
	return strings.ToLower(id), nil
}
