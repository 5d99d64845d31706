package coinmarket

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/veiloq/coinmarket/pkg/market"
	"github.com/veiloq/coinmarket/pkg/scrape"
)

// Exchange returns the trading pair listing for one exchange, identified
// by its slug (or display name, lowercased on a best-effort basis).
func (c *Client) Exchange(ctx context.Context, name, convert string) (market.ExchangeInfo, error) {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return market.ExchangeInfo{}, err
	}

	raw, err := c.get(ctx, fmt.Sprintf("%s/exchanges/%s/", c.opts.WebBaseURL, slug))
	if err != nil {
		return market.ExchangeInfo{}, err
	}
	info, err := scrape.Exchange(raw, conv)
	if err != nil {
		return info, err
	}
	info.Slug = slug
	return info, nil
}

// Exchanges returns the global exchange ranking by 24 hour volume.
func (c *Client) Exchanges(ctx context.Context, convert string) ([]market.ExchangeListing, error) {
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, c.opts.WebBaseURL+"/exchanges/volume/24-hour/all/")
	if err != nil {
		return nil, err
	}
	return scrape.Exchanges(raw, conv)
}

// ExchangeNames returns the display names of every listed exchange,
// sorted. Derived lazily from the ranking page and cached for the process
// lifetime.
func (c *Client) ExchangeNames(ctx context.Context) ([]string, error) {
	c.exch.mu.Lock()
	defer c.exch.mu.Unlock()
	if err := c.ensureExchangesLocked(ctx); err != nil {
		return nil, err
	}
	return append([]string(nil), c.exch.names...), nil
}

// ExchangeSlugs returns the URL slugs of every listed exchange, sorted.
func (c *Client) ExchangeSlugs(ctx context.Context) ([]string, error) {
	c.exch.mu.Lock()
	defer c.exch.mu.Unlock()
	if err := c.ensureExchangesLocked(ctx); err != nil {
		return nil, err
	}
	return append([]string(nil), c.exch.slugs...), nil
}

func (c *Client) ensureExchangesLocked(ctx context.Context) error {
	if c.exch.names != nil {
		return nil
	}
	raw, err := c.get(ctx, c.opts.WebBaseURL+"/exchanges/volume/24-hour/all/")
	if err != nil {
		return fmt.Errorf("loading exchange universe: %w", err)
	}
	listings, err := scrape.Exchanges(raw, scrape.Identity)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(listings))
	slugs := make([]string, 0, len(listings))
	for _, l := range listings {
		names = append(names, l.Name)
		slugs = append(slugs, l.Slug)
	}
	sort.Strings(names)
	sort.Strings(slugs)
	c.exch.names = names
	c.exch.slugs = slugs
	return nil
}
