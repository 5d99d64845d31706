package coinmarket

import (
	"context"
	"fmt"

	"github.com/veiloq/coinmarket/pkg/market"
	"github.com/veiloq/coinmarket/pkg/scrape"
)

// Ticker returns the current snapshot for one currency, identified by
// symbol or slug, with monetary fields denominated in convert (empty means
// USD).
func (c *Client) Ticker(ctx context.Context, name, convert string) (market.Ticker, error) {
	slug, err := c.resolveCurrency(ctx, name)
	if err != nil {
		return market.Ticker{}, err
	}
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return market.Ticker{}, err
	}

	raw, err := c.get(ctx, fmt.Sprintf("%s/ticker/%s/", c.opts.APIBaseURL, slug))
	if err != nil {
		return market.Ticker{}, err
	}
	rows, err := scrape.Ticker(raw, conv)
	if err != nil {
		return market.Ticker{}, err
	}
	if len(rows) == 0 {
		return market.Ticker{}, fmt.Errorf("%w: empty ticker response for %q", market.ErrSchemaDrift, slug)
	}
	return rows[0], nil
}

// Tickers returns snapshots for the top limit currencies by rank; limit 0
// means the full universe.
func (c *Client) Tickers(ctx context.Context, limit int, convert string) ([]market.Ticker, error) {
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, fmt.Sprintf("%s/ticker/?limit=%d", c.opts.APIBaseURL, limit))
	if err != nil {
		return nil, err
	}
	return scrape.Ticker(raw, conv)
}
