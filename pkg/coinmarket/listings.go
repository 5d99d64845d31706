package coinmarket

import (
	"context"

	"github.com/veiloq/coinmarket/pkg/market"
	"github.com/veiloq/coinmarket/pkg/scrape"
)

// Tokens returns the listing of assets issued on top of another chain.
func (c *Client) Tokens(ctx context.Context, convert string) ([]market.Token, error) {
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, c.opts.WebBaseURL+"/tokens/views/all/")
	if err != nil {
		return nil, err
	}
	return scrape.Tokens(raw, conv)
}

// Ranks returns the gainers/losers rankings across every lookback period.
func (c *Client) Ranks(ctx context.Context, convert string) (market.Rankings, error) {
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return market.Rankings{}, err
	}
	raw, err := c.get(ctx, c.opts.WebBaseURL+"/gainers-losers/")
	if err != nil {
		return market.Rankings{}, err
	}
	return scrape.Ranks(raw, conv)
}

// Recently returns the list of recently added currencies.
func (c *Client) Recently(ctx context.Context, convert string) ([]market.RecentListing, error) {
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, c.opts.WebBaseURL+"/new/")
	if err != nil {
		return nil, err
	}
	return scrape.Recently(raw, conv)
}
