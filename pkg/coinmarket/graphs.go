package coinmarket

import (
	"context"
	"time"

	"github.com/veiloq/coinmarket/pkg/market"
	"github.com/veiloq/coinmarket/pkg/scrape"
)

// Upstream channel names in graph payloads.
const (
	graphChannelPriceUSD  = "price_usd"
	graphChannelPriceBTC  = "price_btc"
	graphChannelMarketCap = "market_cap_by_available_supply"
	graphChannelVolume    = "volume_usd"
)

// GraphsService groups the time-series endpoints. All methods accept an
// optional [start, end] window; filtering applies only when both bounds
// are supplied.
type GraphsService struct {
	c *Client
}

// Graphs returns the time-series sub-API.
func (c *Client) Graphs() *GraphsService {
	return &GraphsService{c: c}
}

// Currency returns the historical price, market cap and volume series for
// a currency identified by symbol or slug.
func (g *GraphsService) Currency(ctx context.Context, name string, start, end *time.Time) (market.CurrencyGraphs, error) {
	slug, err := g.c.resolveCurrency(ctx, name)
	if err != nil {
		return market.CurrencyGraphs{}, err
	}
	raw, err := g.c.get(ctx, g.c.opts.GraphsBaseURL+"/currencies/"+slug+"/")
	if err != nil {
		return market.CurrencyGraphs{}, err
	}
	channels, err := scrape.Graph(raw)
	if err != nil {
		return market.CurrencyGraphs{}, err
	}
	return market.CurrencyGraphs{
		PriceUSD:  scrape.FilterWindow(channels[graphChannelPriceUSD], start, end),
		PriceBTC:  scrape.FilterWindow(channels[graphChannelPriceBTC], start, end),
		MarketCap: scrape.FilterWindow(channels[graphChannelMarketCap], start, end),
		Volume24h: scrape.FilterWindow(channels[graphChannelVolume], start, end),
	}, nil
}

// GlobalMarketCap returns the market-wide capitalization and volume
// series.
func (g *GraphsService) GlobalMarketCap(ctx context.Context, start, end *time.Time) (market.GlobalGraphs, error) {
	raw, err := g.c.get(ctx, g.c.opts.GraphsBaseURL+"/global/marketcap-total/")
	if err != nil {
		return market.GlobalGraphs{}, err
	}
	channels, err := scrape.Graph(raw)
	if err != nil {
		return market.GlobalGraphs{}, err
	}
	return market.GlobalGraphs{
		MarketCap: scrape.FilterWindow(channels[graphChannelMarketCap], start, end),
		Volume24h: scrape.FilterWindow(channels[graphChannelVolume], start, end),
	}, nil
}

// Dominance returns the market share series per currency, keyed by the
// upstream channel name (a slug).
func (g *GraphsService) Dominance(ctx context.Context, start, end *time.Time) (map[string][]market.GraphPoint, error) {
	raw, err := g.c.get(ctx, g.c.opts.GraphsBaseURL+"/global/dominance/")
	if err != nil {
		return nil, err
	}
	channels, err := scrape.Graph(raw)
	if err != nil {
		return nil, err
	}
	for name, points := range channels {
		channels[name] = scrape.FilterWindow(points, start, end)
	}
	return channels, nil
}
