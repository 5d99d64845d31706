package coinmarket

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/veiloq/coinmarket/pkg/logging"
	"github.com/veiloq/coinmarket/pkg/market"
	"github.com/veiloq/coinmarket/pkg/scrape"
)

// RateStaleness is the maximum age of the exchange-rate table before a
// conversion forces a refresh.
const RateStaleness = 600 * time.Second

// Convert computes value in currencyOut given value in currencyIn. Rates
// are expressed against USD; the cached table is refreshed when older than
// RateStaleness, and a failed refresh propagates instead of silently
// computing from stale data.
func (c *Client) Convert(ctx context.Context, value float64, currencyIn, currencyOut string) (float64, error) {
	currencyIn = strings.ToUpper(strings.TrimSpace(currencyIn))
	currencyOut = strings.ToUpper(strings.TrimSpace(currencyOut))
	if currencyIn == currencyOut {
		return value, nil
	}

	rates, err := c.freshRates(ctx)
	if err != nil {
		return 0, err
	}

	switch {
	case currencyIn == market.BaseCurrency:
		rate, err := c.lookupRate(ctx, rates, currencyOut)
		if err != nil {
			return 0, err
		}
		return value / rate, nil
	case currencyOut == market.BaseCurrency:
		rate, err := c.lookupRate(ctx, rates, currencyIn)
		if err != nil {
			return 0, err
		}
		return value * rate, nil
	default:
		rateIn, err := c.lookupRate(ctx, rates, currencyIn)
		if err != nil {
			return 0, err
		}
		rateOut, err := c.lookupRate(ctx, rates, currencyOut)
		if err != nil {
			return 0, err
		}
		return value * rateIn / rateOut, nil
	}
}

// converter builds the conversion pass handed to parsers for a requested
// output currency. USD (or empty) is the identity.
func (c *Client) converter(ctx context.Context, currencyOut string) (scrape.ConvertFunc, error) {
	currencyOut = strings.ToUpper(strings.TrimSpace(currencyOut))
	if currencyOut == "" || currencyOut == market.BaseCurrency {
		return scrape.Identity, nil
	}

	rates, err := c.freshRates(ctx)
	if err != nil {
		return nil, err
	}
	rate, err := c.lookupRate(ctx, rates, currencyOut)
	if err != nil {
		return nil, err
	}
	return func(usd float64) float64 { return usd / rate }, nil
}

// freshRates returns the rate table, refreshing it first when its age
// exceeds RateStaleness. The table is replaced wholesale on refresh, so a
// returned map stays consistent even if another goroutine refreshes later.
func (c *Client) freshRates(ctx context.Context) (map[string]float64, error) {
	c.rates.mu.Lock()
	defer c.rates.mu.Unlock()
	if c.rates.table != nil && time.Since(c.rates.refreshed) <= RateStaleness {
		return c.rates.table, nil
	}
	if err := c.refreshRatesLocked(ctx); err != nil {
		return nil, err
	}
	return c.rates.table, nil
}

// refreshRatesLocked rebuilds the table from two sources: the fiat badge
// rates that ride on every page's currency selector, and price_usd from
// the bulk ticker endpoint for the crypto universe.
func (c *Client) refreshRatesLocked(ctx context.Context) error {
	// The bitcoin profile is as good a page as any for the fiat badges.
	doc, err := c.get(ctx, c.currencyURL("bitcoin"))
	if err != nil {
		return fmt.Errorf("refreshing fiat rates: %w", err)
	}
	table := scrape.CurrencyBadges(doc)

	raw, err := c.get(ctx, c.opts.APIBaseURL+"/ticker/?limit=0")
	if err != nil {
		return fmt.Errorf("refreshing crypto rates: %w", err)
	}
	tickers, err := scrape.Ticker(raw, scrape.Identity)
	if err != nil {
		return fmt.Errorf("refreshing crypto rates: %w", err)
	}
	for _, t := range tickers {
		if _, dup := table[t.Symbol]; dup || t.Price == 0 {
			continue
		}
		table[t.Symbol] = t.Price
	}

	c.rates.table = table
	c.rates.refreshed = time.Now()
	c.logger.Debug("exchange rate table refreshed", logging.Int("entries", len(table)))
	return nil
}

// lookupRate finds a symbol's USD rate. A symbol missing from the table
// but present in the convertible universe (on-page badges plus the full
// ticker symbol set) is an internal inconsistency and fails loudly; a
// symbol in neither is a caller error.
func (c *Client) lookupRate(ctx context.Context, rates map[string]float64, symbol string) (float64, error) {
	if rate, ok := rates[symbol]; ok && rate != 0 {
		return rate, nil
	}

	if _, present := rates[symbol]; present {
		return 0, fmt.Errorf("%w: %s is convertible but has no usable rate", market.ErrSchemaDrift, symbol)
	}
	slugBySymbol, _, err := c.correspondences(ctx)
	if err != nil {
		return 0, err
	}
	if _, known := slugBySymbol[symbol]; known {
		return 0, fmt.Errorf("%w: %s is convertible but missing from the rate table", market.ErrSchemaDrift, symbol)
	}
	return 0, fmt.Errorf("%w: unknown conversion currency %q", market.ErrInvalidArgument, symbol)
}
