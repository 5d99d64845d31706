package coinmarket

import (
	"context"
	"errors"
	"fmt"

	"github.com/veiloq/coinmarket/pkg/market"
	"github.com/veiloq/coinmarket/pkg/scrape"
)

// Currency returns the profile metadata for a currency identified by
// symbol or slug. An identifier outside the known universe fails with
// ErrInvalidArgument; a known slug whose page still 404s fails with
// ErrSchemaDrift, since a slug from our own cache should always resolve to
// a live page.
func (c *Client) Currency(ctx context.Context, name, convert string) (market.CurrencyInfo, error) {
	slug, err := c.resolveKnownCurrency(ctx, name)
	if err != nil {
		return market.CurrencyInfo{}, err
	}
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return market.CurrencyInfo{}, err
	}
	return c.currencyBySlug(ctx, slug, conv)
}

// Markets returns the exchange/pair listing rows from a currency's
// profile page. Shares the Currency 404 policy.
func (c *Client) Markets(ctx context.Context, name, convert string) ([]market.MarketRow, error) {
	slug, err := c.resolveKnownCurrency(ctx, name)
	if err != nil {
		return nil, err
	}
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return nil, err
	}
	return c.marketsBySlug(ctx, slug, conv)
}

// resolveKnownCurrency resolves an identifier and additionally requires
// the resulting slug to exist in the correspondence universe.
func (c *Client) resolveKnownCurrency(ctx context.Context, name string) (string, error) {
	slug, err := c.resolveCurrency(ctx, name)
	if err != nil {
		return "", err
	}
	known, err := c.knownSlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if !known {
		return "", fmt.Errorf("%w: unknown currency %q", market.ErrInvalidArgument, name)
	}
	return slug, nil
}

func (c *Client) currencyBySlug(ctx context.Context, slug string, conv scrape.ConvertFunc) (market.CurrencyInfo, error) {
	raw, err := c.get(ctx, c.currencyURL(slug))
	if err != nil {
		return market.CurrencyInfo{}, c.classifyKnownSlug404(slug, err)
	}
	info, err := scrape.Currency(raw, conv)
	if err != nil {
		return info, err
	}
	info.Slug = slug
	symbol, err := c.symbolForSlug(ctx, slug)
	if err != nil {
		return info, err
	}
	info.Symbol = symbol
	return info, nil
}

func (c *Client) marketsBySlug(ctx context.Context, slug string, conv scrape.ConvertFunc) ([]market.MarketRow, error) {
	raw, err := c.get(ctx, c.currencyURL(slug))
	if err != nil {
		return nil, c.classifyKnownSlug404(slug, err)
	}
	return scrape.Markets(raw, conv)
}

// classifyKnownSlug404 upgrades a 404 on an already-validated slug to a
// schema drift failure: the value came from our own cache, so the page
// going missing means the cache and upstream have diverged.
func (c *Client) classifyKnownSlug404(slug string, err error) error {
	if errors.Is(err, market.ErrNotFound) {
		return fmt.Errorf("%w: cached slug %q resolved to a missing page", market.ErrSchemaDrift, slug)
	}
	return err
}
