package coinmarket

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/veiloq/coinmarket/pkg/market"
)

// exceptionalSlugs corrects slugs the quick search index reports wrong.
// Upstream reuses display names across coins; these are the known cases.
var exceptionalSlugs = map[string]string{
	"42":   "42-coin",
	"808":  "808coin",
	"$$$":  "money",
	"BTBc": "bitbase",
}

// quickSearchEntry mirrors one record of the bulk symbol listing.
type quickSearchEntry struct {
	Symbol string `json:"symbol"`
	Slug   string `json:"slug"`
	ID     int    `json:"id"`
}

// correspondences returns the symbol-to-slug and symbol-to-id tables,
// populating them from the bulk listing on first use. Concurrent first
// callers observe a single upstream fetch. The returned maps are the
// internal tables; callers inside the package must not mutate them.
func (c *Client) correspondences(ctx context.Context) (map[string]string, map[string]int, error) {
	c.corr.mu.Lock()
	defer c.corr.mu.Unlock()
	if err := c.ensureCorrespondencesLocked(ctx); err != nil {
		return nil, nil, err
	}
	return c.corr.symbolSlug, c.corr.symbolID, nil
}

func (c *Client) ensureCorrespondencesLocked(ctx context.Context) error {
	if c.corr.symbolSlug != nil {
		return nil
	}

	url := c.opts.FilesBaseURL + "/generated/search/quick_search.json"
	raw, err := c.get(ctx, url)
	if err != nil {
		return fmt.Errorf("loading symbol correspondences: %w", err)
	}

	var entries []quickSearchEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return fmt.Errorf("decoding quick search index: %w", err)
	}

	symbolSlug := make(map[string]string, len(entries))
	symbolID := make(map[string]int, len(entries))
	for _, e := range entries {
		if _, dup := symbolSlug[e.Symbol]; dup {
			// Upstream occasionally lists a symbol twice; first-seen wins.
			continue
		}
		symbolSlug[e.Symbol] = strings.ReplaceAll(e.Slug, " ", "")
		symbolID[e.Symbol] = e.ID
	}
	for symbol, slug := range exceptionalSlugs {
		symbolSlug[symbol] = slug
	}

	c.corr.symbolSlug = symbolSlug
	c.corr.symbolID = symbolID
	c.corr.symbols = nil
	c.corr.slugs = nil
	return nil
}

// Symbols returns every known currency symbol, sorted. The slice is a
// copy; the underlying list is computed once and cached.
func (c *Client) Symbols(ctx context.Context) ([]string, error) {
	c.corr.mu.Lock()
	defer c.corr.mu.Unlock()
	if err := c.ensureCorrespondencesLocked(ctx); err != nil {
		return nil, err
	}
	if c.corr.symbols == nil {
		symbols := make([]string, 0, len(c.corr.symbolSlug))
		for symbol := range c.corr.symbolSlug {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)
		c.corr.symbols = symbols
	}
	return append([]string(nil), c.corr.symbols...), nil
}

// Slugs returns every known currency slug, sorted and de-duplicated.
func (c *Client) Slugs(ctx context.Context) ([]string, error) {
	c.corr.mu.Lock()
	defer c.corr.mu.Unlock()
	if err := c.ensureCorrespondencesLocked(ctx); err != nil {
		return nil, err
	}
	if c.corr.slugs == nil {
		seen := make(map[string]bool, len(c.corr.symbolSlug))
		slugs := make([]string, 0, len(c.corr.symbolSlug))
		for _, slug := range c.corr.symbolSlug {
			if seen[slug] {
				continue
			}
			seen[slug] = true
			slugs = append(slugs, slug)
		}
		sort.Strings(slugs)
		c.corr.slugs = slugs
	}
	return append([]string(nil), c.corr.slugs...), nil
}

// knownSlug reports whether slug appears in the resolved universe.
func (c *Client) knownSlug(ctx context.Context, slug string) (bool, error) {
	slugBySymbol, _, err := c.correspondences(ctx)
	if err != nil {
		return false, err
	}
	for _, s := range slugBySymbol {
		if s == slug {
			return true, nil
		}
	}
	return false, nil
}

// symbolForSlug reverse-resolves a slug. Upstream id-to-symbol drift is
// expected, so an unresolved slug yields the empty string, never an error:
// records keep a placeholder symbol rather than being dropped.
func (c *Client) symbolForSlug(ctx context.Context, slug string) (string, error) {
	slugBySymbol, _, err := c.correspondences(ctx)
	if err != nil {
		return "", err
	}
	for symbol, s := range slugBySymbol {
		if s == slug {
			return symbol, nil
		}
	}
	return "", nil
}

// idForCurrency resolves a symbol or slug to its upstream numeric id.
func (c *Client) idForCurrency(ctx context.Context, id string) (int, error) {
	slugBySymbol, idBySymbol, err := c.correspondences(ctx)
	if err != nil {
		return 0, err
	}
	if market.IsSymbol(id) {
		if numeric, ok := idBySymbol[id]; ok {
			return numeric, nil
		}
		return 0, fmt.Errorf("%w: unknown currency symbol %q", market.ErrInvalidArgument, id)
	}
	slug := strings.ToLower(id)
	for symbol, s := range slugBySymbol {
		if s == slug {
			return idBySymbol[symbol], nil
		}
	}
	return 0, fmt.Errorf("%w: unknown currency slug %q", market.ErrInvalidArgument, id)
}

// InvalidateCaches drops every lazily built cache: the correspondence
// tables, the exchange-rate table and the exchange name lists. Intended
// for tests and for long-lived processes that need to observe upstream
// renames without restarting.
func (c *Client) InvalidateCaches() {
	c.corr.mu.Lock()
	c.corr.symbolSlug = nil
	c.corr.symbolID = nil
	c.corr.symbols = nil
	c.corr.slugs = nil
	c.corr.mu.Unlock()

	c.rates.mu.Lock()
	c.rates.table = nil
	c.rates.refreshed = time.Time{}
	c.rates.mu.Unlock()

	c.exch.mu.Lock()
	c.exch.names = nil
	c.exch.slugs = nil
	c.exch.mu.Unlock()
}
