package coinmarket

import (
	"context"
	"errors"
	"sync"

	"github.com/veiloq/coinmarket/pkg/logging"
	"github.com/veiloq/coinmarket/pkg/market"
	"github.com/veiloq/coinmarket/pkg/scrape"
)

// CurrencyResult pairs one bulk profile retrieval with its slug.
type CurrencyResult struct {
	Slug string
	Info market.CurrencyInfo
	Err  error
}

// MarketsResult pairs one bulk markets retrieval with its slug.
type MarketsResult struct {
	Slug string
	Rows []market.MarketRow
	Err  error
}

// EveryCurrency fetches the profile of every listed currency, or of the
// given identifiers, using a bounded pool of Consumers workers. Results
// arrive on the returned channel in completion order; the channel closes
// once all fetches finish or the context is cancelled. URLs that time out
// get a single second pass before their error is reported.
func (c *Client) EveryCurrency(ctx context.Context, names []string, convert string) (<-chan CurrencyResult, error) {
	slugs, conv, err := c.prepareBulk(ctx, names, convert)
	if err != nil {
		return nil, err
	}

	c.logBulkStart(len(slugs))
	out := make(chan CurrencyResult)
	go runBulkWorkers(ctx, c.opts.Consumers, slugs, out, func(ctx context.Context, slug string) (CurrencyResult, error) {
		info, err := c.currencyBySlug(ctx, slug, conv)
		return CurrencyResult{Slug: slug, Info: info, Err: err}, err
	})
	return out, nil
}

// EveryMarkets is EveryCurrency for the markets table of each profile
// page.
func (c *Client) EveryMarkets(ctx context.Context, names []string, convert string) (<-chan MarketsResult, error) {
	slugs, conv, err := c.prepareBulk(ctx, names, convert)
	if err != nil {
		return nil, err
	}

	c.logBulkStart(len(slugs))
	out := make(chan MarketsResult)
	go runBulkWorkers(ctx, c.opts.Consumers, slugs, out, func(ctx context.Context, slug string) (MarketsResult, error) {
		rows, err := c.marketsBySlug(ctx, slug, conv)
		return MarketsResult{Slug: slug, Rows: rows, Err: err}, err
	})
	return out, nil
}

// prepareBulk resolves the requested identifiers (default: the whole
// universe) and builds the conversion pass once up front.
func (c *Client) prepareBulk(ctx context.Context, names []string, convert string) ([]string, scrape.ConvertFunc, error) {
	conv, err := c.converter(ctx, convert)
	if err != nil {
		return nil, nil, err
	}

	if names == nil {
		slugs, err := c.Slugs(ctx)
		if err != nil {
			return nil, nil, err
		}
		return slugs, conv, nil
	}

	slugs := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		slug, err := c.resolveCurrency(ctx, name)
		if err != nil {
			return nil, nil, err
		}
		if seen[slug] {
			continue
		}
		seen[slug] = true
		slugs = append(slugs, slug)
	}
	return slugs, conv, nil
}

// runBulk fans slugs out over a worker pool, streams results to out and
// gives timed-out fetches one sequential second pass, mirroring the
// dead-letter pass of the original scraper.
func runBulkWorkers[T any](ctx context.Context, consumers int, slugs []string, out chan<- T,
	fetch func(context.Context, string) (T, error)) {

	defer close(out)

	jobs := make(chan string)
	var (
		wg      sync.WaitGroup
		retryMu sync.Mutex
		retries []string
	)

	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for slug := range jobs {
				res, err := fetch(ctx, slug)
				if err != nil && errors.Is(err, market.ErrTimeout) {
					retryMu.Lock()
					retries = append(retries, slug)
					retryMu.Unlock()
					continue
				}
				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

feed:
	for _, slug := range slugs {
		select {
		case jobs <- slug:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for _, slug := range retries {
		res, _ := fetch(ctx, slug)
		select {
		case out <- res:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) logBulkStart(currencies int) {
	c.logger.Debug("bulk retrieval started",
		logging.Int("currencies", currencies),
		logging.Int("consumers", c.opts.Consumers),
	)
}
