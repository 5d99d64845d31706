// Package coinmarket provides a client for retrieving cryptocurrency and
// exchange market data from coinmarketcap.com's REST endpoints and public
// web pages, converting the semi-structured HTML/JSON payloads into typed
// records.
//
// The library serves analytics and reporting code that needs ticker
// snapshots, historical OHLC series, exchange listings and currency
// metadata without implementing HTML parsing or slug bookkeeping itself.
//
// Core features:
//
//   - Ticker snapshots, currency profiles and per-currency market listings
//   - Historical OHLC series with inclusive date-range filtering
//   - Exchange pages, global exchange rankings, token listings,
//     gainers/losers and recently added currencies
//   - Time-series graph endpoints (per currency, global market cap,
//     dominance)
//   - Cross-currency conversion backed by a time-bound exchange-rate cache
//   - Bulk retrieval of every currency over a bounded worker pool
//   - Logo downloads at the fixed set of supported pixel sizes
//
// Identifiers may be symbols ("BTC") or slugs ("bitcoin"); resolution goes
// through a process-lifetime correspondence cache populated once from the
// upstream bulk listing.
//
// # Standard Errors
//
// Failures classify through the sentinel errors in pkg/market:
//
//   - market.ErrTimeout: the configured timeout elapsed mid-fetch
//
//   - market.ErrRateLimited: upstream answered HTTP 429
//
//   - market.ErrNotFound: upstream answered HTTP 404
//
//   - market.ErrInvalidArgument: unknown currency/exchange identifier or
//     unsupported logo size
//
//   - market.ErrSchemaDrift: an internal invariant broke, meaning the
//     extraction heuristics are out of sync with the upstream markup
//
// Any other non-200 status surfaces as *market.HTTPError carrying the
// status code and URL.
//
// # Examples
//
// Basic usage:
//
//	client := coinmarket.New(coinmarket.NewOptions())
//
//	ctx := context.Background()
//	ticker, err := client.Ticker(ctx, "BTC", "EUR")
//	if err != nil {
//	    log.Fatalf("ticker: %v", err)
//	}
//	fmt.Printf("%s: %.2f EUR (rank %d)\n", ticker.Symbol, ticker.Price, ticker.Rank)
//
// Historical data:
//
//	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
//	end := time.Date(2018, 6, 30, 0, 0, 0, 0, time.UTC)
//	points, err := client.Historical(ctx, "bitcoin", start, end, false)
//	if err != nil {
//	    log.Fatalf("historical: %v", err)
//	}
//	for _, p := range points {
//	    fmt.Printf("%s close=%.2f\n", p.Date.Format("2006-01-02"), p.Close)
//	}
//
// Error classification:
//
//	_, err = client.Currency(ctx, "not-a-coin", "USD")
//	switch {
//	case errors.Is(err, market.ErrInvalidArgument):
//	    // caller-side mistake
//	case errors.Is(err, market.ErrSchemaDrift):
//	    // upstream markup moved; the scraper needs attention
//	}
package coinmarket
