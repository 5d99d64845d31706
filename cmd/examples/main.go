package main

import (
	"context"
	"os"
	"time"

	"github.com/veiloq/coinmarket/pkg/coinmarket"
	"github.com/veiloq/coinmarket/pkg/logging"
)

func main() {
	logger := logging.NewZapLogger(logging.WithDebugLevel())

	opts := coinmarket.NewOptions()
	opts.Timeout = 20 * time.Second
	opts.Debug = os.Getenv("COINMARKET_DEBUG") != ""
	opts.Logger = logger

	client := coinmarket.New(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Current snapshot for one currency, converted to EUR.
	ticker, err := client.Ticker(ctx, "BTC", "EUR")
	if err != nil {
		logger.Error("failed to get ticker", logging.Err(err))
		os.Exit(1)
	}
	logger.Info("ticker",
		logging.String("symbol", ticker.Symbol),
		logging.Int("rank", ticker.Rank),
		logging.Float64("price_eur", ticker.Price),
		logging.Float64("volume_24h", ticker.Volume24h),
	)

	// Profile metadata.
	info, err := client.Currency(ctx, "ethereum", "USD")
	if err != nil {
		logger.Error("failed to get currency profile", logging.Err(err))
		os.Exit(1)
	}
	logger.Info("currency profile",
		logging.String("slug", info.Slug),
		logging.Bool("mineable", info.Mineable),
		logging.Float64("market_cap", info.MarketCap),
		logging.Int("websites", len(info.Websites)),
	)

	// One month of daily OHLC data, oldest first.
	end := time.Now()
	start := end.AddDate(0, -1, 0)
	points, err := client.Historical(ctx, "BTC", start, end, false)
	if err != nil {
		logger.Error("failed to get historical data", logging.Err(err))
		os.Exit(1)
	}
	for _, p := range points {
		logger.Info("historical point",
			logging.String("date", p.Date.Format("2006-01-02")),
			logging.Float64("close", p.Close),
			logging.Float64("volume", p.Volume),
		)
	}

	// Cross-currency conversion against the cached rate table.
	eur, err := client.Convert(ctx, 100, "USD", "EUR")
	if err != nil {
		logger.Error("failed to convert", logging.Err(err))
		os.Exit(1)
	}
	logger.Info("conversion", logging.Float64("usd_100_in_eur", eur))

	// Global exchange ranking.
	exchanges, err := client.Exchanges(ctx, "USD")
	if err != nil {
		logger.Error("failed to get exchanges", logging.Err(err))
		os.Exit(1)
	}
	for _, e := range exchanges[:min(5, len(exchanges))] {
		logger.Info("exchange",
			logging.Int("rank", e.Rank),
			logging.String("name", e.Name),
			logging.Float64("volume_24h", e.Volume24h),
		)
	}

	// Bulk retrieval over the worker pool.
	results, err := client.EveryCurrency(ctx, []string{"BTC", "ETH", "XRP"}, "USD")
	if err != nil {
		logger.Error("failed to start bulk retrieval", logging.Err(err))
		os.Exit(1)
	}
	for res := range results {
		if res.Err != nil {
			logger.Warn("bulk fetch failed",
				logging.String("slug", res.Slug),
				logging.Err(res.Err),
			)
			continue
		}
		logger.Info("bulk currency",
			logging.String("slug", res.Slug),
			logging.Float64("market_cap", res.Info.MarketCap),
		)
	}
}
