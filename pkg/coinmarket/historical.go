package coinmarket

import (
	"context"
	"fmt"
	"time"

	"github.com/veiloq/coinmarket/pkg/market"
	"github.com/veiloq/coinmarket/pkg/scrape"
)

// Historical returns a currency's daily OHLC series restricted to
// [start, end], inclusive, oldest first. With revert true the ordering is
// reversed, newest first.
func (c *Client) Historical(ctx context.Context, name string, start, end time.Time, revert bool) ([]market.HistoricalPoint, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: historical range end %s precedes start %s",
			market.ErrInvalidArgument, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	slug, err := c.resolveCurrency(ctx, name)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/currencies/%s/historical-data/?start=%s&end=%s",
		c.opts.WebBaseURL, slug, start.Format("20060102"), end.Format("20060102"))
	raw, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return scrape.Historical(raw, start, end, revert)
}
