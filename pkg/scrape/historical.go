package scrape

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/veiloq/coinmarket/pkg/market"
)

// Extraction boundary for the historical-data page.
const historicalTableMarker = `id="historical-data"`

// historicalDateLayout matches the date cells of the OHLC table.
const historicalDateLayout = "Jan 2, 2006"

var (
	historicalDateRe  = regexp.MustCompile(`class="text-left"[^>]*>([^<]+)<`)
	formatValueRe     = regexp.MustCompile(`data-format-value="([^"]*)"`)
	historicalColumns = 6 // open, high, low, close, volume, market cap
)

// Historical extracts the OHLC table from a currency's historical-data
// page, keeps only points whose date lies within [start, end] (inclusive)
// and returns them ascending by date, or descending when revert is true.
func Historical(doc string, start, end time.Time, revert bool) ([]market.HistoricalPoint, error) {
	w := windowBetween(doc, historicalTableMarker, tableEnd)
	if w == "" {
		return nil, fmt.Errorf("%w: historical data table marker missing", market.ErrSchemaDrift)
	}

	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	var points []market.HistoricalPoint
	for _, tr := range tableRowRe.FindAllString(w, -1) {
		dm := historicalDateRe.FindStringSubmatch(tr)
		if dm == nil {
			continue
		}
		date, err := time.Parse(historicalDateLayout, stripTags(dm[1]))
		if err != nil {
			continue
		}
		if date.Before(startDay) || date.After(endDay) {
			continue
		}

		values := formatValueRe.FindAllStringSubmatch(tr, -1)
		if len(values) < historicalColumns {
			continue
		}
		points = append(points, market.HistoricalPoint{
			Date:      date,
			Open:      parseFloat(values[0][1]),
			High:      parseFloat(values[1][1]),
			Low:       parseFloat(values[2][1]),
			Close:     parseFloat(values[3][1]),
			Volume:    parseFloat(values[4][1]),
			MarketCap: parseFloat(values[5][1]),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		if revert {
			return points[j].Date.Before(points[i].Date)
		}
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
