package scrape

import (
	"fmt"

	"github.com/veiloq/coinmarket/pkg/market"
)

// Extraction boundary for the recently-added page.
const recentlyTableMarker = `id="recently-added"`

// Recently extracts the list of newly listed currencies.
func Recently(doc string, conv ConvertFunc) ([]market.RecentListing, error) {
	w := windowBetween(doc, recentlyTableMarker, tableEnd)
	if w == "" {
		return nil, fmt.Errorf("%w: recently added table marker missing", market.ErrSchemaDrift)
	}

	var listings []market.RecentListing
	for _, tr := range tableRowRe.FindAllString(w, -1) {
		m := currencySlugRe.FindStringSubmatch(tr)
		if m == nil {
			continue
		}
		listing := market.RecentListing{
			Slug: m[1],
			Name: stripTags(m[2]),
		}

		cells := plainCellRe.FindAllStringSubmatch(tr, -1)
		if len(cells) > 1 {
			listing.Symbol = stripTags(cells[1][1])
		}
		if len(cells) > 2 {
			listing.Added = stripTags(cells[2][1])
		}

		usd := dataUSDRe.FindAllStringSubmatch(tr, -1)
		if len(usd) > 0 {
			listing.MarketCap = conv(parseFloat(usd[0][1]))
		}
		if len(usd) > 1 {
			listing.Price = conv(parseFloat(usd[1][1]))
		}
		if len(usd) > 2 {
			listing.Volume24h = conv(parseFloat(usd[2][1]))
		}
		if m := supplyCellRe.FindStringSubmatch(tr); m != nil {
			listing.CirculatingSupply = parseFloat(m[1])
		}
		if m := percentRe.FindStringSubmatch(tr); m != nil {
			listing.PercentChange24h = parseFloat(m[1])
		}

		listings = append(listings, listing)
	}
	return listings, nil
}
