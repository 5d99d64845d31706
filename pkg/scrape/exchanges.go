package scrape

import (
	"fmt"
	"regexp"

	"github.com/veiloq/coinmarket/pkg/market"
)

// Extraction boundary for the global exchange ranking page.
const exchangesTableMarker = `id="exchange-rankings"`

var exchangeSlugRe = regexp.MustCompile(`href="/exchanges/([^/"]+)/"[^>]*>([^<]+)</a>`)

// Exchanges extracts the global exchange ranking. Duplicate slugs are
// de-duplicated preserving first-seen order.
func Exchanges(doc string, conv ConvertFunc) ([]market.ExchangeListing, error) {
	w := windowBetween(doc, exchangesTableMarker, tableEnd)
	if w == "" {
		return nil, fmt.Errorf("%w: exchange rankings table marker missing", market.ErrSchemaDrift)
	}

	seen := map[string]bool{}
	var listings []market.ExchangeListing
	for _, tr := range tableRowRe.FindAllString(w, -1) {
		m := exchangeSlugRe.FindStringSubmatch(tr)
		if m == nil {
			continue
		}
		slug, name := m[1], stripTags(m[2])
		if seen[slug] {
			continue
		}
		seen[slug] = true

		listing := market.ExchangeListing{
			Rank: len(listings) + 1,
			Name: name,
			Slug: slug,
		}
		if u := dataUSDRe.FindStringSubmatch(tr); u != nil {
			listing.Volume24h = conv(parseFloat(u[1]))
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
