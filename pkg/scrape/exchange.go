package scrape

import (
	"fmt"
	"regexp"

	"github.com/veiloq/coinmarket/pkg/market"
)

// Extraction boundaries for a single exchange's page.
const (
	exchangeNameMarker  = `<h1 class="text-large`
	exchangeTableMarker = `id="exchange-markets"`
)

var exchangeNameRe = regexp.MustCompile(`(?s)<h1 class="text-large[^>]*>(.*?)</h1>`)

// Exchange extracts the trading pair rows from an exchange's page.
func Exchange(doc string, conv ConvertFunc) (market.ExchangeInfo, error) {
	info := market.ExchangeInfo{}
	if m := exchangeNameRe.FindStringSubmatch(doc); m != nil {
		info.Name = stripTags(m[1])
	}

	w := windowBetween(doc, exchangeTableMarker, tableEnd)
	if w == "" {
		return info, fmt.Errorf("%w: exchange markets table marker missing", market.ErrSchemaDrift)
	}

	for _, tr := range tableRowRe.FindAllString(w, -1) {
		anchors := anchorRe.FindAllStringSubmatch(tr, -1)
		if len(anchors) < 2 {
			continue
		}
		row := market.ExchangeMarket{
			Currency: stripTags(anchors[0][1]),
			Pair:     stripTags(anchors[1][1]),
		}
		usd := dataUSDRe.FindAllStringSubmatch(tr, -1)
		if len(usd) > 0 {
			row.Volume24h = conv(parseFloat(usd[0][1]))
		}
		if len(usd) > 1 {
			row.Price = conv(parseFloat(usd[1][1]))
		}
		if m := percentRe.FindStringSubmatch(tr); m != nil {
			row.VolumePercent = parseFloat(m[1])
		}
		info.Markets = append(info.Markets, row)
	}
	return info, nil
}
