package scrape

import (
	"fmt"
	"regexp"

	"github.com/veiloq/coinmarket/pkg/market"
)

// Extraction boundaries for the markets table on a currency profile page.
const (
	marketsTableMarker = `id="markets-table"`
	tableEnd           = `</table>`
)

var (
	tableRowRe  = regexp.MustCompile(`(?s)<tr[^>]*>.*?</tr>`)
	anchorRe    = regexp.MustCompile(`<a [^>]*>([^<]+)</a>`)
	dataUSDRe   = regexp.MustCompile(`data-usd="([^"]*)"`)
	percentRe   = regexp.MustCompile(`data-format-percentage[^>]*data-format-value="([^"]*)"`)
	plainCellRe = regexp.MustCompile(`(?s)<td[^>]*>(.*?)</td>`)
)

// Markets extracts the exchange/pair rows from a currency's profile page.
// Rows missing either anchor (exchange name, pair) are skipped; missing
// numeric cells degrade to zero values.
func Markets(doc string, conv ConvertFunc) ([]market.MarketRow, error) {
	w := windowBetween(doc, marketsTableMarker, tableEnd)
	if w == "" {
		return nil, fmt.Errorf("%w: markets table marker missing", market.ErrSchemaDrift)
	}

	var rows []market.MarketRow
	for _, tr := range tableRowRe.FindAllString(w, -1) {
		anchors := anchorRe.FindAllStringSubmatch(tr, -1)
		if len(anchors) < 2 {
			continue
		}

		row := market.MarketRow{
			Exchange: stripTags(anchors[0][1]),
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

		// The last plain cell carries the freshness marker ("Recently").
		cells := plainCellRe.FindAllStringSubmatch(tr, -1)
		if len(cells) > 0 {
			row.Updated = stripTags(cells[len(cells)-1][1])
		}

		rows = append(rows, row)
	}
	return rows, nil
}
