package scrape

import (
	"fmt"
	"regexp"

	"github.com/veiloq/coinmarket/pkg/market"
)

// Extraction boundary for the token listing page.
const tokensTableMarker = `id="assets-all"`

var supplyCellRe = regexp.MustCompile(`data-supply[^>]*data-format-value="([^"]*)"`)

// Tokens extracts the token listing: assets issued on top of another
// chain, with their platform, market cap, price, supply and volume.
func Tokens(doc string, conv ConvertFunc) ([]market.Token, error) {
	w := windowBetween(doc, tokensTableMarker, tableEnd)
	if w == "" {
		return nil, fmt.Errorf("%w: token listing table marker missing", market.ErrSchemaDrift)
	}

	var tokens []market.Token
	for _, tr := range tableRowRe.FindAllString(w, -1) {
		anchors := anchorRe.FindAllStringSubmatch(tr, -1)
		if len(anchors) < 1 {
			continue
		}

		tok := market.Token{Name: stripTags(anchors[0][1])}
		if len(anchors) > 1 {
			tok.Platform = stripTags(anchors[1][1])
		}

		// The symbol rides in the first plain text cell after the name.
		cells := plainCellRe.FindAllStringSubmatch(tr, -1)
		if len(cells) > 1 {
			tok.Symbol = stripTags(cells[1][1])
		}

		usd := dataUSDRe.FindAllStringSubmatch(tr, -1)
		if len(usd) > 0 {
			tok.MarketCap = conv(parseFloat(usd[0][1]))
		}
		if len(usd) > 1 {
			tok.Price = conv(parseFloat(usd[1][1]))
		}
		if len(usd) > 2 {
			tok.Volume24h = conv(parseFloat(usd[2][1]))
		}
		if m := supplyCellRe.FindStringSubmatch(tr); m != nil {
			tok.CirculatingSupply = parseFloat(m[1])
		}

		tokens = append(tokens, tok)
	}
	return tokens, nil
}
