package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/veiloq/coinmarket/pkg/market"
)

// Extraction boundaries for the currency profile page. Everything before
// the details panel is site chrome (navigation, ad slots) and is skipped.
const (
	currencyPanelMarker = `class="details-panel`
	currencyPanelEnd    = `</section>`
)

var (
	currencyLinkRe = regexp.MustCompile(`<a href="([^"]+)"[^>]*>\s*(Website|Explorer|Source Code|Message Board)\s*</a>`)

	currencyMarketCapRe = regexp.MustCompile(`data-currency-market-cap[^>]*data-usd="([^"]*)"`)
	currencyVolumeRe    = regexp.MustCompile(`data-currency-volume[^>]*data-usd="([^"]*)"`)
	circulatingSupplyRe = regexp.MustCompile(`data-circulating-supply[^>]*data-format-value="([^"]*)"`)
	totalSupplyRe       = regexp.MustCompile(`data-total-supply[^>]*data-format-value="([^"]*)"`)
	maxSupplyRe         = regexp.MustCompile(`data-max-supply[^>]*data-format-value="([^"]*)"`)
)

// Currency extracts the metadata block from a currency's profile page:
// outbound links, supply figures, mineability, market cap and volume.
// Monetary fields are converted with conv before return.
func Currency(doc string, conv ConvertFunc) (market.CurrencyInfo, error) {
	w := windowBetween(doc, currencyPanelMarker, currencyPanelEnd)
	if w == "" {
		return market.CurrencyInfo{}, fmt.Errorf("%w: currency details panel marker missing", market.ErrSchemaDrift)
	}

	info := market.CurrencyInfo{}
	for _, m := range currencyLinkRe.FindAllStringSubmatch(w, -1) {
		href, label := m[1], m[2]
		switch label {
		case "Website":
			info.Websites = append(info.Websites, href)
		case "Explorer":
			info.Explorers = append(info.Explorers, href)
		case "Message Board":
			info.MessageBoards = append(info.MessageBoards, href)
		case "Source Code":
			if info.SourceCode == "" {
				info.SourceCode = href
			}
		}
	}

	info.Mineable = strings.Contains(w, ">Mineable<")
	info.MarketCap = conv(firstGroupFloat(currencyMarketCapRe, w))
	info.Volume24h = conv(firstGroupFloat(currencyVolumeRe, w))
	info.CirculatingSupply = firstGroupFloat(circulatingSupplyRe, w)
	info.TotalSupply = firstGroupFloat(totalSupplyRe, w)
	info.MaxSupply = firstGroupFloat(maxSupplyRe, w)
	return info, nil
}

var badgeRe = regexp.MustCompile(`data-currency-code="([^"]+)"[^>]*data-rate-usd="([^"]*)"`)

// CurrencyBadges extracts the fiat conversion rates embedded in a page's
// currency selector. Keys are uppercase fiat codes; values are USD per one
// unit of that currency. Duplicate badges keep the first occurrence.
func CurrencyBadges(doc string) map[string]float64 {
	rates := map[string]float64{}
	for _, m := range badgeRe.FindAllStringSubmatch(doc, -1) {
		code := strings.ToUpper(m[1])
		if _, dup := rates[code]; dup {
			continue
		}
		if v := parseFloat(m[2]); v != 0 {
			rates[code] = v
		}
	}
	return rates
}

// firstGroupFloat parses the first capture group of re's first match in
// doc, or 0 when the pattern is absent.
func firstGroupFloat(re *regexp.Regexp, doc string) float64 {
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return 0
	}
	return parseFloat(m[1])
}
