package scrape

import (
	"fmt"
	"regexp"

	"github.com/veiloq/coinmarket/pkg/market"
)

// Section markers for the gainers-and-losers page: one table per
// direction and lookback period.
var rankSections = []struct {
	marker string
	pick   func(*market.Rankings) *[]market.RankEntry
}{
	{`id="gainers-1h"`, func(r *market.Rankings) *[]market.RankEntry { return &r.Gainers.Hour }},
	{`id="gainers-24h"`, func(r *market.Rankings) *[]market.RankEntry { return &r.Gainers.Day }},
	{`id="gainers-7d"`, func(r *market.Rankings) *[]market.RankEntry { return &r.Gainers.Week }},
	{`id="losers-1h"`, func(r *market.Rankings) *[]market.RankEntry { return &r.Losers.Hour }},
	{`id="losers-24h"`, func(r *market.Rankings) *[]market.RankEntry { return &r.Losers.Day }},
	{`id="losers-7d"`, func(r *market.Rankings) *[]market.RankEntry { return &r.Losers.Week }},
}

var currencySlugRe = regexp.MustCompile(`href="/currencies/([^/"]+)/"[^>]*>([^<]+)</a>`)

// Ranks extracts the gainers/losers rankings for every lookback period.
// Sections missing from the page yield empty slices rather than failing;
// the page as a whole must still carry at least one section.
func Ranks(doc string, conv ConvertFunc) (market.Rankings, error) {
	ranks := market.Rankings{}
	found := false
	for _, section := range rankSections {
		w := windowBetween(doc, section.marker, tableEnd)
		if w == "" {
			continue
		}
		found = true
		*section.pick(&ranks) = rankRows(w, conv)
	}
	if !found {
		return ranks, fmt.Errorf("%w: no gainers/losers section markers found", market.ErrSchemaDrift)
	}
	return ranks, nil
}

func rankRows(w string, conv ConvertFunc) []market.RankEntry {
	var entries []market.RankEntry
	for _, tr := range tableRowRe.FindAllString(w, -1) {
		m := currencySlugRe.FindStringSubmatch(tr)
		if m == nil {
			continue
		}
		entry := market.RankEntry{
			Slug: m[1],
			Name: stripTags(m[2]),
		}

		cells := plainCellRe.FindAllStringSubmatch(tr, -1)
		if len(cells) > 1 {
			entry.Symbol = stripTags(cells[1][1])
		}

		usd := dataUSDRe.FindAllStringSubmatch(tr, -1)
		if len(usd) > 0 {
			entry.Volume24h = conv(parseFloat(usd[0][1]))
		}
		if len(usd) > 1 {
			entry.Price = conv(parseFloat(usd[1][1]))
		}
		if pm := percentRe.FindStringSubmatch(tr); pm != nil {
			entry.PercentChange = parseFloat(pm[1])
		}
		entries = append(entries, entry)
	}
	return entries
}
