package scrape

import (
	"encoding/json"
	"fmt"

	"github.com/veiloq/coinmarket/pkg/market"
)

// tickerRow mirrors one element of the REST ticker payload. The upstream
// transmits every numeric field as a quoted string.
type tickerRow struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Symbol           string `json:"symbol"`
	Rank             string `json:"rank"`
	PriceUSD         string `json:"price_usd"`
	VolumeUSD24h     string `json:"24h_volume_usd"`
	MarketCapUSD     string `json:"market_cap_usd"`
	AvailableSupply  string `json:"available_supply"`
	TotalSupply      string `json:"total_supply"`
	PercentChange1h  string `json:"percent_change_1h"`
	PercentChange24h string `json:"percent_change_24h"`
	PercentChange7d  string `json:"percent_change_7d"`
}

// Ticker decodes the REST ticker payload into normalized snapshots,
// unquoting the stringly-typed numerics and converting monetary fields
// with conv. Percent changes are ratios, not money, and pass through.
func Ticker(raw string, conv ConvertFunc) ([]market.Ticker, error) {
	var rows []tickerRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, fmt.Errorf("decoding ticker payload: %w", err)
	}

	out := make([]market.Ticker, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.Ticker{
			Symbol:            r.Symbol,
			Slug:              r.ID,
			Name:              r.Name,
			Rank:              parseInt(r.Rank),
			Price:             conv(parseFloat(r.PriceUSD)),
			Volume24h:         conv(parseFloat(r.VolumeUSD24h)),
			MarketCap:         conv(parseFloat(r.MarketCapUSD)),
			CirculatingSupply: parseFloat(r.AvailableSupply),
			TotalSupply:       parseFloat(r.TotalSupply),
			PercentChange1h:   parseFloat(r.PercentChange1h),
			PercentChange24h:  parseFloat(r.PercentChange24h),
			PercentChange7d:   parseFloat(r.PercentChange7d),
		})
	}
	return out, nil
}
