// Package market defines the normalized record types produced by the
// extraction pipeline and the error taxonomy shared across the library.
//
// All records are transient: they are derived per call and never cached.
// Fields the upstream omitted or garbled are left at their zero value
// rather than failing the whole record.
package market

import "time"

// BaseCurrency is the currency against which the rate table expresses all
// other rates.
const BaseCurrency = "USD"

// Ticker is a point-in-time snapshot for one currency. Monetary fields are
// denominated in the conversion currency the caller requested.
type Ticker struct {
	Symbol string
	Slug   string
	Name   string
	Rank   int

	Price     float64
	Volume24h float64
	MarketCap float64

	CirculatingSupply float64
	TotalSupply       float64

	PercentChange1h  float64
	PercentChange24h float64
	PercentChange7d  float64
}

// CurrencyInfo is the metadata extracted from a currency's profile page.
type CurrencyInfo struct {
	Symbol string
	Slug   string

	Websites      []string
	Explorers     []string
	MessageBoards []string
	SourceCode    string

	Mineable bool

	CirculatingSupply float64
	TotalSupply       float64
	MaxSupply         float64
	MarketCap         float64
	Volume24h         float64
}

// MarketRow is one exchange/pair listing on a currency's profile page.
type MarketRow struct {
	Exchange      string
	Pair          string
	Volume24h     float64
	Price         float64
	VolumePercent float64
	Updated       string
}

// HistoricalPoint is one day of OHLC data for a currency.
type HistoricalPoint struct {
	Date time.Time

	Open  float64
	High  float64
	Low   float64
	Close float64

	Volume    float64
	MarketCap float64
}

// ExchangeMarket is one trading pair listed on an exchange's page.
type ExchangeMarket struct {
	Currency      string
	Pair          string
	Volume24h     float64
	Price         float64
	VolumePercent float64
}

// ExchangeInfo is the data extracted from a single exchange's page.
type ExchangeInfo struct {
	Name    string
	Slug    string
	Markets []ExchangeMarket
}

// ExchangeListing is one row of the global exchange ranking.
type ExchangeListing struct {
	Rank      int
	Name      string
	Slug      string
	Volume24h float64
}

// Token is one row of the token listing (assets issued on another chain).
type Token struct {
	Name              string
	Symbol            string
	Platform          string
	MarketCap         float64
	Price             float64
	CirculatingSupply float64
	Volume24h         float64
}

// RankEntry is one row of the gainers/losers ranking.
type RankEntry struct {
	Name          string
	Symbol        string
	Slug          string
	Volume24h     float64
	Price         float64
	PercentChange float64
}

// RankPeriods groups ranking rows by lookback period.
type RankPeriods struct {
	Hour []RankEntry
	Day  []RankEntry
	Week []RankEntry
}

// Rankings is the full gainers-and-losers page.
type Rankings struct {
	Gainers RankPeriods
	Losers  RankPeriods
}

// RecentListing is one row of the recently-added page.
type RecentListing struct {
	Name              string
	Symbol            string
	Slug              string
	Added             string
	MarketCap         float64
	Price             float64
	CirculatingSupply float64
	Volume24h         float64
	PercentChange24h  float64
}

// GraphPoint is one sample of a time-series channel.
type GraphPoint struct {
	Time  time.Time
	Value float64
}

// CurrencyGraphs holds the time-series channels of one currency.
type CurrencyGraphs struct {
	PriceUSD  []GraphPoint
	PriceBTC  []GraphPoint
	MarketCap []GraphPoint
	Volume24h []GraphPoint
}

// GlobalGraphs holds the market-wide time-series channels.
type GlobalGraphs struct {
	MarketCap []GraphPoint
	Volume24h []GraphPoint
}
