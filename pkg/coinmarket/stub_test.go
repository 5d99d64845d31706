package coinmarket

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/veiloq/coinmarket/pkg/httpclient"
)

// Stubbed upstream URLs, matching the production defaults the Options
// fall back to.
const (
	quickSearchURL = "https://files.coinmarketcap.com/generated/search/quick_search.json"
	btcPageURL     = "https://coinmarketcap.com/currencies/bitcoin/"
	ethPageURL     = "https://coinmarketcap.com/currencies/ethereum/"
	xrpPageURL     = "https://coinmarketcap.com/currencies/ripple/"
	btcTickerURL   = "https://api.coinmarketcap.com/v1/ticker/bitcoin/"
	allTickersURL  = "https://api.coinmarketcap.com/v1/ticker/?limit=0"
)

const quickSearchFixture = `[
	{"symbol": "BTC", "slug": "bitcoin", "id": 1},
	{"symbol": "ETH", "slug": "ethereum", "id": 1027},
	{"symbol": "XRP", "slug": "ripple", "id": 52}
]`

const btcTickerFixture = `[
	{
		"id": "bitcoin",
		"name": "Bitcoin",
		"symbol": "BTC",
		"rank": "1",
		"price_usd": "9123.45",
		"24h_volume_usd": "6260000000.0",
		"market_cap_usd": "156231000000.0",
		"available_supply": "17124800.0",
		"total_supply": "17124800.0",
		"percent_change_1h": "0.52",
		"percent_change_24h": "-1.2",
		"percent_change_7d": "3.4"
	}
]`

const allTickersFixture = `[
	{"id": "bitcoin", "symbol": "BTC", "rank": "1", "price_usd": "9123.45"},
	{"id": "ethereum", "symbol": "ETH", "rank": "2", "price_usd": "420.77"}
]`

// currencyPageFixture carries the fiat badges, details panel and markets
// table every profile page serves.
const currencyPageFixture = `<html>
<nav>
  <option data-currency-code="EUR" data-rate-usd="1.1623">EUR</option>
  <option data-currency-code="GBP" data-rate-usd="1.3004">GBP</option>
</nav>
<section>
<div class="details-panel">
  <span class="label">Mineable</span>
  <li><a href="https://bitcoin.org/" target="_blank">Website</a></li>
  <li><a href="https://blockchain.info/" target="_blank">Explorer</a></li>
  <span data-currency-market-cap data-usd="156231000000.0">$156.2B</span>
  <span data-currency-volume data-usd="6260000000.0">$6.26B</span>
  <span data-circulating-supply data-format-value="17124800">17,124,800</span>
</div>
</section>
<table id="markets-table">
  <tr>
    <td>1</td>
    <td><a href="/exchanges/binance/">Binance</a></td>
    <td><a href="https://www.binance.com/trade.html">BTC/USDT</a></td>
    <td><span data-usd="1215430000.0">$1.21B</span></td>
    <td><span data-usd="9120.11">$9120.11</span></td>
    <td>Recently</td>
  </tr>
</table>
</html>`

// stubTransport serves canned responses keyed by URL and records every
// fetch. Unrouted URLs come back 404 so a missing route fails loudly in
// the classification layer rather than panicking.
type stubTransport struct {
	mu       sync.Mutex
	routes   map[string]*httpclient.Response
	errs     map[string]error
	failOnce map[string]error
	calls    []string
}

func newStubTransport() *stubTransport {
	return &stubTransport{
		routes:   map[string]*httpclient.Response{},
		errs:     map[string]error{},
		failOnce: map[string]error{},
	}
}

func (s *stubTransport) route(url string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[url] = &httpclient.Response{StatusCode: status, Body: []byte(body)}
}

func (s *stubTransport) routeErr(url string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[url] = err
}

// routeErrOnce makes the first fetch of url fail with err; later fetches
// fall through to the regular routes.
func (s *stubTransport) routeErrOnce(url string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOnce[url] = err
}

func (s *stubTransport) Fetch(_ context.Context, url string) (*httpclient.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, url)

	if err, ok := s.failOnce[url]; ok {
		delete(s.failOnce, url)
		return nil, err
	}
	if err, ok := s.errs[url]; ok {
		return nil, err
	}
	if resp, ok := s.routes[url]; ok {
		return resp, nil
	}
	return &httpclient.Response{StatusCode: http.StatusNotFound}, nil
}

func (s *stubTransport) callCount(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == url {
			n++
		}
	}
	return n
}

func (s *stubTransport) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// timeoutError satisfies net.Error the way a client timeout does.
type timeoutError struct{}

func (timeoutError) Error() string   { return "request timed out" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

// newStubClient wires a Client to a fresh stub transport preloaded with
// the symbol index.
func newStubClient(t *testing.T) (*Client, *stubTransport) {
	t.Helper()
	stub := newStubTransport()
	stub.route(quickSearchURL, http.StatusOK, quickSearchFixture)
	opts := NewOptions()
	opts.Transport = stub
	return New(opts), stub
}
