package scrape

// currencyPageFixture models the profile page of a currency: site chrome,
// the currency selector with fiat badges, the details panel and the
// markets table.
const currencyPageFixture = `<!DOCTYPE html>
<html>
<head><title>Bitcoin (BTC) price, charts, market cap</title></head>
<body>
<nav class="top-navigation">
  <ul class="currency-selector">
    <option data-currency-code="EUR" data-rate-usd="1.1623">EUR</option>
    <option data-currency-code="GBP" data-rate-usd="1.3004">GBP</option>
    <option data-currency-code="JPY" data-rate-usd="0.009">JPY</option>
    <option data-currency-code="EUR" data-rate-usd="9999">EUR duplicate, ignored</option>
    <option data-currency-code="XXX" data-rate-usd="broken">XXX</option>
  </ul>
</nav>
<section class="content">
<div class="details-panel flex-container">
  <h1 class="details-panel-item--name">Bitcoin (BTC)</h1>
  <span class="label label-warning">Mineable</span>
  <ul class="list-unstyled details-panel-item--links">
    <li><a href="https://bitcoin.org/" target="_blank">Website</a></li>
    <li><a href="https://blockchain.info/" target="_blank">Explorer</a></li>
    <li><a href="https://live.blockcypher.com/btc/" target="_blank">Explorer</a></li>
    <li><a href="https://github.com/bitcoin/bitcoin" target="_blank">Source Code</a></li>
    <li><a href="https://bitcointalk.org" target="_blank">Message Board</a></li>
  </ul>
  <div class="coin-summary">
    <span data-currency-market-cap data-usd="156231000000.0">$156.2B</span>
    <span data-currency-volume data-usd="6260000000.0">$6.26B</span>
    <span data-circulating-supply data-format-value="17124800">17,124,800</span>
    <span data-total-supply data-format-value="21000000">21,000,000</span>
    <span data-max-supply data-format-value="21000000">21,000,000</span>
  </div>
</div>
</section>
<section class="markets">
<table class="table no-border table-condensed" id="markets-table">
  <tr>
    <td>1</td>
    <td><a href="/exchanges/binance/">Binance</a></td>
    <td><a href="https://www.binance.com/trade.html">BTC/USDT</a></td>
    <td><span data-usd="1215430000.0">$1.21B</span></td>
    <td><span data-usd="9120.11">$9120.11</span></td>
    <td><span data-format-percentage data-format-value="12.53">12.53%</span></td>
    <td>Recently</td>
  </tr>
  <tr>
    <td>2</td>
    <td><a href="/exchanges/okex/">OKEx</a></td>
    <td><a href="https://www.okex.com/market">BTC/USDT</a></td>
    <td><span data-usd="983210000.0">$983M</span></td>
    <td><span data-usd="9118.40">$9118.40</span></td>
    <td><span data-format-percentage data-format-value="10.14">10.14%</span></td>
    <td>Recently</td>
  </tr>
  <tr>
    <td>3</td>
    <td>malformed row without anchors</td>
  </tr>
</table>
</section>
</body>
</html>`

// historicalPageFixture models the historical-data page, newest first as
// the site serves it.
const historicalPageFixture = `<!DOCTYPE html>
<html>
<body>
<div class="tab-content">
<div id="historical-data">
<table class="table">
  <thead>
    <tr><th>Date</th><th>Open</th><th>High</th><th>Low</th><th>Close</th><th>Volume</th><th>Market Cap</th></tr>
  </thead>
  <tr class="text-right">
    <td class="text-left">Aug 12, 2018</td>
    <td data-format-fiat data-format-value="6318.14">6318.14</td>
    <td data-format-fiat data-format-value="6418.32">6418.32</td>
    <td data-format-fiat data-format-value="6172.23">6172.23</td>
    <td data-format-fiat data-format-value="6310.00">6310.00</td>
    <td data-format-market-cap data-format-value="3610960000">3,610,960,000</td>
    <td data-format-market-cap data-format-value="108764000000">108,764,000,000</td>
  </tr>
  <tr class="text-right">
    <td class="text-left">Aug 11, 2018</td>
    <td data-format-fiat data-format-value="6184.71">6184.71</td>
    <td data-format-fiat data-format-value="6395.20">6395.20</td>
    <td data-format-fiat data-format-value="6119.07">6119.07</td>
    <td data-format-fiat data-format-value="6318.14">6318.14</td>
    <td data-format-market-cap data-format-value="4064160000">4,064,160,000</td>
    <td data-format-market-cap data-format-value="106489000000">106,489,000,000</td>
  </tr>
  <tr class="text-right">
    <td class="text-left">Aug 10, 2018</td>
    <td data-format-fiat data-format-value="6549.61">6549.61</td>
    <td data-format-fiat data-format-value="6556.61">6556.61</td>
    <td data-format-fiat data-format-value="6180.51">6180.51</td>
    <td data-format-fiat data-format-value="6184.71">6184.71</td>
    <td data-format-market-cap data-format-value="4364600000">4,364,600,000</td>
    <td data-format-market-cap data-format-value="112756000000">112,756,000,000</td>
  </tr>
</table>
</div>
</div>
</body>
</html>`

// exchangePageFixture models a single exchange's page.
const exchangePageFixture = `<!DOCTYPE html>
<html>
<body>
<h1 class="text-large">Binance</h1>
<table class="table" id="exchange-markets">
  <tr>
    <td>1</td>
    <td><a href="/currencies/bitcoin/">Bitcoin</a></td>
    <td><a href="https://www.binance.com/trade.html">BTC/USDT</a></td>
    <td><span data-usd="1215430000.0">$1.21B</span></td>
    <td><span data-usd="9120.11">$9120.11</span></td>
    <td><span data-format-percentage data-format-value="41.2">41.2%</span></td>
  </tr>
  <tr>
    <td>2</td>
    <td><a href="/currencies/ethereum/">Ethereum</a></td>
    <td><a href="https://www.binance.com/trade.html">ETH/USDT</a></td>
    <td><span data-usd="529870000.0">$530M</span></td>
    <td><span data-usd="420.77">$420.77</span></td>
    <td><span data-format-percentage data-format-value="17.9">17.9%</span></td>
  </tr>
</table>
</body>
</html>`

// exchangesPageFixture models the global exchange ranking, including a
// duplicate row that must be de-duplicated.
const exchangesPageFixture = `<!DOCTYPE html>
<html>
<body>
<table class="table" id="exchange-rankings">
  <tr>
    <td>1</td>
    <td><a href="/exchanges/binance/">Binance</a></td>
    <td><span data-usd="1498370000.0">$1.5B</span></td>
  </tr>
  <tr>
    <td>2</td>
    <td><a href="/exchanges/okex/">OKEx</a></td>
    <td><span data-usd="1129440000.0">$1.13B</span></td>
  </tr>
  <tr>
    <td>3</td>
    <td><a href="/exchanges/binance/">Binance</a></td>
    <td><span data-usd="77.0">$77</span></td>
  </tr>
  <tr>
    <td>4</td>
    <td><a href="/exchanges/huobi/">Huobi</a></td>
    <td><span data-usd="901230000.0">$901M</span></td>
  </tr>
</table>
</body>
</html>`

// tokensPageFixture models the token listing page.
const tokensPageFixture = `<!DOCTYPE html>
<html>
<body>
<table class="table" id="assets-all">
  <tr>
    <td><a href="/currencies/tether/">Tether</a></td>
    <td class="text-left">USDT</td>
    <td><a href="/currencies/omni/">Omni</a></td>
    <td><span data-usd="2710000000.0">$2.71B</span></td>
    <td><span data-usd="1.0">$1.00</span></td>
    <td data-supply data-format-value="2707140000">2,707,140,000</td>
    <td><span data-usd="3163210000.0">$3.16B</span></td>
  </tr>
  <tr>
    <td><a href="/currencies/0x/">0x</a></td>
    <td class="text-left">ZRX</td>
    <td><a href="/currencies/ethereum/">Ethereum</a></td>
    <td><span data-usd="608740000.0">$609M</span></td>
    <td><span data-usd="1.14">$1.14</span></td>
    <td data-supply data-format-value="534720000">534,720,000</td>
    <td><span data-usd="21950000.0">$21.9M</span></td>
  </tr>
</table>
</body>
</html>`

// ranksPageFixture models the gainers-and-losers page with one table per
// direction and period.
const ranksPageFixture = `<!DOCTYPE html>
<html>
<body>
<div id="gainers-1h">
<table class="table">
  <tr>
    <td><a href="/currencies/dogecoin/">Dogecoin</a></td>
    <td>DOGE</td>
    <td><span data-usd="21470000.0">$21.5M</span></td>
    <td><span data-usd="0.0034">$0.0034</span></td>
    <td><span data-format-percentage data-format-value="28.43">28.43%</span></td>
  </tr>
</table>
</div>
<div id="gainers-24h">
<table class="table">
  <tr>
    <td><a href="/currencies/vechain/">VeChain</a></td>
    <td>VET</td>
    <td><span data-usd="52310000.0">$52.3M</span></td>
    <td><span data-usd="0.0158">$0.0158</span></td>
    <td><span data-format-percentage data-format-value="41.02">41.02%</span></td>
  </tr>
</table>
</div>
<div id="gainers-7d">
<table class="table">
  <tr>
    <td><a href="/currencies/nano/">Nano</a></td>
    <td>NANO</td>
    <td><span data-usd="12890000.0">$12.9M</span></td>
    <td><span data-usd="1.82">$1.82</span></td>
    <td><span data-format-percentage data-format-value="66.91">66.91%</span></td>
  </tr>
</table>
</div>
<div id="losers-1h">
<table class="table">
  <tr>
    <td><a href="/currencies/holo/">Holo</a></td>
    <td>HOT</td>
    <td><span data-usd="8120000.0">$8.1M</span></td>
    <td><span data-usd="0.0009">$0.0009</span></td>
    <td><span data-format-percentage data-format-value="-12.77">-12.77%</span></td>
  </tr>
</table>
</div>
<div id="losers-24h">
<table class="table">
  <tr>
    <td><a href="/currencies/augur/">Augur</a></td>
    <td>REP</td>
    <td><span data-usd="14550000.0">$14.6M</span></td>
    <td><span data-usd="27.31">$27.31</span></td>
    <td><span data-format-percentage data-format-value="-18.20">-18.20%</span></td>
  </tr>
</table>
</div>
<div id="losers-7d">
<table class="table">
  <tr>
    <td><a href="/currencies/siacoin/">Siacoin</a></td>
    <td>SC</td>
    <td><span data-usd="9970000.0">$10M</span></td>
    <td><span data-usd="0.0061">$0.0061</span></td>
    <td><span data-format-percentage data-format-value="-31.55">-31.55%</span></td>
  </tr>
</table>
</div>
</body>
</html>`

// recentlyPageFixture models the recently-added page.
const recentlyPageFixture = `<!DOCTYPE html>
<html>
<body>
<table class="table" id="recently-added">
  <tr>
    <td><a href="/currencies/newcoin/">NewCoin</a></td>
    <td>NEW</td>
    <td>Today</td>
    <td><span data-usd="1250000.0">$1.25M</span></td>
    <td><span data-usd="0.25">$0.25</span></td>
    <td data-supply data-format-value="5000000">5,000,000</td>
    <td><span data-usd="310000.0">$310K</span></td>
    <td><span data-format-percentage data-format-value="5.5">5.5%</span></td>
  </tr>
  <tr>
    <td><a href="/currencies/fresh-token/">Fresh Token</a></td>
    <td>FRSH</td>
    <td>2 days ago</td>
    <td><span data-usd="890000.0">$890K</span></td>
    <td><span data-usd="0.013">$0.013</span></td>
    <td data-supply data-format-value="68460000">68,460,000</td>
    <td><span data-usd="45000.0">$45K</span></td>
    <td><span data-format-percentage data-format-value="-2.1">-2.1%</span></td>
  </tr>
</table>
</body>
</html>`
