package scrape

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veiloq/coinmarket/pkg/market"
)

const graphFixture = `{
	"price_usd": [[1515189600000, 13500.3], [1515276000000, 14000.1], [1515362400000, 13720.8]],
	"volume_usd": [[1515189600000, 1000.0]]
}`

func TestGraphDecodesChannels(t *testing.T) {
	channels, err := Graph(graphFixture)
	require.NoError(t, err)
	require.Len(t, channels, 2)

	price := channels["price_usd"]
	require.Len(t, price, 3)
	assert.Equal(t, time.UnixMilli(1515189600000).UTC(), price[0].Time)
	assert.Equal(t, 13500.3, price[0].Value)
	assert.Equal(t, time.UTC, price[0].Time.Location())

	require.Len(t, channels["volume_usd"], 1)
}

func TestGraphRejectsMalformedPayload(t *testing.T) {
	_, err := Graph(`[1, 2, 3]`)
	assert.Error(t, err)
}

func TestFilterWindowBothBoundsInclusive(t *testing.T) {
	channels, err := Graph(graphFixture)
	require.NoError(t, err)
	points := channels["price_usd"]

	start := time.UnixMilli(1515189600000).UTC()
	end := time.UnixMilli(1515276000000).UTC()
	filtered := FilterWindow(points, &start, &end)
	require.Len(t, filtered, 2)
	assert.Equal(t, start, filtered[0].Time)
	assert.Equal(t, end, filtered[1].Time)
}

func TestFilterWindowRequiresBothBounds(t *testing.T) {
	points := []market.GraphPoint{
		{Time: time.UnixMilli(1515189600000).UTC(), Value: 1},
		{Time: time.UnixMilli(1515276000000).UTC(), Value: 2},
	}
	start := time.UnixMilli(1515276000000).UTC()

	assert.Len(t, FilterWindow(points, &start, nil), 2, "missing end bound disables filtering")
	assert.Len(t, FilterWindow(points, nil, &start), 2, "missing start bound disables filtering")
	assert.Len(t, FilterWindow(points, nil, nil), 2)
}
