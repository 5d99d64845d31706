package scrape

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/veiloq/coinmarket/pkg/market"
)

// Graph decodes a graph endpoint payload: named channels mapped to arrays
// of [millisecond-epoch, value] pairs, in upstream order.
func Graph(raw string) (map[string][]market.GraphPoint, error) {
	var payload map[string][][2]float64
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decoding graph payload: %w", err)
	}

	channels := make(map[string][]market.GraphPoint, len(payload))
	for name, pairs := range payload {
		points := make([]market.GraphPoint, 0, len(pairs))
		for _, p := range pairs {
			points = append(points, market.GraphPoint{
				Time:  time.UnixMilli(int64(p[0])).UTC(),
				Value: p[1],
			})
		}
		channels[name] = points
	}
	return channels, nil
}

// FilterWindow drops points outside [start, end], inclusive. Filtering
// applies only when both bounds are supplied; with either bound absent the
// series passes through untouched.
func FilterWindow(points []market.GraphPoint, start, end *time.Time) []market.GraphPoint {
	if start == nil || end == nil {
		return points
	}
	filtered := make([]market.GraphPoint, 0, len(points))
	for _, p := range points {
		if p.Time.Before(*start) || p.Time.After(*end) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
