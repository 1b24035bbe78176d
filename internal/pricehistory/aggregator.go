// Package pricehistory turns raw price observations into the series
// served by the API.
package pricehistory

import (
	"context"
	"sort"
	"time"

	"github.com/superchain/token-explorer/internal/adapter"
	"github.com/superchain/token-explorer/internal/store"
	"github.com/superchain/token-explorer/internal/store/schema"
)

// Range selects the window and resolution of a price series.
type Range string

const (
	Range24h Range = "24h"
	Range7d  Range = "7d"
	Range30d Range = "30d"
)

// ParseRange maps a query string to a Range, defaulting to 24h for
// anything unrecognized.
func ParseRange(s string) Range {
	switch Range(s) {
	case Range7d:
		return Range7d
	case Range30d:
		return Range30d
	default:
		return Range24h
	}
}

func (r Range) window() time.Duration {
	switch r {
	case Range7d:
		return 7 * 24 * time.Hour
	case Range30d:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Point is one entry of an aggregated price series.
type Point struct {
	PriceUSD   float64   `json:"priceUSD"`
	MarketCap  *float64  `json:"marketCap,omitempty"`
	Volume24h  *float64  `json:"volume24h,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Aggregator produces price series for tokens over standard ranges.
type Aggregator struct {
	store store.Store
	clock adapter.Clock
}

// NewAggregator creates an aggregator over the given store.
func NewAggregator(s store.Store, clock adapter.Clock) *Aggregator {
	return &Aggregator{store: s, clock: clock}
}

// Series returns the price series for a token over the given range.
// The 24h range returns every stored observation; 7d and 30d reduce to
// one point per calendar day, keeping the latest observation of each
// day. Points are ascending by time.
func (a *Aggregator) Series(ctx context.Context, tokenID uint64, r Range) ([]Point, error) {
	cutoff := a.clock.Now().Add(-r.window())
	raw, err := a.store.QueryPricePointsSince(ctx, tokenID, cutoff)
	if err != nil {
		return nil, err
	}

	if r == Range24h {
		return toPoints(raw), nil
	}
	return reduceDaily(raw), nil
}

func toPoints(raw []schema.TokenPrice) []Point {
	points := make([]Point, 0, len(raw))
	for _, p := range raw {
		points = append(points, Point{
			PriceUSD:   p.PriceUSD,
			MarketCap:  p.MarketCap,
			Volume24h:  p.Volume24h,
			RecordedAt: p.RecordedAt,
		})
	}
	return points
}

// reduceDaily keeps the latest observation per UTC calendar day.
func reduceDaily(raw []schema.TokenPrice) []Point {
	latest := make(map[string]schema.TokenPrice)
	for _, p := range raw {
		day := p.RecordedAt.UTC().Format("2006-01-02")
		existing, ok := latest[day]
		if !ok || p.RecordedAt.After(existing.RecordedAt) {
			latest[day] = p
		}
	}

	reduced := make([]schema.TokenPrice, 0, len(latest))
	for _, p := range latest {
		reduced = append(reduced, p)
	}
	sort.Slice(reduced, func(i, j int) bool {
		return reduced[i].RecordedAt.Before(reduced[j].RecordedAt)
	})
	return toPoints(reduced)
}
