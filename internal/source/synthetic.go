package source

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"TrendSentry/internal/model"
)

// SyntheticSource generates a deterministic random-walk series per
// (symbol, timeframe). The same pair always yields the same series, so runs
// without a live data source stay reproducible.
type SyntheticSource struct {
	BasePrice float64
	Points    int
}

// NewSyntheticSource creates a synthetic source producing points bars around
// basePrice.
func NewSyntheticSource(basePrice float64, points int) *SyntheticSource {
	if basePrice <= 0 {
		basePrice = 100
	}
	if points <= 0 {
		points = 200
	}
	return &SyntheticSource{BasePrice: basePrice, Points: points}
}

func (s *SyntheticSource) Name() string { return "synthetic" }

func (s *SyntheticSource) Fetch(_ context.Context, symbol, timeframe string) (*model.PriceSeries, error) {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	h.Write([]byte{0})
	h.Write([]byte(timeframe))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	prices := make([]float64, s.Points)
	price := s.BasePrice * (0.8 + 0.4*rng.Float64())
	for i := range prices {
		price *= 1 + (rng.Float64()-0.5)*0.02
		if price < 0.01 {
			price = 0.01
		}
		prices[i] = price
	}

	return &model.PriceSeries{
		Symbol:    symbol,
		Timeframe: timeframe,
		Prices:    prices,
		FetchedAt: time.Now(),
	}, nil
}
