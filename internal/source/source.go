package source

import (
	"context"
	"errors"
	"fmt"

	"TrendSentry/internal/model"
)

// ErrDataUnavailable signals that a price series could not be obtained. The
// engine downgrades it to an INSUFFICIENT_DATA analysis, never a fault.
var ErrDataUnavailable = errors.New("price data unavailable")

// Source supplies ordered close-price history for an (instrument, timeframe)
// pair. Implementations decide how many points to return and whether to cache.
type Source interface {
	Fetch(ctx context.Context, symbol, timeframe string) (*model.PriceSeries, error)
	Name() string
}

// StaticSource returns pre-loaded fixture series, for tests and dry runs.
type StaticSource struct {
	Series map[string][]float64 // keyed by symbol|timeframe
}

func (s *StaticSource) Name() string { return "static" }

// Key builds the lookup key for a fixture entry.
func Key(symbol, timeframe string) string { return symbol + "|" + timeframe }

func (s *StaticSource) Fetch(_ context.Context, symbol, timeframe string) (*model.PriceSeries, error) {
	prices, ok := s.Series[Key(symbol, timeframe)]
	if !ok {
		return nil, fmt.Errorf("%w: no fixture for %s %s", ErrDataUnavailable, symbol, timeframe)
	}
	return &model.PriceSeries{Symbol: symbol, Timeframe: timeframe, Prices: prices}, nil
}
