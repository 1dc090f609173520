package model

import "time"

// PriceSeries holds an ordered close-price sequence for one instrument and
// timeframe, oldest first.
type PriceSeries struct {
	Symbol    string
	Timeframe string
	Prices    []float64
	FetchedAt time.Time
}

// Len returns the number of price points.
func (s *PriceSeries) Len() int { return len(s.Prices) }

// Last returns the most recent price, or 0 for an empty series.
func (s *PriceSeries) Last() float64 {
	if len(s.Prices) == 0 {
		return 0
	}
	return s.Prices[len(s.Prices)-1]
}
