package indicator

import "errors"

// ErrInsufficientData is returned when a series is shorter than an
// indicator's required window. Callers degrade to an unavailable reading
// instead of aborting the analysis.
var ErrInsufficientData = errors.New("insufficient data for indicator")

// MovingAverage computes the arithmetic mean of the last period prices.
func MovingAverage(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// ExponentialMovingAverage computes an EMA seeded at the first price and
// smoothed over the entire series, so the result carries the full history
// rather than just the last period elements.
func ExponentialMovingAverage(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, ErrInsufficientData
	}
	k := 2.0 / float64(period+1)
	ema := prices[0]
	for i := 1; i < len(prices); i++ {
		ema = prices[i]*k + ema*(1-k)
	}
	return ema, nil
}
