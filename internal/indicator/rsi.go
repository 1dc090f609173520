package indicator

import "errors"

// DefaultRSIPeriod is the conventional 14-bar RSI window.
const DefaultRSIPeriod = 14

// RSI computes the relative strength index from the first period price
// changes, i.e. the oldest period+1 samples of the series. Requires at least
// period+1 prices. Result is always within [0, 100].
func RSI(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period+1 {
		return 0, ErrInsufficientData
	}

	var gains, losses float64
	for i := 1; i <= period; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
