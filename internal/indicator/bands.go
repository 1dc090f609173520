package indicator

import (
	"math"

	"TrendSentry/internal/model"
)

// Bollinger default parameters (20-bar window, 2 standard deviations).
const (
	DefaultBollingerPeriod = 20
	DefaultBollingerStdDev = 2.0
)

// BollingerBands computes the middle band (SMA) and upper/lower bands at
// stdDev population standard deviations over the last period prices.
func BollingerBands(prices []float64, period int, stdDev float64) (model.BollingerBands, error) {
	middle, err := MovingAverage(prices, period)
	if err != nil {
		return model.BollingerBands{}, err
	}

	variance := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		d := prices[i] - middle
		variance += d * d
	}
	std := math.Sqrt(variance / float64(period))

	return model.BollingerBands{
		Upper:  middle + stdDev*std,
		Middle: middle,
		Lower:  middle - stdDev*std,
		Valid:  true,
	}, nil
}
