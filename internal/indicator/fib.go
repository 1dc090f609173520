package indicator

// FibRatios are the standard retracement fractions, shallowest first.
var FibRatios = []float64{0.236, 0.382, 0.5, 0.618, 0.786}

// FibonacciLevels returns the retracement levels between high and low, in
// FibRatios order: level = high - (high-low)*ratio.
func FibonacciLevels(high, low float64) []float64 {
	diff := high - low
	levels := make([]float64, len(FibRatios))
	for i, r := range FibRatios {
		levels[i] = high - diff*r
	}
	return levels
}
