package indicator

// MACD default periods (12, 26, 9).
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// MACDLine computes the MACD line (fast EMA minus slow EMA). Requires at
// least slow prices. The signal line and histogram need a retained history of
// MACD-line values, which nothing keeps, so only the line is produced.
func MACDLine(prices []float64, fast, slow int) (float64, error) {
	if len(prices) < slow {
		return 0, ErrInsufficientData
	}
	fastEMA, err := ExponentialMovingAverage(prices, fast)
	if err != nil {
		return 0, err
	}
	slowEMA, err := ExponentialMovingAverage(prices, slow)
	if err != nil {
		return 0, err
	}
	return fastEMA - slowEMA, nil
}
