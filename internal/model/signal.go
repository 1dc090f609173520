package model

import "time"

// Decision is the categorical outcome of one analysis.
type Decision string

const (
	DecisionBuy              Decision = "BUY"
	DecisionSell             Decision = "SELL"
	DecisionHold             Decision = "HOLD"
	DecisionInsufficientData Decision = "INSUFFICIENT_DATA"
)

// Confidence is a coarse strength label derived from signal-count margins.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// Polarity classifies how a signal tag leans when counting votes.
type Polarity int

const (
	PolarityNeutral Polarity = iota
	PolarityBullish
	PolarityBearish
)

// SignalTag is a discrete label summarizing one indicator reading, carrying
// its vote polarity explicitly.
type SignalTag struct {
	Name     string
	Polarity Polarity
}

// Signal tags emitted by the decision engine, at most one per rule group.
var (
	TagBullishTrend    = SignalTag{Name: "BULLISH_TREND", Polarity: PolarityBullish}
	TagBearishTrend    = SignalTag{Name: "BEARISH_TREND", Polarity: PolarityBearish}
	TagOversold        = SignalTag{Name: "OVERSOLD", Polarity: PolarityBullish}
	TagOverbought      = SignalTag{Name: "OVERBOUGHT", Polarity: PolarityBearish}
	TagNeutralRSI      = SignalTag{Name: "NEUTRAL_RSI", Polarity: PolarityNeutral}
	TagBullishMACD     = SignalTag{Name: "BULLISH_MACD", Polarity: PolarityBullish}
	TagBearishMACD     = SignalTag{Name: "BEARISH_MACD", Polarity: PolarityBearish}
	TagResistanceTouch = SignalTag{Name: "RESISTANCE_TOUCH", Polarity: PolarityNeutral}
	TagSupportTouch    = SignalTag{Name: "SUPPORT_TOUCH", Polarity: PolarityNeutral}
	TagWithinBands     = SignalTag{Name: "WITHIN_BANDS", Polarity: PolarityNeutral}
)

// BollingerBands holds the three band values. Valid is false when the series
// was shorter than the band period.
type BollingerBands struct {
	Upper  float64
	Middle float64
	Lower  float64
	Valid  bool
}

// MACDResult holds the MACD line. The signal line and histogram require a
// retained history of MACD-line values that nothing keeps, so SignalValid and
// HistogramValid are always false.
type MACDResult struct {
	Line           float64
	LineValid      bool
	Signal         float64
	SignalValid    bool
	Histogram      float64
	HistogramValid bool
}

// IndicatorValue is a scalar indicator reading with availability.
type IndicatorValue struct {
	Value float64
	Valid bool
}

// IndicatorSet gathers every indicator computed for one analysis. An invalid
// entry means the series was too short, never an approximated value.
type IndicatorSet struct {
	MA20      IndicatorValue
	MA50      IndicatorValue
	RSI       IndicatorValue
	EMA12     IndicatorValue
	EMA26     IndicatorValue
	Bollinger BollingerBands
	MACD      MACDResult
}

// Analysis is the atomic output of one (instrument, timeframe) evaluation.
type Analysis struct {
	Symbol       string
	Timeframe    string
	CurrentPrice float64
	Decision     Decision
	Confidence   Confidence
	Signals      []SignalTag
	Indicators   IndicatorSet
	Swings       []Swing
	OrderBlocks  []OrderBlock
	FibLevels    []float64 // retracements of the series range, shallowest first
	Reason       string    // set when Decision == INSUFFICIENT_DATA
	AnalyzedAt   time.Time
}

// AggregatedDecision is the majority vote over one instrument's analyses
// across timeframes.
type AggregatedDecision struct {
	Symbol          string
	Decision        Decision
	ValidTimeframes int
	TotalTimeframes int
}

// Alert is a high-confidence analysis selected by an alert scan.
type Alert struct {
	Symbol    string
	Timeframe string
	Analysis  Analysis
}
