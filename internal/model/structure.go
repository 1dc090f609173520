package model

// SwingKind marks a swing as a local high or a local low.
type SwingKind string

const (
	SwingHigh SwingKind = "HIGH"
	SwingLow  SwingKind = "LOW"
)

// Swing is a local price extremum over a symmetric window.
type Swing struct {
	Kind  SwingKind
	Index int
	Price float64
}

// BlockKind marks the polarity of an order block.
type BlockKind string

const (
	BlockBullish BlockKind = "BULLISH"
	BlockBearish BlockKind = "BEARISH"
)

// OrderBlock is a coarse zone between two consecutive extrema of the same
// polarity. Confirmed is reserved and stays false; no confirmation rule is
// applied anywhere.
type OrderBlock struct {
	Kind      BlockKind
	High      float64
	Low       float64
	Confirmed bool
}
