package structure

import "TrendSentry/internal/model"

// DefaultSwingWindow is the symmetric lookback/lookahead used when scanning
// for local extrema.
const DefaultSwingWindow = 5

// FindSwings scans for local extrema over a symmetric window. An index is a
// high swing only when every other value in [i-window, i+window] is strictly
// below it, a low swing only when every other value is strictly above it.
// A tie with any neighbor disqualifies the index entirely.
func FindSwings(prices []float64, window int) []model.Swing {
	var swings []model.Swing
	if window <= 0 || len(prices) < 2*window+1 {
		return swings
	}

	for i := window; i < len(prices)-window; i++ {
		isHigh, isLow := true, true
		for j := i - window; j <= i+window; j++ {
			if j == i {
				continue
			}
			if prices[j] >= prices[i] {
				isHigh = false
			}
			if prices[j] <= prices[i] {
				isLow = false
			}
		}
		if isHigh {
			swings = append(swings, model.Swing{Kind: model.SwingHigh, Index: i, Price: prices[i]})
		} else if isLow {
			swings = append(swings, model.Swing{Kind: model.SwingLow, Index: i, Price: prices[i]})
		}
	}
	return swings
}

// IdentifyOrderBlocks derives coarse zones from a swing sequence in one
// left-to-right pass. A high swing breaking above the running high emits a
// bullish block spanning from the prior high down to the new one; low swings
// breaking below the running low emit bearish blocks with the roles inverted.
// Ties neither emit nor move the tracked swing.
func IdentifyOrderBlocks(swings []model.Swing) []model.OrderBlock {
	blocks := []model.OrderBlock{}
	var lastHigh, lastLow *model.Swing

	for i := range swings {
		s := swings[i]
		switch s.Kind {
		case model.SwingHigh:
			if lastHigh != nil && s.Price > lastHigh.Price {
				blocks = append(blocks, model.OrderBlock{
					Kind: model.BlockBullish,
					High: lastHigh.Price,
					Low:  s.Price,
				})
			}
			if lastHigh == nil || s.Price > lastHigh.Price {
				lastHigh = &swings[i]
			}
		case model.SwingLow:
			if lastLow != nil && s.Price < lastLow.Price {
				blocks = append(blocks, model.OrderBlock{
					Kind: model.BlockBearish,
					Low:  lastLow.Price,
					High: s.Price,
				})
			}
			if lastLow == nil || s.Price < lastLow.Price {
				lastLow = &swings[i]
			}
		}
	}
	return blocks
}
