package engine

import (
	"context"
	"sync"
	"time"

	"TrendSentry/internal/indicator"
	"TrendSentry/internal/model"
	"TrendSentry/internal/source"
	"TrendSentry/internal/structure"
)

// MinSeriesLength is the minimum number of price points for any non-trivial
// analysis. Individual indicators may require more and degrade on their own.
const MinSeriesLength = 20

// defaultWorkers bounds the AnalyzeAll fan-out.
const defaultWorkers = 8

// Engine turns price series into categorical trading decisions. It holds no
// cross-call state; every method is safe for concurrent and overlapping use.
type Engine struct {
	Source  source.Source
	Workers int
}

// NewEngine creates an Engine reading from the given price source.
func NewEngine(src source.Source) *Engine {
	return &Engine{Source: src, Workers: defaultWorkers}
}

// AnalyzeOne evaluates a single (instrument, timeframe) pair. A failed fetch
// or a series shorter than MinSeriesLength yields an INSUFFICIENT_DATA
// analysis; a series too short for an individual indicator only marks that
// indicator unavailable.
func (e *Engine) AnalyzeOne(ctx context.Context, symbol, timeframe string) model.Analysis {
	a := model.Analysis{
		Symbol:     symbol,
		Timeframe:  timeframe,
		AnalyzedAt: time.Now(),
	}

	series, err := e.Source.Fetch(ctx, symbol, timeframe)
	if err != nil {
		a.Decision = model.DecisionInsufficientData
		a.Confidence = model.ConfidenceLow
		a.Reason = err.Error()
		return a
	}
	if series.Len() < MinSeriesLength {
		a.Decision = model.DecisionInsufficientData
		a.Confidence = model.ConfidenceLow
		a.Reason = "series too short"
		return a
	}

	prices := series.Prices
	a.CurrentPrice = series.Last()
	a.Indicators = computeIndicators(prices)
	a.Swings = structure.FindSwings(prices, structure.DefaultSwingWindow)
	a.OrderBlocks = structure.IdentifyOrderBlocks(a.Swings)
	a.FibLevels = indicator.FibonacciLevels(seriesRange(prices))

	a.Signals = buildSignals(a.CurrentPrice, a.Indicators)
	a.Decision, a.Confidence = decide(a.Signals)
	return a
}

// AnalyzeAll evaluates every (instrument, timeframe) pair concurrently and
// returns results in configured pair order.
func (e *Engine) AnalyzeAll(ctx context.Context, symbols, timeframes []string) []model.Analysis {
	type job struct {
		idx               int
		symbol, timeframe string
	}

	jobs := make([]job, 0, len(symbols)*len(timeframes))
	for _, sym := range symbols {
		for _, tf := range timeframes {
			jobs = append(jobs, job{idx: len(jobs), symbol: sym, timeframe: tf})
		}
	}

	results := make([]model.Analysis, len(jobs))
	jobCh := make(chan job)

	workers := e.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				results[j.idx] = e.AnalyzeOne(ctx, j.symbol, j.timeframe)
			}
		}()
	}

	for _, j := range jobs {
		select {
		case <-ctx.Done():
			close(jobCh)
			wg.Wait()
			return results
		case jobCh <- j:
		}
	}
	close(jobCh)
	wg.Wait()
	return results
}

// Aggregate takes one instrument's analyses across timeframes and reports the
// plurality decision. INSUFFICIENT_DATA analyses do not vote; a tie for the
// lead, or no valid analyses at all, yields HOLD.
func Aggregate(symbol string, analyses []model.Analysis) model.AggregatedDecision {
	agg := model.AggregatedDecision{
		Symbol:          symbol,
		Decision:        model.DecisionHold,
		TotalTimeframes: len(analyses),
	}

	votes := map[model.Decision]int{}
	for _, a := range analyses {
		if a.Decision == model.DecisionInsufficientData {
			continue
		}
		agg.ValidTimeframes++
		votes[a.Decision]++
	}

	best, bestCount, tied := model.DecisionHold, 0, false
	for _, d := range []model.Decision{model.DecisionBuy, model.DecisionSell, model.DecisionHold} {
		switch {
		case votes[d] > bestCount:
			best, bestCount, tied = d, votes[d], false
		case votes[d] == bestCount && votes[d] > 0:
			tied = true
		}
	}
	if bestCount > 0 && !tied {
		agg.Decision = best
	}
	return agg
}

// ScanForAlerts selects every confidence-HIGH analysis, grouped by instrument
// in first-appearance order.
func ScanForAlerts(analyses []model.Analysis) []model.Alert {
	bySymbol := map[string][]model.Alert{}
	var order []string
	for _, a := range analyses {
		if a.Confidence != model.ConfidenceHigh {
			continue
		}
		if _, seen := bySymbol[a.Symbol]; !seen {
			order = append(order, a.Symbol)
		}
		bySymbol[a.Symbol] = append(bySymbol[a.Symbol], model.Alert{
			Symbol:    a.Symbol,
			Timeframe: a.Timeframe,
			Analysis:  a,
		})
	}

	var alerts []model.Alert
	for _, sym := range order {
		alerts = append(alerts, bySymbol[sym]...)
	}
	return alerts
}

func computeIndicators(prices []float64) model.IndicatorSet {
	var set model.IndicatorSet

	if v, err := indicator.MovingAverage(prices, 20); err == nil {
		set.MA20 = model.IndicatorValue{Value: v, Valid: true}
	}
	if v, err := indicator.MovingAverage(prices, 50); err == nil {
		set.MA50 = model.IndicatorValue{Value: v, Valid: true}
	}
	if v, err := indicator.RSI(prices, indicator.DefaultRSIPeriod); err == nil {
		set.RSI = model.IndicatorValue{Value: v, Valid: true}
	}
	if v, err := indicator.ExponentialMovingAverage(prices, indicator.DefaultMACDFast); err == nil {
		set.EMA12 = model.IndicatorValue{Value: v, Valid: true}
	}
	if v, err := indicator.ExponentialMovingAverage(prices, indicator.DefaultMACDSlow); err == nil {
		set.EMA26 = model.IndicatorValue{Value: v, Valid: true}
	}
	if bb, err := indicator.BollingerBands(prices, indicator.DefaultBollingerPeriod, indicator.DefaultBollingerStdDev); err == nil {
		set.Bollinger = bb
	}
	if line, err := indicator.MACDLine(prices, indicator.DefaultMACDFast, indicator.DefaultMACDSlow); err == nil {
		set.MACD = model.MACDResult{Line: line, LineValid: true}
	}
	return set
}

// buildSignals appends at most one tag per rule group, in fixed group order.
func buildSignals(price float64, ind model.IndicatorSet) []model.SignalTag {
	var signals []model.SignalTag

	// Trend: needs both moving averages.
	if ind.MA20.Valid && ind.MA50.Valid {
		if ind.MA20.Value > ind.MA50.Value {
			signals = append(signals, model.TagBullishTrend)
		} else {
			signals = append(signals, model.TagBearishTrend)
		}
	}

	// Momentum.
	if ind.RSI.Valid {
		switch {
		case ind.RSI.Value < 30:
			signals = append(signals, model.TagOversold)
		case ind.RSI.Value > 70:
			signals = append(signals, model.TagOverbought)
		default:
			signals = append(signals, model.TagNeutralRSI)
		}
	}

	// MACD proxy: compares the EMAs directly, not the MACD line.
	if ind.MACD.LineValid {
		if ind.EMA12.Value > ind.EMA26.Value {
			signals = append(signals, model.TagBullishMACD)
		} else {
			signals = append(signals, model.TagBearishMACD)
		}
	}

	// Bands.
	if ind.Bollinger.Valid {
		switch {
		case price > ind.Bollinger.Upper:
			signals = append(signals, model.TagResistanceTouch)
		case price < ind.Bollinger.Lower:
			signals = append(signals, model.TagSupportTouch)
		default:
			signals = append(signals, model.TagWithinBands)
		}
	}

	return signals
}

// decide counts tag polarities and maps the margin to a decision. BUY or SELL
// requires a lead of at least two; the winner at four or more votes is HIGH
// confidence, otherwise MEDIUM. HOLD always carries LOW.
func decide(signals []model.SignalTag) (model.Decision, model.Confidence) {
	var bullish, bearish int
	for _, s := range signals {
		switch s.Polarity {
		case model.PolarityBullish:
			bullish++
		case model.PolarityBearish:
			bearish++
		}
	}

	switch {
	case bullish > bearish+1:
		if bullish >= 4 {
			return model.DecisionBuy, model.ConfidenceHigh
		}
		return model.DecisionBuy, model.ConfidenceMedium
	case bearish > bullish+1:
		if bearish >= 4 {
			return model.DecisionSell, model.ConfidenceHigh
		}
		return model.DecisionSell, model.ConfidenceMedium
	default:
		return model.DecisionHold, model.ConfidenceLow
	}
}

func seriesRange(prices []float64) (high, low float64) {
	high, low = prices[0], prices[0]
	for _, p := range prices[1:] {
		if p > high {
			high = p
		}
		if p < low {
			low = p
		}
	}
	return high, low
}
