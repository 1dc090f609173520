package engine

import (
	"context"
	"testing"

	"TrendSentry/internal/model"
	"TrendSentry/internal/source"
)

func fixtureEngine(series map[string][]float64) *Engine {
	return NewEngine(&source.StaticSource{Series: series})
}

func ascending(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i + 1)
	}
	return s
}

func flat(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func hasTag(signals []model.SignalTag, name string) bool {
	for _, s := range signals {
		if s.Name == name {
			return true
		}
	}
	return false
}

func TestAnalyzeOneFetchFailure(t *testing.T) {
	e := fixtureEngine(map[string][]float64{})
	a := e.AnalyzeOne(context.Background(), "BTCUSDT", "1d")
	if a.Decision != model.DecisionInsufficientData {
		t.Fatalf("decision = %s, want INSUFFICIENT_DATA", a.Decision)
	}
	if a.Reason == "" {
		t.Error("expected a reason on fetch failure")
	}
}

func TestAnalyzeOneShortSeries(t *testing.T) {
	e := fixtureEngine(map[string][]float64{
		source.Key("BTCUSDT", "1d"): ascending(19),
	})
	a := e.AnalyzeOne(context.Background(), "BTCUSDT", "1d")
	if a.Decision != model.DecisionInsufficientData {
		t.Fatalf("decision = %s, want INSUFFICIENT_DATA", a.Decision)
	}
	if len(a.Signals) != 0 {
		t.Errorf("no signals expected, got %d", len(a.Signals))
	}
}

func TestAnalyzeOnePartialIndicators(t *testing.T) {
	// Exactly 20 ascending points: MA20 is defined, MA50 and MACD are not.
	e := fixtureEngine(map[string][]float64{
		source.Key("BTCUSDT", "1d"): ascending(20),
	})
	a := e.AnalyzeOne(context.Background(), "BTCUSDT", "1d")

	if a.Decision == model.DecisionInsufficientData {
		t.Fatal("analysis should proceed with partial indicators")
	}
	if !a.Indicators.MA20.Valid {
		t.Error("MA20 should be available at 20 points")
	}
	if a.Indicators.MA50.Valid || a.Indicators.MACD.LineValid {
		t.Error("MA50 and MACD need more than 20 points")
	}
	if !a.Indicators.RSI.Valid || a.Indicators.RSI.Value != 100 {
		t.Errorf("RSI = %+v, want valid 100", a.Indicators.RSI)
	}
	if hasTag(a.Signals, "BULLISH_TREND") || hasTag(a.Signals, "BEARISH_TREND") {
		t.Error("trend tag must be omitted when MA50 is unavailable")
	}
	if !hasTag(a.Signals, "OVERBOUGHT") {
		t.Error("RSI 100 should tag OVERBOUGHT")
	}
	if a.CurrentPrice != 20 {
		t.Errorf("current price = %.2f, want 20", a.CurrentPrice)
	}
}

func TestAnalyzeOneFlatSeries(t *testing.T) {
	e := fixtureEngine(map[string][]float64{
		source.Key("ETHUSDT", "4h"): flat(100, 5),
	})
	a := e.AnalyzeOne(context.Background(), "ETHUSDT", "4h")

	if a.Indicators.RSI.Value != 100 {
		t.Errorf("flat-series RSI = %.2f, want 100", a.Indicators.RSI.Value)
	}
	bb := a.Indicators.Bollinger
	if bb.Upper != 5 || bb.Middle != 5 || bb.Lower != 5 {
		t.Errorf("flat-series bands = %+v, want all 5", bb)
	}
	if !hasTag(a.Signals, "WITHIN_BANDS") {
		t.Error("price equal to the bands is within them")
	}
	// OVERBOUGHT + BEARISH_TREND + BEARISH_MACD, no bullish votes.
	if a.Decision != model.DecisionSell || a.Confidence != model.ConfidenceMedium {
		t.Errorf("decision = %s/%s, want SELL/MEDIUM", a.Decision, a.Confidence)
	}
	if len(a.Swings) != 0 {
		t.Errorf("flat series has ties everywhere, got %d swings", len(a.Swings))
	}
}

func TestDecideMargins(t *testing.T) {
	bull := model.SignalTag{Name: "B", Polarity: model.PolarityBullish}
	bear := model.SignalTag{Name: "S", Polarity: model.PolarityBearish}

	cases := []struct {
		name       string
		signals    []model.SignalTag
		decision   model.Decision
		confidence model.Confidence
	}{
		{"five bullish", []model.SignalTag{bull, bull, bull, bull, bull}, model.DecisionBuy, model.ConfidenceHigh},
		{"three bullish", []model.SignalTag{bull, bull, bull}, model.DecisionBuy, model.ConfidenceMedium},
		{"margin of one holds", []model.SignalTag{bull, bull, bear}, model.DecisionHold, model.ConfidenceLow},
		{"five bearish", []model.SignalTag{bear, bear, bear, bear, bear}, model.DecisionSell, model.ConfidenceHigh},
		{"empty", nil, model.DecisionHold, model.ConfidenceLow},
	}
	for _, tc := range cases {
		d, c := decide(tc.signals)
		if d != tc.decision || c != tc.confidence {
			t.Errorf("%s: got %s/%s, want %s/%s", tc.name, d, c, tc.decision, tc.confidence)
		}
	}
}

func TestAggregate(t *testing.T) {
	mk := func(ds ...model.Decision) []model.Analysis {
		out := make([]model.Analysis, len(ds))
		for i, d := range ds {
			out[i] = model.Analysis{Symbol: "BTCUSDT", Decision: d}
		}
		return out
	}

	agg := Aggregate("BTCUSDT", mk(model.DecisionBuy, model.DecisionBuy, model.DecisionHold))
	if agg.Decision != model.DecisionBuy {
		t.Errorf("[BUY,BUY,HOLD] = %s, want BUY", agg.Decision)
	}

	agg = Aggregate("BTCUSDT", mk(model.DecisionBuy, model.DecisionSell, model.DecisionHold))
	if agg.Decision != model.DecisionHold {
		t.Errorf("[BUY,SELL,HOLD] = %s, want HOLD", agg.Decision)
	}

	agg = Aggregate("BTCUSDT", mk(model.DecisionBuy, model.DecisionBuy, model.DecisionInsufficientData))
	if agg.Decision != model.DecisionBuy {
		t.Errorf("insufficient-data analyses must not vote, got %s", agg.Decision)
	}
	if agg.ValidTimeframes != 2 || agg.TotalTimeframes != 3 {
		t.Errorf("valid/total = %d/%d, want 2/3", agg.ValidTimeframes, agg.TotalTimeframes)
	}

	agg = Aggregate("BTCUSDT", nil)
	if agg.Decision != model.DecisionHold || agg.ValidTimeframes != 0 {
		t.Errorf("empty aggregate = %+v, want HOLD with no valid timeframes", agg)
	}
}

func TestAnalyzeAllOrder(t *testing.T) {
	e := fixtureEngine(map[string][]float64{
		source.Key("BTCUSDT", "1d"): ascending(60),
		source.Key("BTCUSDT", "4h"): ascending(60),
		source.Key("ETHUSDT", "1d"): flat(60, 5),
		// ETHUSDT 4h missing on purpose.
	})
	results := e.AnalyzeAll(context.Background(), []string{"BTCUSDT", "ETHUSDT"}, []string{"1d", "4h"})
	if len(results) != 4 {
		t.Fatalf("expected 4 analyses, got %d", len(results))
	}
	wantPairs := [][2]string{{"BTCUSDT", "1d"}, {"BTCUSDT", "4h"}, {"ETHUSDT", "1d"}, {"ETHUSDT", "4h"}}
	for i, w := range wantPairs {
		if results[i].Symbol != w[0] || results[i].Timeframe != w[1] {
			t.Errorf("result[%d] = %s/%s, want %s/%s", i, results[i].Symbol, results[i].Timeframe, w[0], w[1])
		}
	}
	if results[3].Decision != model.DecisionInsufficientData {
		t.Errorf("missing pair decision = %s, want INSUFFICIENT_DATA", results[3].Decision)
	}
}

func TestScanForAlerts(t *testing.T) {
	analyses := []model.Analysis{
		{Symbol: "BTCUSDT", Timeframe: "1d", Confidence: model.ConfidenceHigh, Decision: model.DecisionBuy},
		{Symbol: "ETHUSDT", Timeframe: "1d", Confidence: model.ConfidenceMedium, Decision: model.DecisionBuy},
		{Symbol: "SOLUSDT", Timeframe: "4h", Confidence: model.ConfidenceHigh, Decision: model.DecisionSell},
		{Symbol: "BTCUSDT", Timeframe: "1w", Confidence: model.ConfidenceHigh, Decision: model.DecisionSell},
	}
	alerts := ScanForAlerts(analyses)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}
	// Grouped by instrument: both BTCUSDT alerts precede SOLUSDT.
	if alerts[0].Symbol != "BTCUSDT" || alerts[1].Symbol != "BTCUSDT" || alerts[2].Symbol != "SOLUSDT" {
		t.Errorf("alerts not grouped by instrument: %v, %v, %v",
			alerts[0].Symbol, alerts[1].Symbol, alerts[2].Symbol)
	}
	// Polarity does not matter, only confidence.
	if alerts[1].Analysis.Decision != model.DecisionSell {
		t.Errorf("SELL alert dropped: %+v", alerts[1])
	}
}
