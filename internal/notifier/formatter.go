package notifier

import (
	"fmt"
	"strings"
	"time"

	"TrendSentry/internal/model"

	"github.com/dustin/go-humanize"
)

func decisionIcon(d model.Decision) string {
	switch d {
	case model.DecisionBuy:
		return "🟢"
	case model.DecisionSell:
		return "🔴"
	case model.DecisionInsufficientData:
		return "⚠️"
	default:
		return "⚪"
	}
}

func price(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// FormatAnalysis renders one per-timeframe analysis.
func FormatAnalysis(a model.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s <b>%s</b> [%s] — %s", decisionIcon(a.Decision), a.Symbol, a.Timeframe, a.Decision))
	if a.Decision == model.DecisionInsufficientData {
		b.WriteString(fmt.Sprintf("\n   %s\n", a.Reason))
		return b.String()
	}
	b.WriteString(fmt.Sprintf(" (%s)\n", a.Confidence))
	b.WriteString(fmt.Sprintf("   Price: %s\n", price(a.CurrentPrice)))

	if len(a.Signals) > 0 {
		names := make([]string, len(a.Signals))
		for i, s := range a.Signals {
			names[i] = s.Name
		}
		b.WriteString(fmt.Sprintf("   Signals: %s\n", strings.Join(names, ", ")))
	}

	ind := a.Indicators
	if ind.RSI.Valid {
		b.WriteString(fmt.Sprintf("   RSI: %.1f", ind.RSI.Value))
	}
	if ind.MA20.Valid && ind.MA50.Valid {
		b.WriteString(fmt.Sprintf(" | MA20: %s | MA50: %s", price(ind.MA20.Value), price(ind.MA50.Value)))
	}
	if ind.MACD.LineValid {
		b.WriteString(fmt.Sprintf(" | MACD: %+.2f", ind.MACD.Line))
	}
	b.WriteString("\n")

	if ind.Bollinger.Valid {
		b.WriteString(fmt.Sprintf("   Bands: %s / %s / %s\n",
			price(ind.Bollinger.Lower), price(ind.Bollinger.Middle), price(ind.Bollinger.Upper)))
	}
	if len(a.Swings) > 0 {
		b.WriteString(fmt.Sprintf("   Structure: %d swings, %d order blocks\n", len(a.Swings), len(a.OrderBlocks)))
	}
	return b.String()
}

// FormatInstrumentReport renders all timeframes of one instrument plus the
// aggregated verdict.
func FormatInstrumentReport(analyses []model.Analysis, agg model.AggregatedDecision) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", agg.Symbol, time.Now().Format("2006-01-02 15:04")))

	for _, a := range analyses {
		b.WriteString(FormatAnalysis(a))
	}

	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("%s Overall: <b>%s</b> (%d/%d timeframes)\n",
		decisionIcon(agg.Decision), agg.Decision, agg.ValidTimeframes, agg.TotalTimeframes))
	return b.String()
}

// FormatAlerts renders an alert digest. Alerts arrive already grouped by
// instrument.
func FormatAlerts(alerts []model.Alert) string {
	if len(alerts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🚨 <b>High-confidence signals</b> | %s\n\n", time.Now().Format("2006-01-02 15:04")))

	last := ""
	for _, al := range alerts {
		if al.Symbol != last {
			b.WriteString(fmt.Sprintf("<b>%s</b>\n", al.Symbol))
			last = al.Symbol
		}
		b.WriteString(fmt.Sprintf("  %s %s [%s] @ %s\n",
			decisionIcon(al.Analysis.Decision), al.Analysis.Decision, al.Timeframe, price(al.Analysis.CurrentPrice)))
	}
	return b.String()
}

// FormatHelp lists the available commands.
func FormatHelp() string {
	return strings.Join([]string{
		"Available commands:",
		"• /analyze SYMBOL — full breakdown for one instrument",
		"• /scan — run an alert scan now",
		"• /subscribe — receive scheduled alerts in this chat",
		"• /unsubscribe — stop receiving alerts",
		"• /status — bot status",
		"• /help — this message",
	}, "\n")
}
