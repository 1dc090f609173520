package scheduler

import (
	"context"
	"strings"
	"testing"

	"TrendSentry/internal/engine"
	"TrendSentry/internal/recorder"
	"TrendSentry/internal/source"
	"TrendSentry/internal/subs"
)

func testScheduler() *Scheduler {
	series := map[string][]float64{}
	for _, tf := range []string{"1d", "4h"} {
		prices := make([]float64, 60)
		for i := range prices {
			prices[i] = 100 + float64(i)
		}
		series[source.Key("BTCUSDT", tf)] = prices
	}
	eng := engine.NewEngine(&source.StaticSource{Series: series})
	return NewScheduler(context.Background(), eng, subs.NewMemoryRepository(), nil,
		recorder.NewNoopRecorder(), []string{"BTCUSDT"}, []string{"1d", "4h"})
}

func TestHandleCommandSubscribeFlow(t *testing.T) {
	s := testScheduler()

	reply := s.HandleCommand("42", "/subscribe")
	if !strings.Contains(reply, "Subscribed") {
		t.Errorf("unexpected subscribe reply: %s", reply)
	}
	if _, ok, _ := s.Subs.Get("42"); !ok {
		t.Error("chat 42 should be stored")
	}

	reply = s.HandleCommand("42", "/status")
	if !strings.Contains(reply, "Subscribers: 1") {
		t.Errorf("unexpected status reply: %s", reply)
	}

	reply = s.HandleCommand("42", "/unsubscribe")
	if !strings.Contains(reply, "Unsubscribed") {
		t.Errorf("unexpected unsubscribe reply: %s", reply)
	}
	if _, ok, _ := s.Subs.Get("42"); ok {
		t.Error("chat 42 should be gone")
	}
}

func TestHandleCommandAnalyze(t *testing.T) {
	s := testScheduler()

	reply := s.HandleCommand("42", "/analyze btcusdt")
	if !strings.Contains(reply, "BTCUSDT") || !strings.Contains(reply, "Overall") {
		t.Errorf("unexpected analyze reply: %s", reply)
	}

	reply = s.HandleCommand("42", "/analyze DOGEUSDT")
	if !strings.Contains(reply, "Unknown instrument") {
		t.Errorf("unexpected reply for untracked symbol: %s", reply)
	}

	reply = s.HandleCommand("42", "/analyze")
	if !strings.Contains(reply, "Usage") {
		t.Errorf("unexpected usage reply: %s", reply)
	}
}

func TestHandleCommandUnknown(t *testing.T) {
	s := testScheduler()
	reply := s.HandleCommand("42", "/bogus")
	if !strings.Contains(reply, "Available commands") {
		t.Errorf("unknown command should return help, got: %s", reply)
	}
}
