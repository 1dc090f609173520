package source

import (
	"context"
	"testing"
)

func TestSyntheticSourceDeterministic(t *testing.T) {
	s := NewSyntheticSource(100, 150)

	a, err := s.Fetch(context.Background(), "BTCUSDT", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := s.Fetch(context.Background(), "BTCUSDT", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.Prices) != 150 {
		t.Fatalf("expected 150 prices, got %d", len(a.Prices))
	}
	for i := range a.Prices {
		if a.Prices[i] != b.Prices[i] {
			t.Fatalf("series not deterministic at %d: %.6f != %.6f", i, a.Prices[i], b.Prices[i])
		}
		if a.Prices[i] <= 0 {
			t.Fatalf("non-positive price at %d: %.6f", i, a.Prices[i])
		}
	}

	// A different pair yields a different walk.
	c, err := s.Fetch(context.Background(), "BTCUSDT", "4h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	same := true
	for i := range a.Prices {
		if a.Prices[i] != c.Prices[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different timeframes produced identical series")
	}
}

func TestStaticSourceMissingPair(t *testing.T) {
	s := &StaticSource{Series: map[string][]float64{}}
	if _, err := s.Fetch(context.Background(), "ETHUSDT", "1d"); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}
