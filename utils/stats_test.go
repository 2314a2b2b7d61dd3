package utils

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(2, 10, 100*time.Millisecond)
	if s.AveragePopulation != 10 {
		t.Fatalf("first sample should seed the average, got %v", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("gen/sec = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(3, 20, 0)
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Fatalf("moving average = %v, want 11", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("zero duration must not change gen/sec, got %v", s.GenerationsPerSecond)
	}
	if s.TotalGenerations != 3 || s.ActiveCells != 20 {
		t.Fatalf("got generations=%d active=%d", s.TotalGenerations, s.ActiveCells)
	}
	if !strings.HasPrefix(s.Summary(), "Final stats: 3 generations") {
		t.Fatalf("unexpected summary: %q", s.Summary())
	}
}
