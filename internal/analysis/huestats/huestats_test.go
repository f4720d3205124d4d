package huestats

import (
	"errors"
	"math"
	"testing"
)

func countsFor(pairs map[int]int) []int {
	counts := make([]int, Period)
	for v, c := range pairs {
		counts[v] = c
	}
	return counts
}

func TestSummarizeSingleValue(t *testing.T) {
	var tests = []struct {
		name string
		hue  int
	}{
		{"green", 60},
		{"red boundary", 179},
		{"near background", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := Summarize(countsFor(map[int]int{tt.hue: 12}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(sum.Mean-float64(tt.hue)) > 1e-9 {
				t.Errorf("mean: got %v, want %d", sum.Mean, tt.hue)
			}
			if sum.StdDev > 1e-6 {
				t.Errorf("std-dev: got %v, want 0", sum.StdDev)
			}
			if sum.Median != float64(tt.hue) {
				t.Errorf("median: got %v, want %d", sum.Median, tt.hue)
			}
		})
	}
}

func TestSummarizeWrapsAroundPeriod(t *testing.T) {
	// 179 and 1 straddle the wrap point; their circular mean is 0, far
	// from the arithmetic mean of 90.
	sum, err := Summarize(countsFor(map[int]int{179: 5, 1: 5}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dist := math.Min(sum.Mean, Period-sum.Mean)
	if dist > 1e-9 {
		t.Errorf("circular mean: got %v, want 0 (mod %d)", sum.Mean, Period)
	}
	if sum.StdDev <= 0 {
		t.Errorf("std-dev: got %v, want > 0", sum.StdDev)
	}
}

func TestSummarizeShiftInvariance(t *testing.T) {
	base := map[int]int{10: 4, 35: 9, 90: 2, 140: 7}

	ref, err := Summarize(countsFor(base))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, shift := range []int{7, 45, 90, 133, 179} {
		shifted := make(map[int]int, len(base))
		for v, c := range base {
			shifted[(v+shift)%Period] = c
		}
		// Shifting can land a value on the background index; skip those
		// shifts, they change the observation set.
		if _, hitsBackground := shifted[0]; hitsBackground {
			continue
		}

		sum, err := Summarize(countsFor(shifted))
		if err != nil {
			t.Fatalf("shift %d: unexpected error: %v", shift, err)
		}

		wantMean := math.Mod(ref.Mean+float64(shift), Period)
		meanDiff := math.Abs(sum.Mean - wantMean)
		if meanDiff > Period/2 {
			meanDiff = Period - meanDiff
		}
		if meanDiff > 1e-6 {
			t.Errorf("shift %d: mean got %v, want %v", shift, sum.Mean, wantMean)
		}
		if math.Abs(sum.StdDev-ref.StdDev) > 1e-6 {
			t.Errorf("shift %d: std-dev got %v, want %v", shift, sum.StdDev, ref.StdDev)
		}
	}
}

func TestSummarizeMedian(t *testing.T) {
	var tests = []struct {
		name   string
		counts map[int]int
		want   float64
	}{
		{"odd total", map[int]int{10: 1, 20: 1, 30: 1}, 20},
		{"even total averages middles", map[int]int{10: 2, 30: 2}, 20},
		{"weights shift the middle", map[int]int{10: 3, 100: 1}, 10},
		{"even middles in same bucket", map[int]int{50: 4}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := Summarize(countsFor(tt.counts))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sum.Median != tt.want {
				t.Errorf("median: got %v, want %v", sum.Median, tt.want)
			}
		})
	}
}

func TestSummarizeDegenerate(t *testing.T) {
	// Background-only frequencies must fail loudly, not return zeros.
	counts := countsFor(map[int]int{0: 16})

	_, err := Summarize(counts)
	if !errors.Is(err, ErrNoObservations) {
		t.Fatalf("got %v, want ErrNoObservations", err)
	}
}

func TestSummarizeRejectsBadInput(t *testing.T) {
	if _, err := Summarize(make([]int, 12)); err == nil {
		t.Error("expected error for wrong table length")
	}

	counts := make([]int, Period)
	counts[4] = -1
	if _, err := Summarize(counts); err == nil {
		t.Error("expected error for negative frequency")
	}
}
