// Package huestats computes circular statistics over hue frequencies.
// OpenCV stores 8-bit hue halved, so the domain is [0,180) and all
// angular math uses a period of 180.
package huestats

import (
	"errors"
	"fmt"
	"math"
)

// Period is the circular period of the 8-bit OpenCV hue domain.
const Period = 180

// ErrNoObservations is returned when every non-background frequency is
// zero, leaving the circular statistics undefined.
var ErrNoObservations = errors.New("no non-background hue observations")

// Summary holds the hue statistics: circular mean and standard deviation
// (period 180) and an ordinary weighted median.
type Summary struct {
	Mean   float64
	StdDev float64
	Median float64
}

// Summarize computes the summary over a 180-entry frequency table indexed
// by hue value. Index 0 is treated as background and excluded. Returns
// ErrNoObservations when nothing remains after the exclusion.
func Summarize(counts []int) (Summary, error) {
	if len(counts) != Period {
		return Summary{}, fmt.Errorf("expected %d hue frequencies, got %d", Period, len(counts))
	}

	var n int
	var sumCos, sumSin float64
	for v := 1; v < Period; v++ {
		c := counts[v]
		if c < 0 {
			return Summary{}, fmt.Errorf("negative frequency %d for hue %d", c, v)
		}
		if c == 0 {
			continue
		}
		ang := float64(v) * 2 * math.Pi / Period
		sumCos += float64(c) * math.Cos(ang)
		sumSin += float64(c) * math.Sin(ang)
		n += c
	}
	if n == 0 {
		return Summary{}, ErrNoObservations
	}

	meanCos := sumCos / float64(n)
	meanSin := sumSin / float64(n)

	mean := math.Atan2(meanSin, meanCos)
	if mean < 0 {
		mean += 2 * math.Pi
	}
	mean *= Period / (2 * math.Pi)
	// Guard against 180.0 from floating-point roundoff near the wrap point.
	if mean >= Period {
		mean -= Period
	}

	r := math.Hypot(meanCos, meanSin)
	if r > 1 {
		r = 1
	}
	std := math.Sqrt(-2*math.Log(r)) * Period / (2 * math.Pi)

	return Summary{
		Mean:   mean,
		StdDev: std,
		Median: weightedMedian(counts, n),
	}, nil
}

// weightedMedian takes the ordinary median of the sequence in which hue
// value v appears counts[v] times (background index 0 excluded). For an
// even total it averages the two middle observations.
func weightedMedian(counts []int, n int) float64 {
	lo := (n - 1) / 2
	hi := n / 2

	var loVal, hiVal float64
	cum := 0
	for v := 1; v < len(counts); v++ {
		c := counts[v]
		if c == 0 {
			continue
		}
		if cum <= lo && lo < cum+c {
			loVal = float64(v)
		}
		if cum <= hi && hi < cum+c {
			hiVal = float64(v)
			break
		}
		cum += c
	}
	return (loVal + hiVal) / 2
}
