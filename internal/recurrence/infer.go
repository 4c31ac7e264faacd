package recurrence

import (
	"math"
	"sort"
	"time"
)

// Band maps an inclusive range of average day gaps to a frequency.
type Band struct {
	Frequency Frequency
	MinDays   float64
	MaxDays   float64
}

// BandTable is an ordered set of bands. Where bands overlap the earlier one wins.
type BandTable []Band

// IncomeBands classifies pay cycles. Bands are wide because paydays drift
// around weekends and public holidays.
var IncomeBands = BandTable{
	{Frequency: Weekly, MinDays: 4, MaxDays: 10},
	{Frequency: Fortnightly, MinDays: 9, MaxDays: 19},
	{Frequency: Monthly, MinDays: 22, MaxDays: 38},
}

// GenericBands classifies bills and other recurring payments.
var GenericBands = BandTable{
	{Frequency: Weekly, MinDays: 5, MaxDays: 9},
	{Frequency: Fortnightly, MinDays: 12, MaxDays: 16},
	{Frequency: Monthly, MinDays: 25, MaxDays: 35},
	{Frequency: Quarterly, MinDays: 80, MaxDays: 100},
	{Frequency: Yearly, MinDays: 350, MaxDays: 380},
}

// Classify returns the first band containing avg.
func (t BandTable) Classify(avg float64) (Frequency, bool) {
	for _, b := range t {
		if avg >= b.MinDays && avg <= b.MaxDays {
			return b.Frequency, true
		}
	}
	return "", false
}

// Confidence grades how regular the observed gaps are.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Inference is the result of Infer.
type Inference struct {
	// Suggested is empty when the sample is too small or the average gap
	// falls outside every band.
	Suggested           Frequency  `json:"suggested,omitempty"`
	Confidence          Confidence `json:"confidence"`
	AverageIntervalDays int        `json:"average_interval_days"`
	SampleSize          int        `json:"sample_size"`
	Intervals           []int      `json:"intervals"`
}

// HasSuggestion reports whether a frequency was inferred.
func (i Inference) HasSuggestion() bool {
	return i.Suggested != ""
}

const day = 24 * time.Hour

// Infer classifies the cadence of dates using bands. Input order does not
// matter. Fewer than two dates is a valid, low-confidence result with no
// suggestion.
func Infer(dates []time.Time, bands BandTable) Inference {
	result := Inference{
		Confidence: ConfidenceLow,
		SampleSize: len(dates),
		Intervals:  []int{},
	}
	if len(dates) < 2 {
		return result
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var sum float64
	for i := 1; i < len(sorted); i++ {
		gap := int(math.Round(float64(sorted[i].Sub(sorted[i-1])) / float64(day)))
		result.Intervals = append(result.Intervals, gap)
		sum += float64(gap)
	}
	avg := sum / float64(len(result.Intervals))
	result.AverageIntervalDays = int(math.Round(avg))

	freq, ok := bands.Classify(avg)
	if !ok {
		return result
	}
	result.Suggested = freq
	result.Confidence = boost(dispersion(result.Intervals, avg), len(dates))
	return result
}

// dispersion grades the population standard deviation of gaps against avg.
func dispersion(gaps []int, avg float64) Confidence {
	var variance float64
	for _, g := range gaps {
		d := float64(g) - avg
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(gaps)))

	switch {
	case stddev < avg*0.10:
		return ConfidenceHigh
	case stddev < avg*0.25:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// boost raises confidence one level for larger samples.
func boost(c Confidence, n int) Confidence {
	switch {
	case n >= 5 && c == ConfidenceMedium:
		return ConfidenceHigh
	case n >= 3 && c == ConfidenceLow:
		return ConfidenceMedium
	}
	return c
}
