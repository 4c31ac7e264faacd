package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysAfter(start time.Time, offsets ...int) []time.Time {
	out := make([]time.Time, len(offsets))
	for i, o := range offsets {
		out[i] = start.AddDate(0, 0, o)
	}
	return out
}

func TestInfer_ConstantWeeklyGaps(t *testing.T) {
	d := date(2024, time.March, 4)

	got := Infer(daysAfter(d, 0, 7, 14, 21), GenericBands)

	assert.Equal(t, Weekly, got.Suggested)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
	assert.Equal(t, 7, got.AverageIntervalDays)
	assert.Equal(t, 4, got.SampleSize)
	assert.Equal(t, []int{7, 7, 7}, got.Intervals)
}

func TestInfer_OrderIndependent(t *testing.T) {
	d := date(2024, time.January, 15)
	asc := daysAfter(d, 0, 31, 60, 91)
	desc := []time.Time{asc[3], asc[2], asc[1], asc[0]}
	shuffled := []time.Time{asc[2], asc[0], asc[3], asc[1]}

	want := Infer(asc, IncomeBands)
	assert.Equal(t, Monthly, want.Suggested)
	assert.Equal(t, want, Infer(desc, IncomeBands))
	assert.Equal(t, want, Infer(shuffled, IncomeBands))
}

func TestInfer_DoesNotReorderCallerSlice(t *testing.T) {
	d := date(2024, time.January, 1)
	in := []time.Time{d.AddDate(0, 0, 14), d}

	Infer(in, GenericBands)

	assert.Equal(t, d.AddDate(0, 0, 14), in[0])
}

func TestInfer_InsufficientData(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
	}{
		{name: "nil", dates: nil},
		{name: "single date", dates: []time.Time{date(2024, time.May, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.dates, IncomeBands)

			assert.False(t, got.HasSuggestion())
			assert.Equal(t, ConfidenceLow, got.Confidence)
			assert.Equal(t, len(tt.dates), got.SampleSize)
			assert.Empty(t, got.Intervals)
		})
	}
}

func TestInfer_OutsideAllBands(t *testing.T) {
	got := Infer(daysAfter(date(2024, time.January, 1), 0, 60, 120), GenericBands)

	assert.False(t, got.HasSuggestion())
	assert.Equal(t, ConfidenceLow, got.Confidence)
	assert.Equal(t, 60, got.AverageIntervalDays)
}

func TestInfer_BandTables(t *testing.T) {
	start := date(2023, time.January, 10)

	tests := []struct {
		name    string
		offsets []int
		bands   BandTable
		want    Frequency
	}{
		{name: "income overlap prefers weekly", offsets: []int{0, 9, 19}, bands: IncomeBands, want: Weekly},
		{name: "generic gap between weekly and fortnightly", offsets: []int{0, 9, 19}, bands: GenericBands, want: ""},
		{name: "income fortnightly", offsets: []int{0, 14, 28, 42}, bands: IncomeBands, want: Fortnightly},
		{name: "generic quarterly", offsets: []int{0, 90, 181, 273}, bands: GenericBands, want: Quarterly},
		{name: "income has no quarterly", offsets: []int{0, 90, 181, 273}, bands: IncomeBands, want: ""},
		{name: "generic yearly", offsets: []int{0, 365, 731}, bands: GenericBands, want: Yearly},
		{name: "income wide monthly", offsets: []int{0, 23, 60}, bands: IncomeBands, want: Monthly},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(daysAfter(start, tt.offsets...), tt.bands)
			assert.Equal(t, tt.want, got.Suggested)
		})
	}
}

func TestInfer_Confidence(t *testing.T) {
	start := date(2024, time.February, 1)

	tests := []struct {
		name    string
		offsets []int
		want    Confidence
	}{
		// gaps 7,9: avg 8, stddev 1
		{name: "medium dispersion", offsets: []int{0, 7, 16}, want: ConfidenceMedium},
		// gaps 7,9,7,9: medium boosted by five samples
		{name: "medium boosted at five samples", offsets: []int{0, 7, 16, 23, 32}, want: ConfidenceHigh},
		// gaps 4,10: avg 7, stddev 3
		{name: "low boosted at three samples", offsets: []int{0, 4, 14}, want: ConfidenceMedium},
		{name: "two samples are always regular", offsets: []int{0, 8}, want: ConfidenceHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(daysAfter(start, tt.offsets...), IncomeBands)
			assert.Equal(t, Weekly, got.Suggested)
			assert.Equal(t, tt.want, got.Confidence)
		})
	}
}

func TestInfer_GapsRoundToWholeDays(t *testing.T) {
	a := date(2024, time.April, 1)
	b := a.Add(7*day + 13*time.Hour)
	c := b.Add(6*day + 11*time.Hour)

	got := Infer([]time.Time{a, b, c}, GenericBands)

	assert.Equal(t, []int{8, 6}, got.Intervals)
	assert.Equal(t, 7, got.AverageIntervalDays)
}
