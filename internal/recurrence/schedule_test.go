package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustForWeekend(t *testing.T) {
	friday := date(2024, time.May, 31)

	assert.Equal(t, friday, AdjustForWeekend(date(2024, time.June, 1)), "saturday")
	assert.Equal(t, friday, AdjustForWeekend(date(2024, time.June, 2)), "sunday")

	for d := 3; d <= 7; d++ {
		weekday := date(2024, time.June, d)
		assert.Equal(t, weekday, AdjustForWeekend(weekday), weekday.Weekday().String())
	}
}

func TestAdjustForWeekend_NeverMovesLater(t *testing.T) {
	start := date(2024, time.January, 1)
	for i := 0; i < 28; i++ {
		d := start.AddDate(0, 0, i)
		got := AdjustForWeekend(d)

		assert.False(t, got.After(d))
		assert.NotEqual(t, time.Saturday, got.Weekday())
		assert.NotEqual(t, time.Sunday, got.Weekday())
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		freq Frequency
		want time.Time
	}{
		{name: "weekly", from: date(2024, time.March, 1), freq: Weekly, want: date(2024, time.March, 8)},
		{name: "fortnightly", from: date(2024, time.March, 25), freq: Fortnightly, want: date(2024, time.April, 8)},
		{name: "monthly", from: date(2024, time.January, 15), freq: Monthly, want: date(2024, time.February, 15)},
		{name: "monthly clamps to leap day", from: date(2024, time.January, 31), freq: Monthly, want: date(2024, time.February, 29)},
		{name: "monthly clamps in common year", from: date(2023, time.January, 31), freq: Monthly, want: date(2023, time.February, 28)},
		{name: "monthly across year end", from: date(2024, time.December, 31), freq: Monthly, want: date(2025, time.January, 31)},
		{name: "quarterly clamps", from: date(2024, time.November, 30), freq: Quarterly, want: date(2025, time.February, 28)},
		{name: "yearly from leap day", from: date(2024, time.February, 29), freq: Yearly, want: date(2025, time.February, 28)},
		{name: "unknown frequency is a no-op", from: date(2024, time.March, 1), freq: "DAILY", want: date(2024, time.March, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Advance(tt.from, tt.freq))
		})
	}
}

func TestAdvance_KeepsTimeOfDay(t *testing.T) {
	from := time.Date(2024, time.January, 31, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 29, 9, 30, 0, 0, time.UTC), Advance(from, Monthly))
}

func TestSchedule_Recompute(t *testing.T) {
	t.Run("monthly income lands on a weekday", func(t *testing.T) {
		s := Schedule{Frequency: Monthly, AdjustForWeekends: true}

		got := s.Recompute([]time.Time{date(2024, time.January, 15), date(2024, time.February, 15)})

		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.March, 15), *got)
	})

	t.Run("uses latest linked date regardless of order", func(t *testing.T) {
		s := Schedule{Frequency: Weekly}

		got := s.Recompute([]time.Time{date(2024, time.May, 10), date(2024, time.May, 24), date(2024, time.May, 17)})

		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.May, 31), *got)
	})

	t.Run("shifts weekend prediction back to friday", func(t *testing.T) {
		s := Schedule{Frequency: Monthly, AdjustForWeekends: true}

		// 2024-06-15 is a Saturday.
		got := s.Recompute([]time.Time{date(2024, time.May, 15)})

		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.June, 14), *got)
	})

	t.Run("leaves weekend prediction when adjustment disabled", func(t *testing.T) {
		s := Schedule{Frequency: Monthly}

		got := s.Recompute([]time.Time{date(2024, time.May, 15)})

		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.June, 15), *got)
	})

	t.Run("falls back to reference date", func(t *testing.T) {
		ref := date(2024, time.July, 5)
		s := Schedule{Frequency: Fortnightly, AdjustForWeekends: true, ReferenceDate: &ref}

		got := s.Recompute(nil)

		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.July, 19), *got)
	})

	t.Run("clears without links or reference date", func(t *testing.T) {
		s := Schedule{Frequency: Quarterly}
		assert.Nil(t, s.Recompute(nil))
	})

	t.Run("is idempotent", func(t *testing.T) {
		s := Schedule{Frequency: Monthly, AdjustForWeekends: true}
		links := []time.Time{date(2024, time.August, 30), date(2024, time.July, 31)}

		first := s.Recompute(links)
		second := s.Recompute(links)

		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, *first, *second)
	})

	t.Run("evaluates weekday in the schedule location", func(t *testing.T) {
		nz := time.FixedZone("NZDT", 13*60*60)
		// Friday evening UTC is Saturday morning in NZ.
		paid := time.Date(2024, time.March, 8, 20, 0, 0, 0, time.UTC)

		utc := Schedule{Frequency: Weekly, AdjustForWeekends: true}.Recompute([]time.Time{paid})
		local := Schedule{Frequency: Weekly, AdjustForWeekends: true, Location: nz}.Recompute([]time.Time{paid})

		require.NotNil(t, utc)
		require.NotNil(t, local)
		assert.Equal(t, time.Date(2024, time.March, 15, 20, 0, 0, 0, time.UTC), utc.UTC())
		assert.Equal(t, time.Date(2024, time.March, 14, 20, 0, 0, 0, time.UTC), local.UTC())
	})
}

func TestCivilDate(t *testing.T) {
	denver, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	got := CivilDate(date(2024, time.March, 1), denver)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, denver, got.Location())
	assert.NotEqual(t, time.March, date(2024, time.March, 1).In(denver).Month())
}
