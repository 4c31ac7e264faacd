// Package recurrence infers how often something recurs from the dates it
// occurred on, and predicts when it will occur next.
//
// Everything here is pure: no I/O, no logging, no clock reads.
package recurrence

import "time"

// Frequency is a recurrence cadence.
type Frequency string

const (
	Weekly      Frequency = "WEEKLY"
	Fortnightly Frequency = "FORTNIGHTLY"
	Monthly     Frequency = "MONTHLY"
	Quarterly   Frequency = "QUARTERLY"
	Yearly      Frequency = "YEARLY"
)

// IncomeFrequencies are the cadences an income item may use.
var IncomeFrequencies = []Frequency{Weekly, Fortnightly, Monthly}

// ExpenseFrequencies are the cadences a fixed expense may use.
var ExpenseFrequencies = []Frequency{Weekly, Fortnightly, Monthly, Quarterly, Yearly}

// In reports whether f is one of set.
func (f Frequency) In(set []Frequency) bool {
	for _, s := range set {
		if f == s {
			return true
		}
	}
	return false
}

// Advance moves t forward by one period of f. Calendar-month steps keep the
// day of month where possible and clamp to the last day of shorter months,
// so Jan 31 + MONTHLY is Feb 28 (or 29). An unknown frequency returns t.
func Advance(t time.Time, f Frequency) time.Time {
	switch f {
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Fortnightly:
		return t.AddDate(0, 0, 14)
	case Monthly:
		return addMonths(t, 1)
	case Quarterly:
		return addMonths(t, 3)
	case Yearly:
		return addMonths(t, 12)
	default:
		return t
	}
}

// AddMonths adds n calendar months to t with day-of-month clamping.
func AddMonths(t time.Time, n int) time.Time {
	return addMonths(t, n)
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AdjustForWeekend moves a Saturday back to Friday and a Sunday back two
// days to Friday. Weekdays are returned unchanged. The weekday is read in
// t's own location.
func AdjustForWeekend(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, -1)
	case time.Sunday:
		return t.AddDate(0, 0, -2)
	default:
		return t
	}
}

// CivilDate returns midnight in loc on the calendar date t reads as, without
// converting the instant.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
