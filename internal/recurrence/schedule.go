package recurrence

import "time"

// Schedule is the recurrence state of an income or fixed expense needed to
// predict its next occurrence.
type Schedule struct {
	Frequency         Frequency
	AdjustForWeekends bool
	// ReferenceDate seeds the prediction when nothing is linked. Only
	// income items carry one.
	ReferenceDate *time.Time
	// Location is where calendar and weekday arithmetic happens.
	// Nil means UTC.
	Location *time.Location
}

// NextOccurrence predicts the occurrence after last.
func (s Schedule) NextOccurrence(last time.Time) time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}

	next := Advance(last.In(loc), s.Frequency)
	if s.AdjustForWeekends {
		next = AdjustForWeekend(next)
	}
	return next
}

// Recompute derives the next occurrence from the full set of linked
// occurrence dates. The latest date wins regardless of input order. With no
// dates it falls back to ReferenceDate, advanced to the next occurrence, and
// with neither it returns nil. The result depends only on its inputs, so
// recomputing from an unchanged link set always agrees with itself.
func (s Schedule) Recompute(linked []time.Time) *time.Time {
	var latest time.Time
	for _, d := range linked {
		if d.After(latest) {
			latest = d
		}
	}

	if !latest.IsZero() {
		next := s.NextOccurrence(latest)
		return &next
	}

	if s.ReferenceDate != nil {
		next := s.NextOccurrence(*s.ReferenceDate)
		return &next
	}
	return nil
}
