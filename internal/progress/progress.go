// Package progress derives budget-vs-actual figures from categorized
// transactions. It performs no I/O; callers load the rows.
package progress

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/models"
)

// Status classifies how much of an allocation has been used.
type Status string

const (
	StatusOnTrack    Status = "ON_TRACK"
	StatusWarning    Status = "WARNING"
	StatusOverBudget Status = "OVER_BUDGET"
)

const (
	warningPercent    = 80
	overBudgetPercent = 100
)

// StatusFor maps a percent-used figure to a Status.
func StatusFor(percentUsed int) Status {
	switch {
	case percentUsed >= overBudgetPercent:
		return StatusOverBudget
	case percentUsed >= warningPercent:
		return StatusWarning
	default:
		return StatusOnTrack
	}
}

// Period is an inclusive range of calendar days. End is midnight of the last
// day, and every instant on that day belongs to the period.
type Period struct {
	Start time.Time
	End   time.Time
}

// Until returns the exclusive upper bound: midnight after the last day.
func (p Period) Until() time.Time {
	return p.End.AddDate(0, 0, 1)
}

// Contains reports whether t lies within [Start, Until).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.Until())
}

// CategoryProgress is spend against one allocation. Money is in cents.
type CategoryProgress struct {
	CategoryID       string           `json:"category_id"`
	Category         *models.Category `json:"category,omitempty"`
	Allocated        int64            `json:"allocated"`
	Spent            int64            `json:"spent"`
	Remaining        int64            `json:"remaining"`
	PercentUsed      int              `json:"percent_used"`
	Status           Status           `json:"status"`
	TransactionCount int              `json:"transaction_count"`
}

// Summary totals a budget. Money is in cents.
type Summary struct {
	TotalIncome        int64 `json:"total_income"`
	TotalFixedExpenses int64 `json:"total_fixed_expenses"`
	TotalAllocated     int64 `json:"total_allocated"`
	TotalSpent         int64 `json:"total_spent"`
	TotalRemaining     int64 `json:"total_remaining"`
	Surplus            int64 `json:"surplus"`
	OverallPercentUsed int   `json:"overall_percent_used"`
}

// PeriodProgress describes how far through the budget period now is.
type PeriodProgress struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	TotalDays       int       `json:"total_days"`
	DaysElapsed     int       `json:"days_elapsed"`
	DaysRemaining   int       `json:"days_remaining"`
	PercentComplete int       `json:"percent_complete"`
}

// Report is the full progress view of a budget.
type Report struct {
	Categories []CategoryProgress `json:"category_progress"`
	Summary    Summary            `json:"summary"`
	Period     PeriodProgress     `json:"period"`
}

// Input is everything Compute needs. Transactions may include rows outside
// the period or in unallocated categories; they are filtered here.
type Input struct {
	Period        Period
	Allocations   []models.CategoryAllocation
	Transactions  []models.Transaction
	Incomes       []models.BudgetIncome
	FixedExpenses []models.FixedExpense
	Now           time.Time
}

// Compute builds the progress report for a budget.
func Compute(in Input) Report {
	byCategory := make(map[string][]*models.Transaction)
	for i := range in.Transactions {
		tx := &in.Transactions[i]
		if tx.CategoryID == nil || !in.Period.Contains(tx.Date) {
			continue
		}
		byCategory[*tx.CategoryID] = append(byCategory[*tx.CategoryID], tx)
	}

	report := Report{Categories: make([]CategoryProgress, 0, len(in.Allocations))}
	for _, a := range in.Allocations {
		txs := byCategory[a.CategoryID]
		spent := SpentCents(txs)

		cp := CategoryProgress{
			CategoryID:       a.CategoryID,
			Category:         a.Category,
			Allocated:        a.AllocatedAmount,
			Spent:            spent,
			Remaining:        a.AllocatedAmount - spent,
			PercentUsed:      PercentOf(spent, a.AllocatedAmount),
			TransactionCount: len(txs),
		}
		cp.Status = StatusFor(cp.PercentUsed)
		report.Categories = append(report.Categories, cp)

		report.Summary.TotalAllocated += cp.Allocated
		report.Summary.TotalSpent += cp.Spent
	}

	for _, inc := range in.Incomes {
		report.Summary.TotalIncome += inc.Amount
	}
	for _, fe := range in.FixedExpenses {
		report.Summary.TotalFixedExpenses += fe.Amount
	}
	s := &report.Summary
	s.TotalRemaining = s.TotalAllocated - s.TotalSpent
	s.Surplus = s.TotalIncome - s.TotalFixedExpenses - s.TotalAllocated
	s.OverallPercentUsed = PercentOf(s.TotalSpent, s.TotalAllocated)

	report.Period = PeriodDays(in.Period, in.Now)
	return report
}

// SpentCents sums the magnitude of debit transactions in dollars and
// converts the total to cents once, so per-row rounding never accumulates.
func SpentCents(txs []*models.Transaction) int64 {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.IsDebit() {
			total = total.Add(tx.Amount.Abs())
		}
	}
	return models.ToCents(total)
}

// PercentOf returns round(part / whole * 100), or 0 when whole is not positive.
func PercentOf(part, whole int64) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// PeriodDays reports elapsed and remaining whole days of p as of now.
func PeriodDays(p Period, now time.Time) PeriodProgress {
	total := ceilDays(p.End.Sub(p.Start))
	if total < 0 {
		total = 0
	}

	until := now
	if p.End.Before(until) {
		until = p.End
	}
	elapsed := ceilDays(until.Sub(p.Start))
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}

	return PeriodProgress{
		Start:           p.Start,
		End:             p.End,
		TotalDays:       total,
		DaysElapsed:     elapsed,
		DaysRemaining:   total - elapsed,
		PercentComplete: PercentOf(int64(elapsed), int64(total)),
	}
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}
