package progress

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/models"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func txn(categoryID string, date time.Time, amount, typ string) models.Transaction {
	id := categoryID
	return models.Transaction{
		CategoryID: &id,
		Date:       date,
		Amount:     models.NewMoney(decimal.RequireFromString(amount), "NZD"),
		Type:       typ,
	}
}

var january = Period{Start: day(time.January, 1), End: day(time.January, 31)}

func TestCompute_WarningThreshold(t *testing.T) {
	report := Compute(Input{
		Period:      january,
		Allocations: []models.CategoryAllocation{{CategoryID: "groceries", AllocatedAmount: 50000}},
		Transactions: []models.Transaction{
			txn("groceries", day(time.January, 5), "-100", "EFTPOS"),
			txn("groceries", day(time.January, 15), "-150", "EFTPOS"),
			txn("groceries", day(time.January, 25), "-200", "EFTPOS"),
		},
		Now: day(time.January, 20),
	})

	require.Len(t, report.Categories, 1)
	cp := report.Categories[0]
	assert.Equal(t, int64(45000), cp.Spent)
	assert.Equal(t, int64(5000), cp.Remaining)
	assert.Equal(t, 90, cp.PercentUsed)
	assert.Equal(t, StatusWarning, cp.Status)
	assert.Equal(t, 3, cp.TransactionCount)
}

func TestCompute_RoundsAfterSumming(t *testing.T) {
	// Three rows of 15.002 round individually to 1500 each (4500 total),
	// but sum to 45.006 which rounds to 4501.
	report := Compute(Input{
		Period:      january,
		Allocations: []models.CategoryAllocation{{CategoryID: "fuel", AllocatedAmount: 10000}},
		Transactions: []models.Transaction{
			txn("fuel", day(time.January, 2), "-15.002", "DEBIT"),
			txn("fuel", day(time.January, 3), "-15.002", "DEBIT"),
			txn("fuel", day(time.January, 4), "-15.002", "DEBIT"),
		},
		Now: day(time.January, 10),
	})

	cp := report.Categories[0]
	assert.Equal(t, int64(4501), cp.Spent)
	assert.Equal(t, 45, cp.PercentUsed)
	assert.Equal(t, StatusOnTrack, cp.Status)
}

func TestCompute_FiltersTransactions(t *testing.T) {
	report := Compute(Input{
		Period:      january,
		Allocations: []models.CategoryAllocation{{CategoryID: "dining", AllocatedAmount: 10000}},
		Transactions: []models.Transaction{
			txn("dining", day(time.January, 1), "-10", ""),       // start is inclusive
			txn("dining", day(time.January, 31), "-20", ""),      // end is inclusive
			txn("dining", day(time.February, 1), "-1000", ""),    // after the period
			txn("dining", day(time.January, 10), "35", "CREDIT"), // refund is not spend
			txn("dining", day(time.January, 11), "5", "DEBIT"),   // positive but typed as debit
			txn("other", day(time.January, 12), "-999", ""),      // different category
			{Date: day(time.January, 13), Amount: models.NewMoney(decimal.NewFromInt(-50), "")},
		},
		Now: day(time.January, 15),
	})

	cp := report.Categories[0]
	assert.Equal(t, int64(3500), cp.Spent)
	assert.Equal(t, 4, cp.TransactionCount)
}

func TestPeriod_ContainsWholeLastDay(t *testing.T) {
	assert.True(t, january.Contains(day(time.January, 1)))
	assert.True(t, january.Contains(day(time.January, 31).Add(12*time.Hour)))
	assert.True(t, january.Contains(day(time.February, 1).Add(-time.Nanosecond)))
	assert.False(t, january.Contains(day(time.February, 1)))
	assert.False(t, january.Contains(day(time.January, 1).Add(-time.Nanosecond)))
	assert.Equal(t, day(time.February, 1), january.Until())
}

func TestCompute_CountsTimestampsOnLastDay(t *testing.T) {
	report := Compute(Input{
		Period:      january,
		Allocations: []models.CategoryAllocation{{CategoryID: "groceries", AllocatedAmount: 50000}},
		Transactions: []models.Transaction{
			txn("groceries", day(time.January, 31).Add(12*time.Hour), "-100", "EFTPOS"),
			txn("groceries", day(time.January, 31).Add(23*time.Hour+59*time.Minute), "-25", "EFTPOS"),
			txn("groceries", day(time.February, 1).Add(30*time.Minute), "-500", "EFTPOS"),
		},
		Now: day(time.February, 1),
	})

	cp := report.Categories[0]
	assert.Equal(t, int64(12500), cp.Spent)
	assert.Equal(t, 2, cp.TransactionCount)
}

func TestCompute_OverBudgetAndZeroAllocation(t *testing.T) {
	report := Compute(Input{
		Period: january,
		Allocations: []models.CategoryAllocation{
			{CategoryID: "fun", AllocatedAmount: 1000},
			{CategoryID: "gifts", AllocatedAmount: 0},
		},
		Transactions: []models.Transaction{
			txn("fun", day(time.January, 3), "-10", ""),
			txn("gifts", day(time.January, 3), "-25", ""),
		},
		Now: day(time.January, 15),
	})

	assert.Equal(t, 100, report.Categories[0].PercentUsed)
	assert.Equal(t, StatusOverBudget, report.Categories[0].Status)
	assert.Equal(t, 0, report.Categories[1].PercentUsed)
	assert.Equal(t, StatusOnTrack, report.Categories[1].Status)
	assert.Equal(t, int64(-2500), report.Categories[1].Remaining)
}

func TestCompute_Summary(t *testing.T) {
	report := Compute(Input{
		Period: january,
		Allocations: []models.CategoryAllocation{
			{CategoryID: "a", AllocatedAmount: 30000},
			{CategoryID: "b", AllocatedAmount: 20000},
		},
		Transactions: []models.Transaction{
			txn("a", day(time.January, 3), "-120", ""),
			txn("b", day(time.January, 4), "-80", ""),
		},
		Incomes:       []models.BudgetIncome{{Amount: 400000}, {Amount: 50000}},
		FixedExpenses: []models.FixedExpense{{Amount: 150000}},
		Now:           day(time.January, 15),
	})

	s := report.Summary
	assert.Equal(t, int64(450000), s.TotalIncome)
	assert.Equal(t, int64(150000), s.TotalFixedExpenses)
	assert.Equal(t, int64(50000), s.TotalAllocated)
	assert.Equal(t, int64(20000), s.TotalSpent)
	assert.Equal(t, int64(30000), s.TotalRemaining)
	assert.Equal(t, int64(250000), s.Surplus)
	assert.Equal(t, 40, s.OverallPercentUsed)
}

func TestPeriodDays(t *testing.T) {
	tests := []struct {
		name        string
		now         time.Time
		wantElapsed int
		wantPercent int
	}{
		{name: "before start", now: day(time.January, 1).Add(-48 * time.Hour), wantElapsed: 0, wantPercent: 0},
		{name: "at start", now: day(time.January, 1), wantElapsed: 0, wantPercent: 0},
		{name: "partial day counts as a day", now: day(time.January, 10).Add(time.Hour), wantElapsed: 10, wantPercent: 33},
		{name: "after end is clamped", now: day(time.March, 1), wantElapsed: 30, wantPercent: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodDays(january, tt.now)

			assert.Equal(t, 30, got.TotalDays)
			assert.Equal(t, tt.wantElapsed, got.DaysElapsed)
			assert.Equal(t, 30-tt.wantElapsed, got.DaysRemaining)
			assert.Equal(t, tt.wantPercent, got.PercentComplete)
		})
	}
}

func TestPeriodDays_EndOfDayBound(t *testing.T) {
	p := Period{Start: day(time.January, 1), End: day(time.January, 31).Add(24*time.Hour - time.Millisecond)}

	got := PeriodDays(p, day(time.June, 1))

	assert.Equal(t, 31, got.TotalDays)
	assert.Equal(t, 31, got.DaysElapsed)
	assert.Equal(t, 0, got.DaysRemaining)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusOnTrack, StatusFor(79))
	assert.Equal(t, StatusWarning, StatusFor(80))
	assert.Equal(t, StatusWarning, StatusFor(99))
	assert.Equal(t, StatusOverBudget, StatusFor(100))
	assert.Equal(t, StatusOverBudget, StatusFor(250))
}
