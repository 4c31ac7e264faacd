package progress

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/models"
	"tally/internal/recurrence"
)

// LookbackMonths is how much history category averages are drawn from.
const LookbackMonths = 3

// Suggestion is a proposed allocation for one category. Money is in cents.
type Suggestion struct {
	CategoryID            string                     `json:"category_id"`
	Category              *models.Category           `json:"category,omitempty"`
	TransactionCount      int                        `json:"transaction_count"`
	TotalSpendingLookback int64                      `json:"total_spending_3_months"`
	MonthlyAverage        int64                      `json:"monthly_average"`
	SuggestedAmount       int64                      `json:"suggested_amount"`
	HasExistingAllocation bool                       `json:"has_existing_allocation"`
	ExistingAllocation    *models.CategoryAllocation `json:"existing_allocation,omitempty"`
}

// Lookback returns the window that averages are drawn from: the months
// before periodStart, ending on the day before it.
func Lookback(periodStart time.Time) Period {
	return Period{Start: recurrence.AddMonths(periodStart, -LookbackMonths), End: periodStart.AddDate(0, 0, -1)}
}

var lookbackDivisor = decimal.NewFromInt(LookbackMonths)

// Suggest averages debit spend per category over the lookback window ending
// at periodStart and scales the monthly average to the budget period. Zero
// suggestions are dropped and the rest are sorted largest first.
func Suggest(
	periodStart time.Time,
	period models.BudgetPeriod,
	categories []models.Category,
	transactions []models.Transaction,
	existing []models.CategoryAllocation,
) []Suggestion {
	window := Lookback(periodStart)
	scale := decimal.NewFromInt(int64(period.Months()))
	if period.Months() == 0 {
		scale = decimal.NewFromInt(1)
	}

	byCategory := make(map[string][]*models.Transaction)
	for i := range transactions {
		tx := &transactions[i]
		if tx.CategoryID == nil || !window.Contains(tx.Date) {
			continue
		}
		byCategory[*tx.CategoryID] = append(byCategory[*tx.CategoryID], tx)
	}

	allocated := make(map[string]*models.CategoryAllocation, len(existing))
	for i := range existing {
		allocated[existing[i].CategoryID] = &existing[i]
	}

	out := []Suggestion{}
	for i := range categories {
		c := &categories[i]
		txs := byCategory[c.ID]

		total := decimal.Zero
		debits := 0
		for _, tx := range txs {
			if tx.IsDebit() {
				total = total.Add(tx.Amount.Abs())
				debits++
			}
		}
		monthly := total.Div(lookbackDivisor)
		suggested := models.ToCents(monthly.Mul(scale))
		if suggested == 0 {
			continue
		}

		alloc := allocated[c.ID]
		out = append(out, Suggestion{
			CategoryID:            c.ID,
			Category:              c,
			TransactionCount:      debits,
			TotalSpendingLookback: models.ToCents(total),
			MonthlyAverage:        models.ToCents(monthly),
			SuggestedAmount:       suggested,
			HasExistingAllocation: alloc != nil,
			ExistingAllocation:    alloc,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SuggestedAmount > out[j].SuggestedAmount
	})
	return out
}
