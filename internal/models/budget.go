package models

import (
	"time"

	"tally/internal/recurrence"
)

// BudgetPeriod is the length of a budget.
type BudgetPeriod string

const (
	BudgetPeriodMonthly   BudgetPeriod = "MONTHLY"
	BudgetPeriodQuarterly BudgetPeriod = "QUARTERLY"
	BudgetPeriodYearly    BudgetPeriod = "YEARLY"
)

// Months returns the number of calendar months in the period, or 0.
func (p BudgetPeriod) Months() int {
	switch p {
	case BudgetPeriodMonthly:
		return 1
	case BudgetPeriodQuarterly:
		return 3
	case BudgetPeriodYearly:
		return 12
	}
	return 0
}

// BudgetStatus is the lifecycle state of a budget.
type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "DRAFT"
	BudgetStatusActive   BudgetStatus = "ACTIVE"
	BudgetStatusArchived BudgetStatus = "ARCHIVED"
)

// Budget is a plan for one period.
type Budget struct {
	Base
	UserID      string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string       `gorm:"not null" json:"name"`
	Period      BudgetPeriod `gorm:"not null" json:"period"`
	PeriodStart time.Time    `gorm:"not null" json:"period_start"`
	PeriodEnd   time.Time    `gorm:"not null" json:"period_end"`
	Status      BudgetStatus `gorm:"not null" json:"status"`

	Incomes       []BudgetIncome       `gorm:"foreignKey:BudgetID" json:"incomes,omitempty"`
	FixedExpenses []FixedExpense       `gorm:"foreignKey:BudgetID" json:"fixed_expenses,omitempty"`
	Allocations   []CategoryAllocation `gorm:"foreignKey:BudgetID" json:"allocations,omitempty"`
}

// BudgetIncome is a recurring income source. Amount is in cents.
type BudgetIncome struct {
	Record
	BudgetID            string               `gorm:"type:uuid;not null;index" json:"budget_id"`
	UserID              string               `gorm:"type:uuid;not null;index" json:"user_id"`
	Name                string               `gorm:"not null" json:"name"`
	Amount              int64                `gorm:"not null" json:"amount"`
	Frequency           recurrence.Frequency `gorm:"not null" json:"frequency"`
	Notes               string               `json:"notes,omitempty"`
	ReferenceDate       *time.Time           `json:"reference_date,omitempty"`
	AdjustForWeekends   bool                 `gorm:"not null" json:"adjust_for_weekends"`
	NextPayday          *time.Time           `json:"next_payday"`
	ExpectedFromAccount *string              `json:"expected_from_account"`
	AutoTagEnabled      bool                 `gorm:"not null" json:"auto_tag_enabled"`
}

// Schedule returns the recurrence state used to predict the next payday.
func (i *BudgetIncome) Schedule(loc *time.Location) recurrence.Schedule {
	return recurrence.Schedule{
		Frequency:         i.Frequency,
		AdjustForWeekends: i.AdjustForWeekends,
		ReferenceDate:     i.ReferenceDate,
		Location:          loc,
	}
}

// IncomeTransaction links a transaction to an income item.
type IncomeTransaction struct {
	Record
	IncomeID      string    `gorm:"type:uuid;not null;uniqueIndex:uq_income_transaction,priority:1" json:"income_id"`
	TransactionID string    `gorm:"type:uuid;not null;uniqueIndex:uq_income_transaction,priority:2;index" json:"transaction_id"`
	FromAccount   string    `json:"from_account,omitempty"`
	LinkedAt      time.Time `gorm:"not null" json:"linked_at"`
	AutoTagged    bool      `gorm:"not null" json:"auto_tagged"`

	Transaction *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
}

// MatchPattern hints which transactions belong to a fixed expense.
type MatchPattern struct {
	Merchant    string `json:"merchant,omitempty"`
	Description string `json:"description,omitempty"`
}

// FixedExpense is a recurring bill. Amount is in cents.
type FixedExpense struct {
	Record
	BudgetID          string               `gorm:"type:uuid;not null;index" json:"budget_id"`
	UserID            string               `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID        *string              `gorm:"type:uuid;index" json:"category_id"`
	Name              string               `gorm:"not null" json:"name"`
	Description       string               `json:"description,omitempty"`
	Amount            int64                `gorm:"not null" json:"amount"`
	Frequency         recurrence.Frequency `gorm:"not null" json:"frequency"`
	MatchPattern      *MatchPattern        `gorm:"type:jsonb;serializer:json" json:"match_pattern"`
	AdjustForWeekends bool                 `gorm:"not null" json:"adjust_for_weekends"`
	NextDueDate       *time.Time           `json:"next_due_date"`
}

// Schedule returns the recurrence state used to predict the next due date.
// Fixed expenses have no reference date to fall back to.
func (e *FixedExpense) Schedule(loc *time.Location) recurrence.Schedule {
	return recurrence.Schedule{
		Frequency:         e.Frequency,
		AdjustForWeekends: e.AdjustForWeekends,
		Location:          loc,
	}
}

// FixedExpenseTransaction links a transaction to a fixed expense.
type FixedExpenseTransaction struct {
	Record
	FixedExpenseID string    `gorm:"type:uuid;not null;uniqueIndex:uq_fixed_expense_transaction,priority:1" json:"fixed_expense_id"`
	TransactionID  string    `gorm:"type:uuid;not null;uniqueIndex:uq_fixed_expense_transaction,priority:2;index" json:"transaction_id"`
	LinkedAt       time.Time `gorm:"not null" json:"linked_at"`
	AutoTagged     bool      `gorm:"not null" json:"auto_tagged"`

	Transaction *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
}

// CategoryAllocation caps spending for a category within a budget. Amount is in cents.
type CategoryAllocation struct {
	Record
	BudgetID        string `gorm:"type:uuid;not null;uniqueIndex:uq_allocation_budget_category,priority:1" json:"budget_id"`
	CategoryID      string `gorm:"type:uuid;not null;uniqueIndex:uq_allocation_budget_category,priority:2" json:"category_id"`
	AllocatedAmount int64  `gorm:"not null" json:"allocated_amount"`
	Notes           string `json:"notes,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
