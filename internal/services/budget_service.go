package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/pagination"
	"tally/internal/progress"
	"tally/internal/recurrence"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db  *gorm.DB
	loc *time.Location
}

// NewBudgetService creates a new BudgetServicer. Period boundaries are
// computed in loc.
func NewBudgetService(db *gorm.DB, loc *time.Location) BudgetServicer {
	return &budgetService{db: db, loc: loc}
}

// periodEnd returns the last day of a period of the given length starting at start.
func periodEnd(start time.Time, period models.BudgetPeriod) time.Time {
	return recurrence.AddMonths(start, period.Months()).AddDate(0, 0, -1)
}

func validStatus(status models.BudgetStatus) bool {
	switch status {
	case models.BudgetStatusDraft, models.BudgetStatusActive, models.BudgetStatusArchived:
		return true
	}
	return false
}

// CreateBudget creates a new budget. A missing end is derived from the period.
func (s *budgetService) CreateBudget(userID string, input BudgetInput) (*models.Budget, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if input.Period.Months() == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be MONTHLY, QUARTERLY or YEARLY")
	}
	if input.PeriodStart.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period_start is required")
	}

	status := input.Status
	if status == "" {
		status = models.BudgetStatusDraft
	}
	if !validStatus(status) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
	}

	start := recurrence.CivilDate(input.PeriodStart, s.loc)
	end := periodEnd(start, input.Period)
	if input.PeriodEnd != nil {
		end = recurrence.CivilDate(*input.PeriodEnd, s.loc)
	}
	if end.Before(start) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period_end must not be before period_start")
	}

	budget := &models.Budget{
		UserID:      userID,
		Name:        name,
		Period:      input.Period,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      status,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

var budgetSorts = pagination.Sorts{
	"period_start": "period_start",
	"name":         "name",
	"created_at":   "created_at",
}

// GetUserBudgets returns a paginated list of budgets, newest period first,
// optionally filtered by status.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest, status *models.BudgetStatus) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()
	order, err := page.OrderBy(budgetSorts, pagination.Desc("period_start"))
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Scopes(pagination.Sorted(order), pagination.Paginate(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget with its incomes, fixed expenses and allocations.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	budget, err := findOwnedBudget(s.db.
		Preload("Incomes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("FixedExpenses", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Allocations.Category"), userID, budgetID)
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// UpdateBudget applies the non-nil fields of update.
func (s *budgetService) UpdateBudget(userID, budgetID string, update BudgetUpdate) (*models.Budget, error) {
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(update.Name); name != "" {
		budget.Name = name
	}
	if update.Status != nil {
		if !validStatus(*update.Status) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
		}
		budget.Status = *update.Status
	}
	if update.PeriodStart != nil {
		budget.PeriodStart = recurrence.CivilDate(*update.PeriodStart, s.loc)
	}
	if update.PeriodEnd != nil {
		budget.PeriodEnd = recurrence.CivilDate(*update.PeriodEnd, s.loc)
	}
	if budget.PeriodEnd.Before(budget.PeriodStart) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period_end must not be before period_start")
	}

	if err := s.db.Model(budget).Select("Name", "Status", "PeriodStart", "PeriodEnd", "UpdatedAt").Updates(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// DeleteBudget removes a budget together with its incomes, fixed expenses,
// allocations and their transaction links. Transactions are kept.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		incomeIDs := tx.Model(&models.BudgetIncome{}).Select("id").Where("budget_id = ?", budget.ID)
		if err := tx.Where("income_id IN (?)", incomeIDs).Delete(&models.IncomeTransaction{}).Error; err != nil {
			return err
		}
		expenseIDs := tx.Model(&models.FixedExpense{}).Select("id").Where("budget_id = ?", budget.ID)
		if err := tx.Where("fixed_expense_id IN (?)", expenseIDs).Delete(&models.FixedExpenseTransaction{}).Error; err != nil {
			return err
		}
		for _, child := range []interface{}{&models.BudgetIncome{}, &models.FixedExpense{}, &models.CategoryAllocation{}} {
			if err := tx.Where("budget_id = ?", budget.ID).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(budget).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// RolloverBudget creates the next period's DRAFT budget from budgetID and
// copies its incomes, fixed expenses and allocations. An empty newName
// becomes "<source name> - <Mon YYYY>".
func (s *budgetService) RolloverBudget(userID, budgetID, newName string) (*RolloverResult, error) {
	source, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	start := source.PeriodEnd.In(s.loc).AddDate(0, 0, 1)
	end := periodEnd(start, source.Period)
	if source.Period.Months() == 0 {
		end = start.Add(source.PeriodEnd.Sub(source.PeriodStart))
	}

	name := strings.TrimSpace(newName)
	if name == "" {
		name = fmt.Sprintf("%s - %s", source.Name, start.Format("Jan 2006"))
	}

	result := &RolloverResult{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		budget := &models.Budget{
			UserID:      userID,
			Name:        name,
			Period:      source.Period,
			PeriodStart: start,
			PeriodEnd:   end,
			Status:      models.BudgetStatusDraft,
		}
		if err := tx.Create(budget).Error; err != nil {
			return err
		}
		result.Budget = budget

		var incomes []models.BudgetIncome
		if err := tx.Where("budget_id = ?", source.ID).Order("created_at ASC").Find(&incomes).Error; err != nil {
			return err
		}
		for _, src := range incomes {
			income := &models.BudgetIncome{
				BudgetID:            budget.ID,
				UserID:              userID,
				Name:                src.Name,
				Amount:              src.Amount,
				Frequency:           src.Frequency,
				Notes:               src.Notes,
				AdjustForWeekends:   src.AdjustForWeekends,
				ExpectedFromAccount: src.ExpectedFromAccount,
				AutoTagEnabled:      src.AutoTagEnabled,
			}
			if err := tx.Create(income).Error; err != nil {
				return err
			}
			result.CopiedIncomes++
		}

		var expenses []models.FixedExpense
		if err := tx.Where("budget_id = ?", source.ID).Order("created_at ASC").Find(&expenses).Error; err != nil {
			return err
		}
		for _, src := range expenses {
			expense := &models.FixedExpense{
				BudgetID:          budget.ID,
				UserID:            userID,
				CategoryID:        src.CategoryID,
				Name:              src.Name,
				Description:       src.Description,
				Amount:            src.Amount,
				Frequency:         src.Frequency,
				MatchPattern:      src.MatchPattern,
				AdjustForWeekends: src.AdjustForWeekends,
				NextDueDate:       src.NextDueDate,
			}
			if err := tx.Create(expense).Error; err != nil {
				return err
			}
			result.CopiedExpenses++
		}

		var allocations []models.CategoryAllocation
		if err := tx.Where("budget_id = ?", source.ID).Order("created_at ASC").Find(&allocations).Error; err != nil {
			return err
		}
		for _, src := range allocations {
			allocation := &models.CategoryAllocation{
				BudgetID:        budget.ID,
				CategoryID:      src.CategoryID,
				AllocatedAmount: src.AllocatedAmount,
				Notes:           src.Notes,
			}
			if err := tx.Create(allocation).Error; err != nil {
				return err
			}
			result.CopiedAllocations++
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetBudgetProgress reports allocated against actual spend for each of the
// budget's categories, plus income, fixed expense and period totals.
func (s *budgetService) GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error) {
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	var allocations []models.CategoryAllocation
	if err := s.db.Preload("Category").Where("budget_id = ?", budget.ID).Order("created_at ASC").Find(&allocations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	categoryIDs := make([]string, len(allocations))
	for i := range allocations {
		categoryIDs[i] = allocations[i].CategoryID
	}

	period := progress.Period{Start: budget.PeriodStart.In(s.loc), End: budget.PeriodEnd.In(s.loc)}
	var transactions []models.Transaction
	if len(categoryIDs) > 0 {
		err := s.db.Where("user_id = ? AND category_id IN ? AND date >= ? AND date < ?",
			userID, categoryIDs, period.Start, period.Until()).
			Find(&transactions).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	var incomes []models.BudgetIncome
	if err := s.db.Where("budget_id = ?", budget.ID).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var expenses []models.FixedExpense
	if err := s.db.Where("budget_id = ?", budget.ID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	report := progress.Compute(progress.Input{
		Period:        period,
		Allocations:   allocations,
		Transactions:  transactions,
		Incomes:       incomes,
		FixedExpenses: expenses,
		Now:           time.Now(),
	})
	return &BudgetProgress{Budget: budget, Report: report}, nil
}
