package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

// linkTable describes a join table between a recurring item and transactions.
type linkTable struct {
	name       string
	itemColumn string
}

var (
	incomeLinks  = linkTable{name: "income_transactions", itemColumn: "income_id"}
	expenseLinks = linkTable{name: "fixed_expense_transactions", itemColumn: "fixed_expense_id"}
)

// linkedDates returns the dates of every transaction linked to itemID.
func (l linkTable) linkedDates(tx *gorm.DB, itemID string) ([]time.Time, error) {
	var linked []models.Transaction
	err := tx.Model(&models.Transaction{}).
		Select("transactions.id", "transactions.date").
		Joins("JOIN "+l.name+" ON "+l.name+".transaction_id = transactions.id").
		Where(l.name+"."+l.itemColumn+" = ?", itemID).
		Order("transactions.date ASC").
		Find(&linked).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(linked))
	for i := range linked {
		dates[i] = linked[i].Date
	}
	return dates, nil
}

// isLinked reports whether transactionID is already linked to itemID.
func (l linkTable) isLinked(tx *gorm.DB, itemID, transactionID string) (bool, error) {
	var count int64
	err := tx.Table(l.name).
		Where(l.itemColumn+" = ? AND transaction_id = ?", itemID, transactionID).
		Count(&count).Error
	return count > 0, err
}

// unlinkTransactions removes every link to transactionIDs and reschedules
// the items that lose a link.
func unlinkTransactions(tx *gorm.DB, transactionIDs []string, loc *time.Location) error {
	if len(transactionIDs) == 0 {
		return nil
	}

	var incomes []models.BudgetIncome
	err := forUpdate(tx).
		Where("id IN (?)", tx.Model(&models.IncomeTransaction{}).Select("income_id").Where("transaction_id IN ?", transactionIDs)).
		Find(&incomes).Error
	if err != nil {
		return err
	}
	var expenses []models.FixedExpense
	err = forUpdate(tx).
		Where("id IN (?)", tx.Model(&models.FixedExpenseTransaction{}).Select("fixed_expense_id").Where("transaction_id IN ?", transactionIDs)).
		Find(&expenses).Error
	if err != nil {
		return err
	}

	if err := tx.Where("transaction_id IN ?", transactionIDs).Delete(&models.IncomeTransaction{}).Error; err != nil {
		return err
	}
	if err := tx.Where("transaction_id IN ?", transactionIDs).Delete(&models.FixedExpenseTransaction{}).Error; err != nil {
		return err
	}

	for i := range incomes {
		if err := recomputeNextPayday(tx, &incomes[i], loc); err != nil {
			return err
		}
	}
	for i := range expenses {
		if err := recomputeNextDueDate(tx, &expenses[i], loc); err != nil {
			return err
		}
	}
	return nil
}

// forUpdate adds a row lock on databases that support one. Tag and untag
// recompute inside the transaction that holds the item's lock, so concurrent
// links against one item are applied one after the other and the last
// recompute sees every link.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// recomputeNextPayday re-derives an income's next payday from its full link
// set and stores it.
func recomputeNextPayday(tx *gorm.DB, income *models.BudgetIncome, loc *time.Location) error {
	dates, err := incomeLinks.linkedDates(tx, income.ID)
	if err != nil {
		return err
	}

	income.NextPayday = income.Schedule(loc).Recompute(dates)
	return tx.Model(income).Update("next_payday", income.NextPayday).Error
}

// recomputeNextDueDate re-derives a fixed expense's next due date from its
// full link set and stores it.
func recomputeNextDueDate(tx *gorm.DB, expense *models.FixedExpense, loc *time.Location) error {
	dates, err := expenseLinks.linkedDates(tx, expense.ID)
	if err != nil {
		return err
	}

	expense.NextDueDate = expense.Schedule(loc).Recompute(dates)
	return tx.Model(expense).Update("next_due_date", expense.NextDueDate).Error
}

// findOwnedTransaction loads a transaction belonging to userID.
func findOwnedTransaction(tx *gorm.DB, userID, transactionID string) (*models.Transaction, error) {
	var t models.Transaction
	if err := tx.Where("id = ? AND user_id = ?", transactionID, userID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &t, nil
}

// findOwnedBudget loads a budget belonging to userID.
func findOwnedBudget(tx *gorm.DB, userID, budgetID string) (*models.Budget, error) {
	var b models.Budget
	if err := tx.Where("id = ? AND user_id = ?", budgetID, userID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &b, nil
}

// findOwnedCategory loads a category belonging to userID.
func findOwnedCategory(tx *gorm.DB, userID, categoryID string) (*models.Category, error) {
	var c models.Category
	if err := tx.Where("id = ? AND user_id = ?", categoryID, userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &c, nil
}

// internal wraps storage errors, passing AppErrors through untouched.
func internal(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
