package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/recurrence"
)

// fixedExpenseService handles recurring bills and their tagged transactions.
type fixedExpenseService struct {
	db  *gorm.DB
	loc *time.Location
}

// NewFixedExpenseService creates a new FixedExpenseServicer. Due dates are
// predicted in loc.
func NewFixedExpenseService(db *gorm.DB, loc *time.Location) FixedExpenseServicer {
	return &fixedExpenseService{db: db, loc: loc}
}

func validateExpenseFields(name string, amount int64, frequency recurrence.Frequency) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
	}
	if !frequency.In(recurrence.ExpenseFrequencies) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "frequency must be WEEKLY, FORTNIGHTLY, MONTHLY, QUARTERLY, or YEARLY")
	}
	return nil
}

// CreateFixedExpense adds a recurring bill to a budget.
func (s *fixedExpenseService) CreateFixedExpense(userID, budgetID string, input FixedExpenseInput) (*models.FixedExpense, error) {
	if err := validateExpenseFields(input.Name, input.Amount, input.Frequency); err != nil {
		return nil, err
	}
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if _, err := findOwnedCategory(s.db, userID, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	expense := &models.FixedExpense{
		BudgetID:          budget.ID,
		UserID:            userID,
		CategoryID:        input.CategoryID,
		Name:              strings.TrimSpace(input.Name),
		Description:       input.Description,
		Amount:            input.Amount,
		Frequency:         input.Frequency,
		MatchPattern:      input.MatchPattern,
		AdjustForWeekends: input.AdjustForWeekends,
		NextDueDate:       input.NextDueDate,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetBudgetFixedExpenses lists a budget's fixed expenses.
func (s *fixedExpenseService) GetBudgetFixedExpenses(userID, budgetID string) ([]models.FixedExpense, error) {
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	var expenses []models.FixedExpense
	if err := s.db.Where("budget_id = ?", budget.ID).Order("created_at ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetFixedExpenseByID returns a fixed expense of the user's budget.
func (s *fixedExpenseService) GetFixedExpenseByID(userID, budgetID, expenseID string) (*models.FixedExpense, error) {
	if _, err := findOwnedBudget(s.db, userID, budgetID); err != nil {
		return nil, err
	}
	return findFixedExpense(s.db, userID, budgetID, expenseID)
}

// findFixedExpense loads a fixed expense, locking it when db is a
// transaction on postgres.
func findFixedExpense(db *gorm.DB, userID, budgetID, expenseID string) (*models.FixedExpense, error) {
	var expense models.FixedExpense
	err := forUpdate(db).
		Where("id = ? AND budget_id = ? AND user_id = ?", expenseID, budgetID, userID).
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFixedExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateFixedExpense applies the non-nil fields of update. An explicit
// NextDueDate is stored as given; otherwise a schedule change re-derives it
// from the tagged transactions.
func (s *fixedExpenseService) UpdateFixedExpense(userID, budgetID, expenseID string, update FixedExpenseUpdate) (*models.FixedExpense, error) {
	if _, err := findOwnedBudget(s.db, userID, budgetID); err != nil {
		return nil, err
	}
	if update.CategoryID != nil && *update.CategoryID != "" {
		if _, err := findOwnedCategory(s.db, userID, *update.CategoryID); err != nil {
			return nil, err
		}
	}

	var expense *models.FixedExpense
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if expense, err = findFixedExpense(tx, userID, budgetID, expenseID); err != nil {
			return err
		}

		rescheduled := false
		if update.Name != "" {
			expense.Name = strings.TrimSpace(update.Name)
		}
		if update.Description != nil {
			expense.Description = *update.Description
		}
		if update.Amount != nil {
			expense.Amount = *update.Amount
		}
		if update.Frequency != nil && *update.Frequency != expense.Frequency {
			expense.Frequency = *update.Frequency
			rescheduled = true
		}
		if err := validateExpenseFields(expense.Name, expense.Amount, expense.Frequency); err != nil {
			return err
		}
		if update.CategoryID != nil {
			expense.CategoryID = nonEmpty(update.CategoryID)
		}
		if update.MatchPattern != nil {
			expense.MatchPattern = update.MatchPattern
		}
		if update.AdjustForWeekends != nil && *update.AdjustForWeekends != expense.AdjustForWeekends {
			expense.AdjustForWeekends = *update.AdjustForWeekends
			rescheduled = true
		}
		if update.NextDueDate != nil {
			expense.NextDueDate = update.NextDueDate
		}

		err = tx.Model(expense).Select(
			"Name", "Description", "Amount", "Frequency", "CategoryID",
			"MatchPattern", "AdjustForWeekends", "NextDueDate", "UpdatedAt",
		).Updates(expense).Error
		if err != nil {
			return err
		}
		if update.NextDueDate != nil || !rescheduled {
			return nil
		}
		return recomputeNextDueDate(tx, expense, s.loc)
	})
	if err != nil {
		return nil, internal(err)
	}
	return expense, nil
}

// DeleteFixedExpense removes a fixed expense and its transaction links.
func (s *fixedExpenseService) DeleteFixedExpense(userID, budgetID, expenseID string) error {
	expense, err := s.GetFixedExpenseByID(userID, budgetID, expenseID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fixed_expense_id = ?", expense.ID).Delete(&models.FixedExpenseTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(expense).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// TagTransaction links a transaction to a fixed expense by hand and
// re-derives the next due date.
func (s *fixedExpenseService) TagTransaction(userID, budgetID, expenseID, transactionID string) (*models.FixedExpense, error) {
	if _, err := findOwnedBudget(s.db, userID, budgetID); err != nil {
		return nil, err
	}
	if _, err := findFixedExpense(s.db, userID, budgetID, expenseID); err != nil {
		return nil, err
	}
	transaction, err := findOwnedTransaction(s.db, userID, transactionID)
	if err != nil {
		return nil, err
	}

	var expense *models.FixedExpense
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if expense, err = findFixedExpense(tx, userID, budgetID, expenseID); err != nil {
			return err
		}

		linked, err := expenseLinks.isLinked(tx, expense.ID, transaction.ID)
		if err != nil {
			return err
		}
		if linked {
			return apperrors.ErrTransactionAlreadyTagged
		}

		link := &models.FixedExpenseTransaction{
			FixedExpenseID: expense.ID,
			TransactionID:  transaction.ID,
			LinkedAt:       time.Now(),
		}
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		return recomputeNextDueDate(tx, expense, s.loc)
	})
	if err != nil {
		return nil, internal(err)
	}
	return expense, nil
}

// UntagTransaction removes a link and re-derives the next due date from the
// links that remain. With none left the due date is cleared.
func (s *fixedExpenseService) UntagTransaction(userID, budgetID, expenseID, transactionID string) (*models.FixedExpense, error) {
	if _, err := findOwnedBudget(s.db, userID, budgetID); err != nil {
		return nil, err
	}

	var expense *models.FixedExpense
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if expense, err = findFixedExpense(tx, userID, budgetID, expenseID); err != nil {
			return err
		}

		result := tx.Where("fixed_expense_id = ? AND transaction_id = ?", expense.ID, transactionID).Delete(&models.FixedExpenseTransaction{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrTransactionNotTagged
		}
		return recomputeNextDueDate(tx, expense, s.loc)
	})
	if err != nil {
		return nil, internal(err)
	}
	return expense, nil
}

// GetTaggedTransactions lists a fixed expense's links with their
// transactions, newest transaction first.
func (s *fixedExpenseService) GetTaggedTransactions(userID, budgetID, expenseID string) ([]models.FixedExpenseTransaction, error) {
	expense, err := s.GetFixedExpenseByID(userID, budgetID, expenseID)
	if err != nil {
		return nil, err
	}

	var links []models.FixedExpenseTransaction
	err = s.db.Preload("Transaction").
		Joins("JOIN transactions ON transactions.id = fixed_expense_transactions.transaction_id").
		Where("fixed_expense_transactions.fixed_expense_id = ?", expense.ID).
		Order("transactions.date DESC").
		Find(&links).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return links, nil
}

// InferFrequency classifies the cadence of a fixed expense's tagged transactions.
func (s *fixedExpenseService) InferFrequency(userID, budgetID, expenseID string) (*recurrence.Inference, error) {
	expense, err := s.GetFixedExpenseByID(userID, budgetID, expenseID)
	if err != nil {
		return nil, err
	}

	dates, err := expenseLinks.linkedDates(s.db, expense.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	inference := recurrence.Infer(dates, recurrence.GenericBands)
	return &inference, nil
}
