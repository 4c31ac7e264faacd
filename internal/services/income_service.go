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

// incomeService handles recurring income items and their tagged transactions.
type incomeService struct {
	db  *gorm.DB
	loc *time.Location
}

// NewIncomeService creates a new IncomeServicer. Paydays are predicted in loc.
func NewIncomeService(db *gorm.DB, loc *time.Location) IncomeServicer {
	return &incomeService{db: db, loc: loc}
}

func validateIncomeFields(name string, amount int64, frequency recurrence.Frequency) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
	}
	if !frequency.In(recurrence.IncomeFrequencies) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "frequency must be WEEKLY, FORTNIGHTLY, or MONTHLY")
	}
	return nil
}

// CreateIncome adds an income item to a budget. Weekend adjustment and
// auto-tagging are on unless switched off.
func (s *incomeService) CreateIncome(userID, budgetID string, input IncomeInput) (*models.BudgetIncome, error) {
	if err := validateIncomeFields(input.Name, input.Amount, input.Frequency); err != nil {
		return nil, err
	}
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	income := &models.BudgetIncome{
		BudgetID:            budget.ID,
		UserID:              userID,
		Name:                strings.TrimSpace(input.Name),
		Amount:              input.Amount,
		Frequency:           input.Frequency,
		Notes:               input.Notes,
		ReferenceDate:       input.ReferenceDate,
		AdjustForWeekends:   true,
		ExpectedFromAccount: nonEmpty(input.ExpectedFromAccount),
		AutoTagEnabled:      true,
	}
	if input.AdjustForWeekends != nil {
		income.AdjustForWeekends = *input.AdjustForWeekends
	}
	if input.AutoTagEnabled != nil {
		income.AutoTagEnabled = *input.AutoTagEnabled
	}
	income.NextPayday = income.Schedule(s.loc).Recompute(nil)

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// nonEmpty maps a blank string to nil.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// GetBudgetIncomes lists a budget's income items.
func (s *incomeService) GetBudgetIncomes(userID, budgetID string) ([]models.BudgetIncome, error) {
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	var incomes []models.BudgetIncome
	if err := s.db.Where("budget_id = ?", budget.ID).Order("created_at ASC").Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, nil
}

// GetIncomeByID returns an income item of the user's budget.
func (s *incomeService) GetIncomeByID(userID, budgetID, incomeID string) (*models.BudgetIncome, error) {
	if _, err := findOwnedBudget(s.db, userID, budgetID); err != nil {
		return nil, err
	}
	return findIncome(s.db, userID, budgetID, incomeID)
}

// findIncome loads an income item, locking it when db is a transaction on postgres.
func findIncome(db *gorm.DB, userID, budgetID, incomeID string) (*models.BudgetIncome, error) {
	var income models.BudgetIncome
	err := forUpdate(db).
		Where("id = ? AND budget_id = ? AND user_id = ?", incomeID, budgetID, userID).
		First(&income).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome applies the non-nil fields of update and re-derives the next payday.
func (s *incomeService) UpdateIncome(userID, budgetID, incomeID string, update IncomeUpdate) (*models.BudgetIncome, error) {
	if _, err := findOwnedBudget(s.db, userID, budgetID); err != nil {
		return nil, err
	}

	var income *models.BudgetIncome
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if income, err = findIncome(tx, userID, budgetID, incomeID); err != nil {
			return err
		}

		if update.Name != "" {
			income.Name = strings.TrimSpace(update.Name)
		}
		if update.Amount != nil {
			income.Amount = *update.Amount
		}
		if update.Frequency != nil {
			income.Frequency = *update.Frequency
		}
		if err := validateIncomeFields(income.Name, income.Amount, income.Frequency); err != nil {
			return err
		}
		if update.Notes != nil {
			income.Notes = *update.Notes
		}
		if update.ReferenceDate != nil {
			income.ReferenceDate = update.ReferenceDate
		}
		if update.AdjustForWeekends != nil {
			income.AdjustForWeekends = *update.AdjustForWeekends
		}
		if update.ExpectedFromAccount != nil {
			income.ExpectedFromAccount = nonEmpty(update.ExpectedFromAccount)
		}
		if update.AutoTagEnabled != nil {
			income.AutoTagEnabled = *update.AutoTagEnabled
		}

		err = tx.Model(income).Select(
			"Name", "Amount", "Frequency", "Notes", "ReferenceDate",
			"AdjustForWeekends", "ExpectedFromAccount", "AutoTagEnabled", "UpdatedAt",
		).Updates(income).Error
		if err != nil {
			return err
		}
		return recomputeNextPayday(tx, income, s.loc)
	})
	if err != nil {
		return nil, internal(err)
	}
	return income, nil
}

// DeleteIncome removes an income item and its transaction links.
func (s *incomeService) DeleteIncome(userID, budgetID, incomeID string) error {
	income, err := s.GetIncomeByID(userID, budgetID, incomeID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("income_id = ?", income.ID).Delete(&models.IncomeTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(income).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// TagTransaction links a transaction to an income item by hand and re-derives
// the next payday. The transaction's counter-party account becomes the
// income's expected account if none is set yet.
func (s *incomeService) TagTransaction(userID, budgetID, incomeID, transactionID string, referenceDate *time.Time) (*models.BudgetIncome, error) {
	if _, err := findOwnedBudget(s.db, userID, budgetID); err != nil {
		return nil, err
	}
	if _, err := findIncome(s.db, userID, budgetID, incomeID); err != nil {
		return nil, err
	}
	transaction, err := findOwnedTransaction(s.db, userID, transactionID)
	if err != nil {
		return nil, err
	}

	var income *models.BudgetIncome
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if income, err = findIncome(tx, userID, budgetID, incomeID); err != nil {
			return err
		}

		linked, err := incomeLinks.isLinked(tx, income.ID, transaction.ID)
		if err != nil {
			return err
		}
		if linked {
			return apperrors.ErrTransactionAlreadyTagged
		}

		from := transaction.FromAccount()
		link := &models.IncomeTransaction{
			IncomeID:      income.ID,
			TransactionID: transaction.ID,
			FromAccount:   from,
			LinkedAt:      time.Now(),
		}
		if err := tx.Create(link).Error; err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if income.ExpectedFromAccount == nil && from != "" {
			income.ExpectedFromAccount = &from
			updates["expected_from_account"] = from
		}
		if referenceDate != nil {
			income.ReferenceDate = referenceDate
			updates["reference_date"] = *referenceDate
		}
		if len(updates) > 0 {
			if err := tx.Model(income).Updates(updates).Error; err != nil {
				return err
			}
		}
		return recomputeNextPayday(tx, income, s.loc)
	})
	if err != nil {
		return nil, internal(err)
	}
	return income, nil
}

// UntagTransaction removes a link and re-derives the next payday from the
// links that remain.
func (s *incomeService) UntagTransaction(userID, budgetID, incomeID, transactionID string) (*models.BudgetIncome, error) {
	if _, err := findOwnedBudget(s.db, userID, budgetID); err != nil {
		return nil, err
	}

	var income *models.BudgetIncome
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if income, err = findIncome(tx, userID, budgetID, incomeID); err != nil {
			return err
		}

		result := tx.Where("income_id = ? AND transaction_id = ?", income.ID, transactionID).Delete(&models.IncomeTransaction{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrTransactionNotTagged
		}
		return recomputeNextPayday(tx, income, s.loc)
	})
	if err != nil {
		return nil, internal(err)
	}
	return income, nil
}

// GetTaggedTransactions lists an income's links with their transactions,
// newest transaction first.
func (s *incomeService) GetTaggedTransactions(userID, budgetID, incomeID string) ([]models.IncomeTransaction, error) {
	income, err := s.GetIncomeByID(userID, budgetID, incomeID)
	if err != nil {
		return nil, err
	}

	var links []models.IncomeTransaction
	err = s.db.Preload("Transaction").
		Joins("JOIN transactions ON transactions.id = income_transactions.transaction_id").
		Where("income_transactions.income_id = ?", income.ID).
		Order("transactions.date DESC").
		Find(&links).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return links, nil
}

// InferFrequency classifies the cadence of an income's tagged transactions.
func (s *incomeService) InferFrequency(userID, budgetID, incomeID string) (*recurrence.Inference, error) {
	income, err := s.GetIncomeByID(userID, budgetID, incomeID)
	if err != nil {
		return nil, err
	}

	dates, err := incomeLinks.linkedDates(s.db, income.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	inference := recurrence.Infer(dates, recurrence.IncomeBands)
	return &inference, nil
}
