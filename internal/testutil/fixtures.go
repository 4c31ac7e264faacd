package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"tally/internal/models"
	"tally/internal/recurrence"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     "Test User",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates a synced bank account with a zero NZD balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string) *models.Account {
	t.Helper()

	n := nextID()
	account := &models.Account{
		UserID:           userID,
		ExternalID:       fmt.Sprintf("acc_%d", n),
		Name:             fmt.Sprintf("Test Account %d", n),
		Type:             "CHECKING",
		FormattedAccount: fmt.Sprintf("12-3456-%07d-00", n),
		Balance:          models.NewMoney(decimal.Zero, ""),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, userID, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Color:  models.DefaultCategoryColor,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction with the given date and signed
// dollar amount, e.g. "-42.50".
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, accountID string, date time.Time, amount string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionFrom(t, db, &models.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		Date:        date,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      models.NewMoney(decimal.RequireFromString(amount), ""),
	})
}

// CreateTestTransactionFrom creates tx, filling in an external ID, date and
// currency when they are unset.
func CreateTestTransactionFrom(t *testing.T, db *gorm.DB, tx *models.Transaction) *models.Transaction {
	t.Helper()

	if tx.ExternalID == "" {
		tx.ExternalID = fmt.Sprintf("trans_%d", nextID())
	}
	if tx.Amount.Currency == "" {
		tx.Amount.Currency = models.DefaultCurrency
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a DRAFT monthly budget for January 2024.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Budget %d", nextID()),
		Period:      models.BudgetPeriodMonthly,
		PeriodStart: Date(2024, time.January, 1),
		PeriodEnd:   Date(2024, time.January, 31),
		Status:      models.BudgetStatusDraft,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestIncome creates a monthly $3000.00 income with weekend adjustment
// and auto-tagging switched off.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID, budgetID string) *models.BudgetIncome {
	t.Helper()

	income := &models.BudgetIncome{
		BudgetID:  budgetID,
		UserID:    userID,
		Name:      fmt.Sprintf("Test Income %d", nextID()),
		Amount:    300000,
		Frequency: recurrence.Monthly,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestFixedExpense creates a monthly $100.00 fixed expense.
func CreateTestFixedExpense(t *testing.T, db *gorm.DB, userID, budgetID string) *models.FixedExpense {
	t.Helper()

	expense := &models.FixedExpense{
		BudgetID:  budgetID,
		UserID:    userID,
		Name:      fmt.Sprintf("Test Expense %d", nextID()),
		Amount:    10000,
		Frequency: recurrence.Monthly,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test fixed expense: %v", err)
	}
	return expense
}

// CreateTestAllocation allocates amount cents of a budget to a category.
func CreateTestAllocation(t *testing.T, db *gorm.DB, budgetID, categoryID string, amount int64) *models.CategoryAllocation {
	t.Helper()

	allocation := &models.CategoryAllocation{
		BudgetID:        budgetID,
		CategoryID:      categoryID,
		AllocatedAmount: amount,
	}
	if err := db.Create(allocation).Error; err != nil {
		t.Fatalf("failed to create test allocation: %v", err)
	}
	return allocation
}
