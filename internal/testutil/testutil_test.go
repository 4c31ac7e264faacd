package testutil_test

import (
	"testing"

	"tally/internal/errors"
	"tally/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{
		"users", "accounts", "categories", "transactions", "reference_rules", "budgets",
		"budget_incomes", "income_transactions", "fixed_expenses", "fixed_expense_transactions",
		"category_allocations", "audit_logs",
	} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestUser(t, first)

	var count int64
	if err := second.Table("users").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Errorf("expected a fresh database, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	account := testutil.CreateTestAccount(t, db, user.ID)
	if account.Balance.Currency != "NZD" {
		t.Errorf("expected NZD balance, got %s", account.Balance.Currency)
	}

	tx := testutil.CreateTestTransaction(t, db, user.ID, account.ID, testutil.Date(2024, 1, 5), "-12.50")
	if !tx.IsDebit() {
		t.Error("expected a negative amount to be a debit")
	}

	budget := testutil.CreateTestBudget(t, db, user.ID)
	income := testutil.CreateTestIncome(t, db, user.ID, budget.ID)
	if income.Amount != 300000 {
		t.Errorf("expected income amount 300000, got %d", income.Amount)
	}

	category := testutil.CreateTestCategory(t, db, user.ID)
	allocation := testutil.CreateTestAllocation(t, db, budget.ID, category.ID, 5000)
	if allocation.ID == "" {
		t.Error("allocation should have an ID")
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrAccountNotFound, "custom message")
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
