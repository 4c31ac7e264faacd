package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tally/internal/models"
	"tally/internal/pagination"
	"tally/internal/progress"
	"tally/internal/recurrence"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// AccountInput is a bank account as reported by the aggregator.
type AccountInput struct {
	ExternalID       string
	Name             string
	Type             string
	FormattedAccount string
	Balance          decimal.Decimal
	Currency         string
}

// AccountServicer defines the contract for synced bank accounts.
type AccountServicer interface {
	UpsertAccount(userID string, input AccountInput) (*models.Account, error)
	GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name, color, description string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name, color string, description *string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// Signature identifies the transactions a reference rule applies to.
// Merchant and FromAccount are "" when unknown.
type Signature struct {
	Merchant    string
	Description string
	FromAccount string
}

// SignatureOf returns the rule signature of a transaction.
func SignatureOf(tx *models.Transaction) Signature {
	return Signature{
		Merchant:    tx.Merchant,
		Description: tx.Description,
		FromAccount: tx.FromAccount(),
	}
}

// ReferenceRuleServicer owns the learned signature-to-category rules.
//
// FindRule returns (nil, nil) when no rule applies. UpsertRule runs on the
// given handle so callers can include it in their own transaction.
type ReferenceRuleServicer interface {
	FindRule(userID string, sig Signature, amount *decimal.Decimal) (*models.ReferenceRule, error)
	UpsertRule(tx *gorm.DB, userID string, sig Signature, categoryID string, amount *decimal.Decimal) (*models.ReferenceRule, error)
	GetCategoryRules(userID, categoryID string) ([]models.ReferenceRule, error)
	GetRuleByID(userID, ruleID string) (*models.ReferenceRule, error)
	UpdateAmountCondition(userID, ruleID string, condition *models.AmountCondition) (*models.ReferenceRule, error)
	DeleteRule(userID, ruleID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate      *time.Time
	ToDate        *time.Time
	AccountID     *string
	CategoryID    *string
	Uncategorized bool
	Merchant      string
	Description   string
}

// ImportItem is one transaction from a bank sync.
type ImportItem struct {
	ExternalID  string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Currency    string
	Type        string
	RawCategory string
	Merchant    string
	Meta        models.TransactionMeta
}

// ImportResult counts what an import did.
type ImportResult struct {
	Imported    int `json:"imported"`
	Created     int `json:"created"`
	Updated     int `json:"updated"`
	Categorized int `json:"categorized"`
	AutoTagged  int `json:"auto_tagged"`
}

// FrequencyQuery selects the transactions to infer a cadence from. Either
// TransactionID or at least one of Merchant and Description is required.
type FrequencyQuery struct {
	TransactionID string
	Merchant      string
	Description   string
}

// FrequencyEstimate is the cadence inferred from similar transactions.
type FrequencyEstimate struct {
	recurrence.Inference
	MatchCount   int                 `json:"match_count"`
	AverageCents int64               `json:"average_amount"`
	NextDueDate  *time.Time          `json:"next_due_date,omitempty"`
	MatchPattern models.MatchPattern `json:"match_pattern"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	GetCategoryTransactions(userID, categoryID string, from, to time.Time) ([]models.Transaction, error)
	UpdateCategory(userID, transactionID string, categoryID *string) (*models.Transaction, error)
	ImportTransactions(userID, accountID string, items []ImportItem) (*ImportResult, error)
	InferFrequency(userID string, query FrequencyQuery) (*FrequencyEstimate, error)
	GetCategoryAverages(userID string, periodStart time.Time, period models.BudgetPeriod) ([]progress.Suggestion, error)
}

// BudgetInput holds the fields for creating a budget. A nil PeriodEnd is
// derived from PeriodStart and Period.
type BudgetInput struct {
	Name        string
	Period      models.BudgetPeriod
	PeriodStart time.Time
	PeriodEnd   *time.Time
	Status      models.BudgetStatus
}

// BudgetUpdate holds optional budget changes.
type BudgetUpdate struct {
	Name        string
	Status      *models.BudgetStatus
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}

// RolloverResult is the budget created by a rollover and what was copied into it.
type RolloverResult struct {
	Budget            *models.Budget `json:"budget"`
	CopiedIncomes     int            `json:"copied_incomes"`
	CopiedExpenses    int            `json:"copied_fixed_expenses"`
	CopiedAllocations int            `json:"copied_allocations"`
}

// BudgetProgress is the progress report of one budget.
type BudgetProgress struct {
	Budget *models.Budget `json:"budget"`
	progress.Report
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID string, input BudgetInput) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest, status *models.BudgetStatus) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, update BudgetUpdate) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	RolloverBudget(userID, budgetID, newName string) (*RolloverResult, error)
	GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error)
}

// AllocationSuggestions are proposed allocations for a budget.
type AllocationSuggestions struct {
	LookbackStart time.Time             `json:"lookback_start"`
	LookbackEnd   time.Time             `json:"lookback_end"`
	BudgetPeriod  models.BudgetPeriod   `json:"budget_period"`
	Suggestions   []progress.Suggestion `json:"suggestions"`
}

// AllocationServicer defines the contract for per-category budget allocations.
type AllocationServicer interface {
	CreateAllocation(userID, budgetID, categoryID string, amount int64, notes string) (*models.CategoryAllocation, error)
	GetBudgetAllocations(userID, budgetID string) ([]models.CategoryAllocation, error)
	UpdateAllocation(userID, budgetID, allocationID string, amount *int64, notes *string) (*models.CategoryAllocation, error)
	DeleteAllocation(userID, budgetID, allocationID string) error
	GetSuggestions(userID, budgetID string) (*AllocationSuggestions, error)
}

// IncomeInput holds the fields for creating an income item.
type IncomeInput struct {
	Name                string
	Amount              int64
	Frequency           recurrence.Frequency
	Notes               string
	ReferenceDate       *time.Time
	AdjustForWeekends   *bool
	ExpectedFromAccount *string
	AutoTagEnabled      *bool
}

// IncomeUpdate holds optional income changes.
type IncomeUpdate struct {
	Name                string
	Amount              *int64
	Frequency           *recurrence.Frequency
	Notes               *string
	ReferenceDate       *time.Time
	AdjustForWeekends   *bool
	ExpectedFromAccount *string
	AutoTagEnabled      *bool
}

// IncomeServicer defines the contract for recurring income and its tagged
// transactions. Tagging and untagging recompute the next payday.
type IncomeServicer interface {
	CreateIncome(userID, budgetID string, input IncomeInput) (*models.BudgetIncome, error)
	GetBudgetIncomes(userID, budgetID string) ([]models.BudgetIncome, error)
	GetIncomeByID(userID, budgetID, incomeID string) (*models.BudgetIncome, error)
	UpdateIncome(userID, budgetID, incomeID string, update IncomeUpdate) (*models.BudgetIncome, error)
	DeleteIncome(userID, budgetID, incomeID string) error
	TagTransaction(userID, budgetID, incomeID, transactionID string, referenceDate *time.Time) (*models.BudgetIncome, error)
	UntagTransaction(userID, budgetID, incomeID, transactionID string) (*models.BudgetIncome, error)
	GetTaggedTransactions(userID, budgetID, incomeID string) ([]models.IncomeTransaction, error)
	InferFrequency(userID, budgetID, incomeID string) (*recurrence.Inference, error)
}

// FixedExpenseInput holds the fields for creating a fixed expense.
type FixedExpenseInput struct {
	Name              string
	Description       string
	Amount            int64
	Frequency         recurrence.Frequency
	CategoryID        *string
	MatchPattern      *models.MatchPattern
	AdjustForWeekends bool
	NextDueDate       *time.Time
}

// FixedExpenseUpdate holds optional fixed expense changes.
type FixedExpenseUpdate struct {
	Name              string
	Description       *string
	Amount            *int64
	Frequency         *recurrence.Frequency
	CategoryID        *string
	MatchPattern      *models.MatchPattern
	AdjustForWeekends *bool
	NextDueDate       *time.Time
}

// FixedExpenseServicer defines the contract for recurring bills and their
// tagged transactions. Tagging and untagging recompute the next due date.
type FixedExpenseServicer interface {
	CreateFixedExpense(userID, budgetID string, input FixedExpenseInput) (*models.FixedExpense, error)
	GetBudgetFixedExpenses(userID, budgetID string) ([]models.FixedExpense, error)
	GetFixedExpenseByID(userID, budgetID, expenseID string) (*models.FixedExpense, error)
	UpdateFixedExpense(userID, budgetID, expenseID string, update FixedExpenseUpdate) (*models.FixedExpense, error)
	DeleteFixedExpense(userID, budgetID, expenseID string) error
	TagTransaction(userID, budgetID, expenseID, transactionID string) (*models.FixedExpense, error)
	UntagTransaction(userID, budgetID, expenseID, transactionID string) (*models.FixedExpense, error)
	GetTaggedTransactions(userID, budgetID, expenseID string) ([]models.FixedExpenseTransaction, error)
	InferFrequency(userID, budgetID, expenseID string) (*recurrence.Inference, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
