package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/logger"
	"tally/internal/models"
	"tally/internal/pagination"
	"tally/internal/progress"
	"tally/internal/recurrence"
)

const (
	// frequencySampleLimit caps how many recent transactions feed a free-text inference.
	frequencySampleLimit = 20
	// descriptionPrefixLen is how much of a reference description similar transactions must contain.
	descriptionPrefixLen = 20
)

// ledgerColumns are refreshed when a transaction is re-imported. category_id
// is deliberately absent; it belongs to the user.
var ledgerColumns = []string{
	"date", "description", "amount_value", "amount_currency", "type",
	"raw_category", "merchant", "meta", "updated_at",
}

// transactionService handles transaction-related business logic.
type transactionService struct {
	db    *gorm.DB
	rules ReferenceRuleServicer
	loc   *time.Location
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, rules ReferenceRuleServicer, loc *time.Location) TransactionServicer {
	return &transactionService{
		db:    db,
		rules: rules,
		loc:   loc,
	}
}

// GetUserTransactions retrieves a paginated, filtered list of the user's transactions.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()
	order, err := page.OrderBy(transactionSorts, pagination.Desc("date"))
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Preload("Category").
		Scopes(pagination.Sorted(order), pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

var transactionSorts = pagination.Sorts{
	"date":     "date",
	"amount":   "amount_value",
	"merchant": "merchant",
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.AccountID != nil {
		q = q.Where("account_id = ?", *f.AccountID)
	}
	if f.Uncategorized {
		q = q.Where("category_id IS NULL")
	} else if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Merchant != "" {
		q = q.Where("merchant LIKE ?", "%"+f.Merchant+"%")
	}
	if f.Description != "" {
		q = q.Where("description LIKE ?", "%"+f.Description+"%")
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// GetCategoryTransactions lists a category's transactions from the day of
// from through the whole day of to, newest first. Zero bounds are open.
func (s *transactionService) GetCategoryTransactions(userID, categoryID string, from, to time.Time) ([]models.Transaction, error) {
	if _, err := findOwnedCategory(s.db, userID, categoryID); err != nil {
		return nil, err
	}

	q := s.db.Where("user_id = ? AND category_id = ?", userID, categoryID)
	if !from.IsZero() {
		q = q.Where("date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("date < ?", progress.Period{End: recurrence.CivilDate(to, s.loc)}.Until())
	}

	var transactions []models.Transaction
	if err := q.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// UpdateCategory sets or clears (nil) a transaction's category. Setting a
// category on a described transaction teaches the reference rules.
func (s *transactionService) UpdateCategory(userID, transactionID string, categoryID *string) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	var category *models.Category
	if categoryID != nil {
		if category, err = findOwnedCategory(s.db, userID, *categoryID); err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(transaction).Update("category_id", categoryID).Error; err != nil {
			return err
		}
		if category == nil || transaction.Description == "" {
			return nil
		}

		amount := transaction.Amount.Value
		_, err := s.rules.UpsertRule(tx, userID, SignatureOf(transaction), category.ID, &amount)
		return err
	})
	if err != nil {
		return nil, internal(err)
	}

	transaction.CategoryID = categoryID
	transaction.Category = category
	return transaction, nil
}

// ImportTransactions upserts a batch of synced transactions into an account.
// New and still-uncategorized rows are categorized through the reference
// rules, and credits from an income's expected account are auto-tagged.
func (s *transactionService) ImportTransactions(userID, accountID string, items []ImportItem) (*ImportResult, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, item := range items {
		if item.ExternalID == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "external_id is required")
		}
	}

	// Rules are resolved before the write transaction; the import never
	// changes them.
	matched := make([]*models.ReferenceRule, len(items))
	for i, item := range items {
		if item.Description == "" {
			continue
		}
		sig := Signature{Merchant: item.Merchant, Description: item.Description, FromAccount: item.Meta.OtherAccount}
		amount := item.Amount
		rule, err := s.rules.FindRule(userID, sig, &amount)
		if err != nil {
			return nil, err
		}
		matched[i] = rule
	}

	result := &ImportResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		touched := make(map[string]*models.BudgetIncome)

		for i, item := range items {
			transaction, created, err := s.upsertLedgerRow(tx, userID, account.ID, item)
			if err != nil {
				return err
			}
			result.Imported++
			if created {
				result.Created++
			} else {
				result.Updated++
			}

			if transaction.CategoryID == nil && matched[i] != nil {
				if err := tx.Model(transaction).Update("category_id", matched[i].CategoryID).Error; err != nil {
					return err
				}
				result.Categorized++
			}

			tagged, err := autoTag(tx, userID, transaction, touched)
			if err != nil {
				return err
			}
			result.AutoTagged += tagged
		}

		for _, income := range touched {
			if err := recomputeNextPayday(tx, income, s.loc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, internal(err)
	}

	logger.Get().Infow("Transactions imported",
		"user_id", userID,
		"account_id", accountID,
		"imported", result.Imported,
		"categorized", result.Categorized,
		"auto_tagged", result.AutoTagged,
	)
	return result, nil
}

// upsertLedgerRow inserts the item or refreshes the ledger columns of the
// existing row with the same external ID.
func (s *transactionService) upsertLedgerRow(tx *gorm.DB, userID, accountID string, item ImportItem) (*models.Transaction, bool, error) {
	row := models.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		ExternalID:  item.ExternalID,
		Date:        item.Date,
		Description: item.Description,
		Amount:      models.NewMoney(item.Amount, item.Currency),
		Type:        item.Type,
		RawCategory: item.RawCategory,
		Merchant:    item.Merchant,
		Meta:        datatypes.NewJSONType(item.Meta),
	}

	var existing models.Transaction
	err := tx.Where("account_id = ? AND external_id = ?", accountID, item.ExternalID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(&row).Error; err != nil {
			return nil, false, err
		}
		return &row, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	row.ID = existing.ID
	row.CreatedAt = existing.CreatedAt
	row.CategoryID = existing.CategoryID
	row.UpdatedAt = time.Now()
	if err := tx.Model(&existing).Select(ledgerColumns).Updates(&row).Error; err != nil {
		return nil, false, err
	}
	return &row, false, nil
}

// autoTag links transaction to every auto-tagging income that expects money
// from its counter-party account. Incomes that gain a link are collected in
// touched so their schedule is recomputed once per import.
func autoTag(tx *gorm.DB, userID string, transaction *models.Transaction, touched map[string]*models.BudgetIncome) (int, error) {
	from := transaction.FromAccount()
	if from == "" {
		return 0, nil
	}

	var incomes []models.BudgetIncome
	err := forUpdate(tx).
		Where("user_id = ? AND expected_from_account = ? AND auto_tag_enabled = ?", userID, from, true).
		Find(&incomes).Error
	if err != nil {
		return 0, err
	}

	tagged := 0
	for i := range incomes {
		income := &incomes[i]
		linked, err := incomeLinks.isLinked(tx, income.ID, transaction.ID)
		if err != nil {
			return 0, err
		}
		if linked {
			continue
		}

		link := &models.IncomeTransaction{
			IncomeID:      income.ID,
			TransactionID: transaction.ID,
			FromAccount:   from,
			LinkedAt:      time.Now(),
			AutoTagged:    true,
		}
		if err := tx.Create(link).Error; err != nil {
			return 0, err
		}
		if _, ok := touched[income.ID]; !ok {
			touched[income.ID] = income
		}
		tagged++
	}
	return tagged, nil
}

// InferFrequency estimates the cadence of a recurring payment from the most
// recent transactions resembling the query.
func (s *transactionService) InferFrequency(userID string, query FrequencyQuery) (*FrequencyEstimate, error) {
	q := s.db.Where("user_id = ?", userID)

	switch {
	case query.TransactionID != "":
		ref, err := findOwnedTransaction(s.db, userID, query.TransactionID)
		if err != nil {
			return nil, err
		}
		similar := s.db.Where("description LIKE ?", "%"+prefix(ref.Description, descriptionPrefixLen)+"%")
		if ref.Merchant != "" {
			similar = similar.Or("merchant = ?", ref.Merchant)
		}
		q = q.Where(similar)
	case query.Merchant != "" || query.Description != "":
		if query.Merchant != "" {
			q = q.Where("merchant LIKE ?", "%"+query.Merchant+"%")
		}
		if query.Description != "" {
			q = q.Where("description LIKE ?", "%"+query.Description+"%")
		}
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "provide transaction_id, merchant, or description")
	}

	var matches []models.Transaction
	if err := q.Order("date DESC").Limit(frequencySampleLimit).Find(&matches).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	dates := make([]time.Time, len(matches))
	total := decimal.Zero
	for i := range matches {
		dates[i] = matches[i].Date
		total = total.Add(matches[i].Amount.Abs())
	}

	estimate := &FrequencyEstimate{
		Inference:  recurrence.Infer(dates, recurrence.GenericBands),
		MatchCount: len(matches),
	}
	if len(matches) == 0 {
		return estimate, nil
	}

	latest := matches[0]
	estimate.AverageCents = models.ToCents(total.Div(decimal.NewFromInt(int64(len(matches)))))
	estimate.MatchPattern = models.MatchPattern{Merchant: latest.Merchant, Description: latest.Description}
	if estimate.HasSuggestion() {
		next := recurrence.Advance(latest.Date.In(s.loc), estimate.Suggested)
		estimate.NextDueDate = &next
	}
	return estimate, nil
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// GetCategoryAverages suggests allocations for a budget of the given period
// starting at periodStart, from the user's recent categorized spending.
func (s *transactionService) GetCategoryAverages(userID string, periodStart time.Time, period models.BudgetPeriod) ([]progress.Suggestion, error) {
	if period.Months() == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be MONTHLY, QUARTERLY or YEARLY")
	}
	return suggestAllocations(s.db, userID, periodStart, period, nil)
}

// suggestAllocations loads the lookback window's categorized transactions
// and the user's categories and runs progress.Suggest over them.
func suggestAllocations(db *gorm.DB, userID string, periodStart time.Time, period models.BudgetPeriod, existing []models.CategoryAllocation) ([]progress.Suggestion, error) {
	window := progress.Lookback(periodStart)

	var categories []models.Category
	if err := db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	err := db.Where("user_id = ? AND category_id IS NOT NULL AND date >= ? AND date < ?", userID, window.Start, window.Until()).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return progress.Suggest(periodStart, period, categories, transactions, existing), nil
}
