package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/pagination"
	"tally/internal/services"
)

// maxImportBatch bounds one import request.
const maxImportBatch = 500

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// UpdateCategoryRequest assigns or clears a transaction's category.
type UpdateCategoryRequest struct {
	CategoryID *string `json:"category_id"`
}

// ImportTransactionRequest is one ledger entry from a bank sync.
type ImportTransactionRequest struct {
	ExternalID  string                 `json:"external_id" binding:"required,max=100"`
	Date        string                 `json:"date" binding:"required"`
	Description string                 `json:"description" binding:"max=500"`
	Amount      decimal.Decimal        `json:"amount"`
	Currency    string                 `json:"currency" binding:"omitempty,iso4217"`
	Type        string                 `json:"type" binding:"max=20"`
	RawCategory string                 `json:"raw_category" binding:"max=100"`
	Merchant    string                 `json:"merchant" binding:"max=200"`
	Meta        models.TransactionMeta `json:"meta"`
}

// ImportTransactionsRequest is a batch of ledger entries for one account.
type ImportTransactionsRequest struct {
	Transactions []ImportTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// InferFrequencyRequest selects the transactions to infer a cadence from.
type InferFrequencyRequest struct {
	TransactionID string `json:"transaction_id"`
	Merchant      string `json:"merchant" binding:"max=200"`
	Description   string `json:"description" binding:"max=500"`
}

// GetUserTransactions lists the user's transactions.
// @Summary     Get transactions
// @Description Get a paginated, filtered list of the authenticated user's transactions, newest first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       from_date     query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date       query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param       account_id    query string false "Filter by account"
// @Param       category_id   query string false "Filter by category"
// @Param       uncategorized query bool   false "Only transactions without a category"
// @Param       merchant      query string false "Merchant contains"
// @Param       description   query string false "Description contains"
// @Param       page          query int    false "Page number (default 1)"
// @Param       page_size     query int    false "Items per page (default 20, max 100)"
// @Param       sort          query string false "Sort by: date, amount, merchant (default date, newest first)"
// @Param       order         query string false "asc or desc"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("from_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.ToDate = &t
	}

	var err error
	if filter.AccountID, err = parseOptionalID(c.Query("account_id"), "account_id"); err != nil {
		return filter, err
	}
	if filter.CategoryID, err = parseOptionalID(c.Query("category_id"), "category_id"); err != nil {
		return filter, err
	}

	switch c.Query("uncategorized") {
	case "", "false":
	case "true":
		filter.Uncategorized = true
	default:
		return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "uncategorized must be 'true' or 'false'")
	}

	filter.Merchant = c.Query("merchant")
	filter.Description = c.Query("description")
	return filter, nil
}

// GetTransactionByID returns one transaction.
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateCategory assigns a category to a transaction and learns a reference
// rule from it, or clears the category when category_id is null.
// @Summary     Categorize transaction
// @Description Set or clear a transaction's category. Setting a category also records a reference rule for similar transactions.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Transaction ID"
// @Param       request body UpdateCategoryRequest true "Category assignment"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id}/category [patch]
func (h *TransactionHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var categoryID *string
	if req.CategoryID != nil {
		if categoryID, err = parseOptionalID(*req.CategoryID, "category_id"); err != nil || categoryID == nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category_id"))
			return
		}
	}

	transaction, err := h.transactionService.UpdateCategory(userID, transactionID, categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CATEGORIZE_TRANSACTION", "transaction", transactionID, c.ClientIP(),
		map[string]interface{}{"category_id": categoryID})

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// ImportTransactions ingests a batch of synced transactions for an account.
// @Summary     Import transactions
// @Description Upsert synced transactions by external ID, categorize them from reference rules and auto-tag expected income
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Account ID"
// @Param       request body ImportTransactionsRequest true "Transactions"
// @Success     200 {object} services.ImportResult "Import counts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id}/transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ImportTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	if len(req.Transactions) > maxImportBatch {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "too many transactions in one import"))
		return
	}

	items := make([]services.ImportItem, 0, len(req.Transactions))
	for _, t := range req.Transactions {
		date, err := parseFlexibleTime(t.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction "+t.ExternalID+": "+err.Error()))
			return
		}
		items = append(items, services.ImportItem{
			ExternalID:  t.ExternalID,
			Date:        date,
			Description: t.Description,
			Amount:      t.Amount,
			Currency:    t.Currency,
			Type:        t.Type,
			RawCategory: t.RawCategory,
			Merchant:    t.Merchant,
			Meta:        t.Meta,
		})
	}

	result, err := h.transactionService.ImportTransactions(userID, accountID, items)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// InferFrequency estimates how often a kind of transaction recurs.
// @Summary     Infer transaction frequency
// @Description Infer the cadence of transactions similar to a reference transaction, or matching a merchant/description
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InferFrequencyRequest true "Match criteria"
// @Success     200 {object} services.FrequencyEstimate "Inferred frequency"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/infer-frequency [post]
func (h *TransactionHandler) InferFrequency(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InferFrequencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	query := services.FrequencyQuery{Merchant: req.Merchant, Description: req.Description}
	if req.TransactionID != "" {
		id, err := parseOptionalID(req.TransactionID, "transaction_id")
		if err != nil {
			respondWithError(c, err)
			return
		}
		query.TransactionID = *id
	}

	estimate, err := h.transactionService.InferFrequency(userID, query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// GetCategoryAverages suggests per-category amounts for a budget that does
// not exist yet.
// @Summary     Category spending averages
// @Description Average spend per category over the three months before period_start, scaled to the period
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       period_start query string true "Budget period start (YYYY-MM-DD)"
// @Param       period       query string true "MONTHLY, QUARTERLY or YEARLY"
// @Success     200 {array}  progress.Suggestion "Suggestions, largest first"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/category-averages [get]
func (h *TransactionHandler) GetCategoryAverages(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	periodStart, err := parseFlexibleTime(c.Query("period_start"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "period_start: "+err.Error()))
		return
	}
	period := models.BudgetPeriod(c.Query("period"))
	if period.Months() == 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be MONTHLY, QUARTERLY or YEARLY"))
		return
	}

	suggestions, err := h.transactionService.GetCategoryAverages(userID, periodStart, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// GetCategoryTransactions lists a category's transactions, optionally
// bounded by from and to.
// @Summary     Get category transactions
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id   path  string true  "Category ID"
// @Param       from query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to   query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {array}  models.Transaction "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id}/transactions [get]
func (h *TransactionHandler) GetCategoryTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var from, to time.Time
	if v := c.Query("from"); v != "" {
		if from, err = parseFlexibleTime(v); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from: "+err.Error()))
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = parseFlexibleTime(v); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to: "+err.Error()))
			return
		}
	}

	transactions, err := h.transactionService.GetCategoryTransactions(userID, categoryID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
