package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/recurrence"
	"tally/internal/services"
)

// IncomeHandler handles a budget's recurring income and its tagged deposits.
type IncomeHandler struct {
	incomeService services.IncomeServicer
	auditService  services.AuditServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer, auditService services.AuditServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService, auditService: auditService}
}

// CreateIncomeRequest describes a recurring income. Amount is in cents.
type CreateIncomeRequest struct {
	Name                string  `json:"name" binding:"required,min=1,max=100"`
	Amount              int64   `json:"amount" binding:"gte=0"`
	Frequency           string  `json:"frequency" binding:"required,income_frequency"`
	Notes               string  `json:"notes" binding:"max=500"`
	ReferenceDate       string  `json:"reference_date"`
	AdjustForWeekends   *bool   `json:"adjust_for_weekends"`
	ExpectedFromAccount *string `json:"expected_from_account" binding:"omitempty,max=100"`
	AutoTagEnabled      *bool   `json:"auto_tag_enabled"`
}

// UpdateIncomeRequest changes a recurring income. Omitted fields are kept.
type UpdateIncomeRequest struct {
	Name                string  `json:"name" binding:"omitempty,min=1,max=100"`
	Amount              *int64  `json:"amount" binding:"omitempty,gte=0"`
	Frequency           *string `json:"frequency" binding:"omitempty,income_frequency"`
	Notes               *string `json:"notes" binding:"omitempty,max=500"`
	ReferenceDate       string  `json:"reference_date"`
	AdjustForWeekends   *bool   `json:"adjust_for_weekends"`
	ExpectedFromAccount *string `json:"expected_from_account" binding:"omitempty,max=100"`
	AutoTagEnabled      *bool   `json:"auto_tag_enabled"`
}

// TagIncomeTransactionRequest links a deposit to an income.
type TagIncomeTransactionRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
	ReferenceDate string `json:"reference_date"`
}

// parseIncomeIDs reads the budget and income path parameters.
func parseIncomeIDs(c *gin.Context) (string, string, error) {
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		return "", "", err
	}
	incomeID, err := parsePathID(c, "incomeId")
	if err != nil {
		return "", "", err
	}
	return budgetID, incomeID, nil
}

// CreateIncome adds a recurring income to a budget.
// @Summary     Create income
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Budget ID"
// @Param       request body CreateIncomeRequest true "Income"
// @Success     201 {object} models.BudgetIncome "Income created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	referenceDate, err := optionalDate(req.ReferenceDate, "reference_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.CreateIncome(userID, budgetID, services.IncomeInput{
		Name:                req.Name,
		Amount:              req.Amount,
		Frequency:           recurrence.Frequency(req.Frequency),
		Notes:               req.Notes,
		ReferenceDate:       referenceDate,
		AdjustForWeekends:   req.AdjustForWeekends,
		ExpectedFromAccount: req.ExpectedFromAccount,
		AutoTagEnabled:      req.AutoTagEnabled,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// GetIncomes lists a budget's income.
// @Summary     Get income
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {array}  models.BudgetIncome "Income"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/income [get]
func (h *IncomeHandler) GetIncomes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomes, err := h.incomeService.GetBudgetIncomes(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incomes": incomes})
}

// GetIncome returns one income.
// @Summary     Get income by ID
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string true "Budget ID"
// @Param       incomeId path string true "Income ID"
// @Success     200 {object} models.BudgetIncome "Income"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/income/{incomeId} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, incomeID, err := parseIncomeIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.GetIncomeByID(userID, budgetID, incomeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdateIncome changes an income. A new reference date or frequency
// recomputes the next payday.
// @Summary     Update income
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string              true "Budget ID"
// @Param       incomeId path string              true "Income ID"
// @Param       request  body UpdateIncomeRequest true "Changes"
// @Success     200 {object} models.BudgetIncome "Updated income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/income/{incomeId} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, incomeID, err := parseIncomeIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	referenceDate, err := optionalDate(req.ReferenceDate, "reference_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	update := services.IncomeUpdate{
		Name:                req.Name,
		Amount:              req.Amount,
		Notes:               req.Notes,
		ReferenceDate:       referenceDate,
		AdjustForWeekends:   req.AdjustForWeekends,
		ExpectedFromAccount: req.ExpectedFromAccount,
		AutoTagEnabled:      req.AutoTagEnabled,
	}
	if req.Frequency != nil {
		f := recurrence.Frequency(*req.Frequency)
		update.Frequency = &f
	}

	income, err := h.incomeService.UpdateIncome(userID, budgetID, incomeID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// DeleteIncome removes an income and its transaction links.
// @Summary     Delete income
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string true "Budget ID"
// @Param       incomeId path string true "Income ID"
// @Success     200 {object} MessageResponse "Income deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/income/{incomeId} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, incomeID, err := parseIncomeIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(userID, budgetID, incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INCOME", "budget_income", incomeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}

// TagTransaction links a deposit to an income and recomputes the next payday.
// @Summary     Tag income transaction
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string                      true "Budget ID"
// @Param       incomeId path string                      true "Income ID"
// @Param       request  body TagIncomeTransactionRequest true "Transaction"
// @Success     200 {object} models.BudgetIncome "Income with new next payday"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income or transaction not found"
// @Failure     409 {object} ErrorResponse "Transaction already tagged"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/income/{incomeId}/transactions [post]
func (h *IncomeHandler) TagTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, incomeID, err := parseIncomeIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TagIncomeTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	referenceDate, err := optionalDate(req.ReferenceDate, "reference_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.TagTransaction(userID, budgetID, incomeID, req.TransactionID, referenceDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "TAG_INCOME_TRANSACTION", "budget_income", incomeID, c.ClientIP(), map[string]interface{}{
		"transaction_id": req.TransactionID,
	})

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UntagTransaction unlinks a deposit and recomputes the next payday.
// @Summary     Untag income transaction
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id            path string true "Budget ID"
// @Param       incomeId      path string true "Income ID"
// @Param       transactionId path string true "Transaction ID"
// @Success     200 {object} models.BudgetIncome "Income with new next payday"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Link not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/income/{incomeId}/transactions/{transactionId} [delete]
func (h *IncomeHandler) UntagTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, incomeID, err := parseIncomeIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	transactionID, err := parsePathID(c, "transactionId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.UntagTransaction(userID, budgetID, incomeID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UNTAG_INCOME_TRANSACTION", "budget_income", incomeID, c.ClientIP(), map[string]interface{}{
		"transaction_id": transactionID,
	})

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// GetTaggedTransactions lists the deposits linked to an income.
// @Summary     Get tagged income transactions
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string true "Budget ID"
// @Param       incomeId path string true "Income ID"
// @Success     200 {array}  models.IncomeTransaction "Links, newest first"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/income/{incomeId}/transactions [get]
func (h *IncomeHandler) GetTaggedTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, incomeID, err := parseIncomeIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	links, err := h.incomeService.GetTaggedTransactions(userID, budgetID, incomeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": links})
}

// InferFrequency classifies the cadence of an income's tagged deposits.
// @Summary     Infer income frequency
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string true "Budget ID"
// @Param       incomeId path string true "Income ID"
// @Success     200 {object} recurrence.Inference "Inferred frequency"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/income/{incomeId}/frequency [get]
func (h *IncomeHandler) InferFrequency(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, incomeID, err := parseIncomeIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	inference, err := h.incomeService.InferFrequency(userID, budgetID, incomeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, inference)
}
