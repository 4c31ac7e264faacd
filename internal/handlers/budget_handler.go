package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/pagination"
	"tally/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=100"`
	Period      models.BudgetPeriod `json:"period" binding:"required,budget_period"`
	PeriodStart string              `json:"period_start" binding:"required"`
	PeriodEnd   string              `json:"period_end"`
	Status      models.BudgetStatus `json:"status" binding:"omitempty,budget_status"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Name        string               `json:"name" binding:"omitempty,min=1,max=100"`
	Status      *models.BudgetStatus `json:"status" binding:"omitempty,budget_status"`
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
}

// RolloverBudgetRequest names the budget created by a rollover.
type RolloverBudgetRequest struct {
	NewBudgetName string `json:"new_budget_name" binding:"max=100"`
}

// optionalDate parses an optional date field.
func optionalDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseFlexibleTime(value)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, field+": "+err.Error())
	}
	return &t, nil
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a budget for a period. period_end defaults to the day before the next period starts.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	start, err := parseFlexibleTime(req.PeriodStart)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "period_start: "+err.Error()))
		return
	}
	end, err := optionalDate(req.PeriodEnd, "period_end")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.CreateBudget(userID, services.BudgetInput{
		Name:        req.Name,
		Period:      req.Period,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BUDGET", "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "period": req.Period})

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets for the authenticated user.
// @Summary     Get budgets
// @Description Get a paginated list of budgets, most recent period first
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       status    query string false "Filter by status (DRAFT/ACTIVE/ARCHIVED)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       sort      query string false "Sort by: period_start, name, created_at (default period_start, newest first)"
// @Param       order     query string false "asc or desc"
// @Success     200 {object} pagination.PageResponse[models.Budget] "Paginated budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
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

	var status *models.BudgetStatus
	if v := c.Query("status"); v != "" {
		s := models.BudgetStatus(v)
		switch s {
		case models.BudgetStatusDraft, models.BudgetStatusActive, models.BudgetStatusArchived:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be DRAFT, ACTIVE or ARCHIVED"))
			return
		}
	}

	result, err := h.budgetService.GetUserBudgets(userID, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBudget handles retrieving a specific budget.
// @Summary     Get budget by ID
// @Description Get a budget with its income, fixed expenses and allocations
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
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

	budget, err := h.budgetService.GetBudgetByID(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles updating an existing budget.
// @Summary     Update budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Updated budget details"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
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

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	update := services.BudgetUpdate{Name: req.Name, Status: req.Status}
	if update.PeriodStart, err = optionalDate(req.PeriodStart, "period_start"); err != nil {
		respondWithError(c, err)
		return
	}
	if update.PeriodEnd, err = optionalDate(req.PeriodEnd, "period_end"); err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.UpdateBudget(userID, budgetID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUDGET", "budget", budgetID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "status": req.Status})

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget.
// @Summary     Delete budget
// @Description Delete a budget with its income, fixed expenses and allocations. Transactions are kept.
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
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

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUDGET", "budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// RolloverBudget copies a budget into the following period.
// @Summary     Roll over budget
// @Description Create a DRAFT budget for the next period with the same income, fixed expenses and allocations
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true  "Budget ID"
// @Param       request body RolloverBudgetRequest false "Name of the new budget"
// @Success     201 {object} services.RolloverResult "New budget and copied counts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/rollover [post]
func (h *BudgetHandler) RolloverBudget(c *gin.Context) {
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

	var req RolloverBudgetRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, bindError(err))
			return
		}
	}

	result, err := h.budgetService.RolloverBudget(userID, budgetID, req.NewBudgetName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ROLLOVER_BUDGET", "budget", result.Budget.ID, c.ClientIP(),
		map[string]interface{}{"source_budget_id": budgetID})

	c.JSON(http.StatusCreated, result)
}

// GetBudgetProgress handles retrieving the spending progress for a budget.
// @Summary     Get budget progress
// @Description Get per-category spending against allocations, the budget summary and how far through the period it is
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} services.BudgetProgress "Budget progress"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/progress [get]
func (h *BudgetHandler) GetBudgetProgress(c *gin.Context) {
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

	progress, err := h.budgetService.GetBudgetProgress(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
