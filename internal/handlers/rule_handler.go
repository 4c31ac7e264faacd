package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tally/internal/models"
	"tally/internal/services"
)

// RuleHandler handles the reference rules learned from categorization.
type RuleHandler struct {
	ruleService  services.ReferenceRuleServicer
	auditService services.AuditServicer
}

// NewRuleHandler creates a new RuleHandler.
func NewRuleHandler(ruleService services.ReferenceRuleServicer, auditService services.AuditServicer) *RuleHandler {
	return &RuleHandler{ruleService: ruleService, auditService: auditService}
}

// AmountConditionRequest is an amount condition; a null condition clears it.
type AmountConditionRequest struct {
	Condition *struct {
		Operator models.AmountOperator `json:"operator" binding:"required,amount_operator"`
		Value    decimal.Decimal       `json:"value"`
	} `json:"condition"`
}

// GetCategoryRules lists the reference rules that map to a category.
// @Summary     Get category rules
// @Tags        rules
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {array}  models.ReferenceRule "Rules"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id}/rules [get]
func (h *RuleHandler) GetCategoryRules(c *gin.Context) {
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

	rules, err := h.ruleService.GetCategoryRules(userID, categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// GetRule returns one reference rule.
// @Summary     Get rule by ID
// @Tags        rules
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Rule ID"
// @Success     200 {object} models.ReferenceRule "Rule"
// @Failure     400 {object} ErrorResponse "Invalid rule ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Rule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rules/{id} [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ruleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	rule, err := h.ruleService.GetRuleByID(userID, ruleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rule": rule})
}

// UpdateAmountCondition sets or clears the amount condition of a rule.
// @Summary     Update rule amount condition
// @Description Restrict a rule to amounts matching the condition, or clear the condition with null
// @Tags        rules
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Rule ID"
// @Param       request body AmountConditionRequest true "Condition"
// @Success     200 {object} models.ReferenceRule "Updated rule"
// @Failure     400 {object} ErrorResponse "Invalid condition"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Rule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rules/{id}/amount-condition [put]
func (h *RuleHandler) UpdateAmountCondition(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ruleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AmountConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var condition *models.AmountCondition
	if req.Condition != nil {
		condition = &models.AmountCondition{Operator: req.Condition.Operator, Value: req.Condition.Value}
	}

	rule, err := h.ruleService.UpdateAmountCondition(userID, ruleID, condition)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_RULE_CONDITION", "reference_rule", ruleID, c.ClientIP(),
		map[string]interface{}{"condition": condition})

	c.JSON(http.StatusOK, gin.H{"rule": rule})
}

// DeleteRule removes a reference rule.
// @Summary     Delete rule
// @Tags        rules
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Rule ID"
// @Success     200 {object} MessageResponse "Rule deleted"
// @Failure     400 {object} ErrorResponse "Invalid rule ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Rule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ruleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ruleService.DeleteRule(userID, ruleID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_RULE", "reference_rule", ruleID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Rule deleted successfully"})
}
