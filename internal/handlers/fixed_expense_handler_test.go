package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/recurrence"
	"tally/internal/services"
	"tally/internal/services/mocks"
)

func setupFixedExpenseRouter(handler *FixedExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("/budgets/:id/fixed-expenses", injectUserID(testUserID))
	auth.POST("", handler.CreateFixedExpense)
	auth.GET("", handler.GetFixedExpenses)
	auth.GET("/:expenseId", handler.GetFixedExpense)
	auth.PUT("/:expenseId", handler.UpdateFixedExpense)
	auth.DELETE("/:expenseId", handler.DeleteFixedExpense)
	auth.POST("/:expenseId/transactions", handler.TagTransaction)
	auth.GET("/:expenseId/transactions", handler.GetTaggedTransactions)
	auth.DELETE("/:expenseId/transactions/:transactionId", handler.UntagTransaction)
	auth.GET("/:expenseId/frequency", handler.InferFrequency)
	return r
}

func expensePath(suffix string) string {
	return "/budgets/" + testBudgetID + "/fixed-expenses" + suffix
}

func TestFixedExpenseHandler_CreateFixedExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockFixedExpenseServicer(ctrl)
		svc.EXPECT().CreateFixedExpense(testUserID, testBudgetID, gomock.Any()).
			DoAndReturn(func(_, _ string, input services.FixedExpenseInput) (*models.FixedExpense, error) {
				assert.Equal(t, recurrence.Quarterly, input.Frequency)
				require.NotNil(t, input.CategoryID)
				assert.Equal(t, testCategoryID, *input.CategoryID)
				require.NotNil(t, input.MatchPattern)
				assert.Equal(t, "CONTACT ENERGY", input.MatchPattern.Merchant)
				assert.Nil(t, input.NextDueDate)
				return &models.FixedExpense{Record: models.Record{ID: testItemID}, Name: input.Name}, nil
			})

		r := setupFixedExpenseRouter(NewFixedExpenseHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "POST", expensePath(""),
			`{"name":"Power","amount":42000,"frequency":"QUARTERLY","category_id":"`+testCategoryID+`","match_pattern":{"merchant":"CONTACT ENERGY"}}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		expense := parseJSON(t, rec)["fixed_expense"].(map[string]interface{})
		assert.Equal(t, "Power", expense["name"])
	})

	t.Run("returns 400 on unknown frequency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupFixedExpenseRouter(NewFixedExpenseHandler(mocks.NewMockFixedExpenseServicer(ctrl), &mockAuditService{}))

		rec := doRequest(r, "POST", expensePath(""), `{"name":"Power","amount":100,"frequency":"DAILY"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestFixedExpenseHandler_UpdateFixedExpense(t *testing.T) {
	t.Run("empty category_id clears the category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockFixedExpenseServicer(ctrl)
		svc.EXPECT().UpdateFixedExpense(testUserID, testBudgetID, testItemID, gomock.Any()).
			DoAndReturn(func(_, _, _ string, update services.FixedExpenseUpdate) (*models.FixedExpense, error) {
				require.NotNil(t, update.CategoryID)
				assert.Equal(t, "", *update.CategoryID)
				require.NotNil(t, update.NextDueDate)
				assert.Equal(t, 15, update.NextDueDate.Day())
				return &models.FixedExpense{Record: models.Record{ID: testItemID}}, nil
			})

		r := setupFixedExpenseRouter(NewFixedExpenseHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "PUT", expensePath("/"+testItemID), `{"category_id":"","next_due_date":"2024-03-15"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("returns 404 for a foreign category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockFixedExpenseServicer(ctrl)
		svc.EXPECT().UpdateFixedExpense(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrCategoryNotFound)

		r := setupFixedExpenseRouter(NewFixedExpenseHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "PUT", expensePath("/"+testItemID), `{"category_id":"`+testCategoryID+`"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestFixedExpenseHandler_DeleteFixedExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockFixedExpenseServicer(ctrl)
	audit := &mockAuditService{}
	svc.EXPECT().DeleteFixedExpense(testUserID, testBudgetID, testItemID).Return(nil)

	r := setupFixedExpenseRouter(NewFixedExpenseHandler(svc, audit))
	rec := doRequest(r, "DELETE", expensePath("/"+testItemID), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"DELETE_FIXED_EXPENSE"}, audit.actions)
}

func TestFixedExpenseHandler_TagTransaction(t *testing.T) {
	t.Run("tags and audits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockFixedExpenseServicer(ctrl)
		audit := &mockAuditService{}
		svc.EXPECT().TagTransaction(testUserID, testBudgetID, testItemID, testTxID).
			Return(&models.FixedExpense{Record: models.Record{ID: testItemID}}, nil)

		r := setupFixedExpenseRouter(NewFixedExpenseHandler(svc, audit))
		rec := doRequest(r, "POST", expensePath("/"+testItemID+"/transactions"), `{"transaction_id":"`+testTxID+`"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []string{"TAG_EXPENSE_TRANSACTION"}, audit.actions)
	})

	t.Run("returns 400 without transaction_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupFixedExpenseRouter(NewFixedExpenseHandler(mocks.NewMockFixedExpenseServicer(ctrl), &mockAuditService{}))

		rec := doRequest(r, "POST", expensePath("/"+testItemID+"/transactions"), `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFixedExpenseHandler_UntagTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockFixedExpenseServicer(ctrl)
	svc.EXPECT().UntagTransaction(testUserID, testBudgetID, testItemID, testTxID).
		Return(nil, apperrors.ErrTransactionNotTagged)

	r := setupFixedExpenseRouter(NewFixedExpenseHandler(svc, &mockAuditService{}))
	rec := doRequest(r, "DELETE", expensePath("/"+testItemID+"/transactions/"+testTxID), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_TAGGED")
}

func TestFixedExpenseHandler_GetTaggedTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockFixedExpenseServicer(ctrl)
	svc.EXPECT().GetTaggedTransactions(testUserID, testBudgetID, testItemID).Return([]models.FixedExpenseTransaction{
		{FixedExpenseID: testItemID, TransactionID: testTxID},
	}, nil)

	r := setupFixedExpenseRouter(NewFixedExpenseHandler(svc, &mockAuditService{}))
	rec := doRequest(r, "GET", expensePath("/"+testItemID+"/transactions"), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, parseJSON(t, rec)["transactions"], 1)
}
