package handlers

import (
	"net/http"
	"testing"
	"time"

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

func setupIncomeRouter(handler *IncomeHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("/budgets/:id/income", injectUserID(testUserID))
	auth.POST("", handler.CreateIncome)
	auth.GET("", handler.GetIncomes)
	auth.GET("/:incomeId", handler.GetIncome)
	auth.PUT("/:incomeId", handler.UpdateIncome)
	auth.DELETE("/:incomeId", handler.DeleteIncome)
	auth.POST("/:incomeId/transactions", handler.TagTransaction)
	auth.GET("/:incomeId/transactions", handler.GetTaggedTransactions)
	auth.DELETE("/:incomeId/transactions/:transactionId", handler.UntagTransaction)
	auth.GET("/:incomeId/frequency", handler.InferFrequency)
	return r
}

func incomePath(suffix string) string {
	return "/budgets/" + testBudgetID + "/income" + suffix
}

func TestIncomeHandler_CreateIncome(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIncomeServicer(ctrl)
		payday := time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC)

		svc.EXPECT().CreateIncome(testUserID, testBudgetID, gomock.Any()).
			DoAndReturn(func(_, _ string, input services.IncomeInput) (*models.BudgetIncome, error) {
				assert.Equal(t, recurrence.Fortnightly, input.Frequency)
				require.NotNil(t, input.ReferenceDate)
				assert.Equal(t, time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC), *input.ReferenceDate)
				require.NotNil(t, input.AdjustForWeekends)
				assert.False(t, *input.AdjustForWeekends)
				assert.Nil(t, input.AutoTagEnabled)
				return &models.BudgetIncome{
					Record:     models.Record{ID: testItemID},
					Name:       input.Name,
					Amount:     input.Amount,
					Frequency:  input.Frequency,
					NextPayday: &payday,
				}, nil
			})

		r := setupIncomeRouter(NewIncomeHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "POST", incomePath(""),
			`{"name":"Salary","amount":350000,"frequency":"FORTNIGHTLY","reference_date":"2024-01-26","adjust_for_weekends":false}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		income := parseJSON(t, rec)["income"].(map[string]interface{})
		assert.Equal(t, "2024-02-09T00:00:00Z", income["next_payday"])
	})

	t.Run("rejects expense-only frequencies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupIncomeRouter(NewIncomeHandler(mocks.NewMockIncomeServicer(ctrl), &mockAuditService{}))

		rec := doRequest(r, "POST", incomePath(""), `{"name":"Bonus","amount":100,"frequency":"YEARLY"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed reference_date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupIncomeRouter(NewIncomeHandler(mocks.NewMockIncomeServicer(ctrl), &mockAuditService{}))

		rec := doRequest(r, "POST", incomePath(""),
			`{"name":"Salary","amount":100,"frequency":"MONTHLY","reference_date":"next friday"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIncomeHandler_UpdateIncome(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIncomeServicer(ctrl)
	svc.EXPECT().UpdateIncome(testUserID, testBudgetID, testItemID, gomock.Any()).
		DoAndReturn(func(_, _, _ string, update services.IncomeUpdate) (*models.BudgetIncome, error) {
			require.NotNil(t, update.Frequency)
			assert.Equal(t, recurrence.Weekly, *update.Frequency)
			assert.Nil(t, update.Amount)
			assert.Nil(t, update.ReferenceDate)
			return &models.BudgetIncome{Record: models.Record{ID: testItemID}, Frequency: *update.Frequency}, nil
		})

	r := setupIncomeRouter(NewIncomeHandler(svc, &mockAuditService{}))
	rec := doRequest(r, "PUT", incomePath("/"+testItemID), `{"frequency":"WEEKLY"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestIncomeHandler_TagTransaction(t *testing.T) {
	t.Run("tags and audits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIncomeServicer(ctrl)
		audit := &mockAuditService{}
		svc.EXPECT().TagTransaction(testUserID, testBudgetID, testItemID, testTxID, gomock.Nil()).
			Return(&models.BudgetIncome{Record: models.Record{ID: testItemID}}, nil)

		r := setupIncomeRouter(NewIncomeHandler(svc, audit))
		rec := doRequest(r, "POST", incomePath("/"+testItemID+"/transactions"), `{"transaction_id":"`+testTxID+`"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []string{"TAG_INCOME_TRANSACTION"}, audit.actions)
	})

	t.Run("passes an explicit reference date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIncomeServicer(ctrl)
		svc.EXPECT().TagTransaction(testUserID, testBudgetID, testItemID, testTxID, gomock.Not(gomock.Nil())).
			Return(&models.BudgetIncome{Record: models.Record{ID: testItemID}}, nil)

		r := setupIncomeRouter(NewIncomeHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "POST", incomePath("/"+testItemID+"/transactions"),
			`{"transaction_id":"`+testTxID+`","reference_date":"2024-03-01T00:00:00Z"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("returns 409 when already tagged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIncomeServicer(ctrl)
		audit := &mockAuditService{}
		svc.EXPECT().TagTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTransactionAlreadyTagged)

		r := setupIncomeRouter(NewIncomeHandler(svc, audit))
		rec := doRequest(r, "POST", incomePath("/"+testItemID+"/transactions"), `{"transaction_id":"`+testTxID+`"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_ALREADY_TAGGED")
		assert.Empty(t, audit.actions)
	})
}

func TestIncomeHandler_UntagTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIncomeServicer(ctrl)
	audit := &mockAuditService{}
	svc.EXPECT().UntagTransaction(testUserID, testBudgetID, testItemID, testTxID).
		Return(&models.BudgetIncome{Record: models.Record{ID: testItemID}}, nil)

	r := setupIncomeRouter(NewIncomeHandler(svc, audit))
	rec := doRequest(r, "DELETE", incomePath("/"+testItemID+"/transactions/"+testTxID), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"UNTAG_INCOME_TRANSACTION"}, audit.actions)
}

func TestIncomeHandler_InferFrequency(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIncomeServicer(ctrl)
	svc.EXPECT().InferFrequency(testUserID, testBudgetID, testItemID).Return(&recurrence.Inference{
		Suggested:           recurrence.Fortnightly,
		Confidence:          recurrence.ConfidenceHigh,
		AverageIntervalDays: 14,
		SampleSize:          4,
		Intervals:           []int{14, 14, 14},
	}, nil)

	r := setupIncomeRouter(NewIncomeHandler(svc, &mockAuditService{}))
	rec := doRequest(r, "GET", incomePath("/"+testItemID+"/frequency"), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := parseJSON(t, rec)
	assert.Equal(t, "FORTNIGHTLY", result["suggested"])
	assert.Equal(t, "high", result["confidence"])
}
