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
	"tally/internal/pagination"
	"tally/internal/progress"
	"tally/internal/services"
	"tally/internal/services/mocks"
)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/budgets", handler.CreateBudget)
	auth.GET("/budgets", handler.GetBudgets)
	auth.GET("/budgets/:id", handler.GetBudget)
	auth.PUT("/budgets/:id", handler.UpdateBudget)
	auth.DELETE("/budgets/:id", handler.DeleteBudget)
	auth.POST("/budgets/:id/rollover", handler.RolloverBudget)
	auth.GET("/budgets/:id/progress", handler.GetBudgetProgress)
	return r
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockBudgetServicer(ctrl)
		audit := &mockAuditService{}

		svc.EXPECT().CreateBudget(testUserID, gomock.Any()).
			DoAndReturn(func(_ string, input services.BudgetInput) (*models.Budget, error) {
				assert.Equal(t, "January", input.Name)
				assert.Equal(t, models.BudgetPeriodMonthly, input.Period)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), input.PeriodStart)
				assert.Nil(t, input.PeriodEnd)
				return &models.Budget{
					Base:   models.Base{ID: testBudgetID},
					Name:   input.Name,
					Period: input.Period,
					Status: models.BudgetStatusDraft,
				}, nil
			})

		r := setupBudgetRouter(NewBudgetHandler(svc, audit))
		rec := doRequest(r, "POST", "/budgets",
			`{"name":"January","period":"MONTHLY","period_start":"2024-01-01"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		assert.Equal(t, testBudgetID, budget["id"])
		assert.Equal(t, "DRAFT", budget["status"])
		assert.Equal(t, []string{"CREATE_BUDGET"}, audit.actions)
	})

	t.Run("returns 400 on unknown period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupBudgetRouter(NewBudgetHandler(mocks.NewMockBudgetServicer(ctrl), &mockAuditService{}))

		rec := doRequest(r, "POST", "/budgets",
			`{"name":"January","period":"WEEKLY","period_start":"2024-01-01"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed period_start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupBudgetRouter(NewBudgetHandler(mocks.NewMockBudgetServicer(ctrl), &mockAuditService{}))

		rec := doRequest(r, "POST", "/budgets",
			`{"name":"January","period":"MONTHLY","period_start":"01/01/2024"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := NewBudgetHandler(mocks.NewMockBudgetServicer(ctrl), &mockAuditService{})
		r := gin.New()
		r.POST("/budgets", handler.CreateBudget)

		rec := doRequest(r, "POST", "/budgets",
			`{"name":"January","period":"MONTHLY","period_start":"2024-01-01"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBudgetHandler_GetBudgets(t *testing.T) {
	t.Run("passes status filter to service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockBudgetServicer(ctrl)

		active := models.BudgetStatusActive
		svc.EXPECT().GetUserBudgets(testUserID, gomock.Any(), &active).
			DoAndReturn(func(_ string, _ pagination.PageRequest, _ *models.BudgetStatus) (*pagination.PageResponse[models.Budget], error) {
				resp := pagination.NewPageResponse([]models.Budget{{Base: models.Base{ID: testBudgetID}}}, 1, 20, 1)
				return &resp, nil
			})

		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "GET", "/budgets?status=ACTIVE", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		result := parseJSON(t, rec)
		assert.Len(t, result["data"], 1)
		assert.Equal(t, float64(1), result["total_items"])
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupBudgetRouter(NewBudgetHandler(mocks.NewMockBudgetServicer(ctrl), &mockAuditService{}))

		rec := doRequest(r, "GET", "/budgets?status=PAUSED", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockBudgetServicer(ctrl)
		svc.EXPECT().GetBudgetByID(testUserID, testBudgetID).Return(nil, apperrors.ErrBudgetNotFound)

		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "GET", "/budgets/"+testBudgetID, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})

	t.Run("returns 400 on malformed ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupBudgetRouter(NewBudgetHandler(mocks.NewMockBudgetServicer(ctrl), &mockAuditService{}))

		rec := doRequest(r, "GET", "/budgets/42", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	t.Run("passes status and dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockBudgetServicer(ctrl)
		audit := &mockAuditService{}

		svc.EXPECT().UpdateBudget(testUserID, testBudgetID, gomock.Any()).
			DoAndReturn(func(_, _ string, update services.BudgetUpdate) (*models.Budget, error) {
				require.NotNil(t, update.Status)
				assert.Equal(t, models.BudgetStatusActive, *update.Status)
				require.NotNil(t, update.PeriodEnd)
				assert.Equal(t, 2024, update.PeriodEnd.Year())
				assert.Nil(t, update.PeriodStart)
				return &models.Budget{Base: models.Base{ID: testBudgetID}, Status: *update.Status}, nil
			})

		r := setupBudgetRouter(NewBudgetHandler(svc, audit))
		rec := doRequest(r, "PUT", "/budgets/"+testBudgetID, `{"status":"ACTIVE","period_end":"2024-02-15"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []string{"UPDATE_BUDGET"}, audit.actions)
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupBudgetRouter(NewBudgetHandler(mocks.NewMockBudgetServicer(ctrl), &mockAuditService{}))

		rec := doRequest(r, "PUT", "/budgets/"+testBudgetID, `{"status":"CLOSED"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBudgetServicer(ctrl)
	audit := &mockAuditService{}
	svc.EXPECT().DeleteBudget(testUserID, testBudgetID).Return(nil)

	r := setupBudgetRouter(NewBudgetHandler(svc, audit))
	rec := doRequest(r, "DELETE", "/budgets/"+testBudgetID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"DELETE_BUDGET"}, audit.actions)
}

func TestBudgetHandler_RolloverBudget(t *testing.T) {
	newID := "0190f6a4-6b2c-7d1e-8f00-0000000000aa"

	t.Run("returns 201 without a body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockBudgetServicer(ctrl)
		audit := &mockAuditService{}
		svc.EXPECT().RolloverBudget(testUserID, testBudgetID, "").Return(&services.RolloverResult{
			Budget:            &models.Budget{Base: models.Base{ID: newID}},
			CopiedIncomes:     1,
			CopiedExpenses:    2,
			CopiedAllocations: 3,
		}, nil)

		r := setupBudgetRouter(NewBudgetHandler(svc, audit))
		rec := doRequest(r, "POST", "/budgets/"+testBudgetID+"/rollover", "")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		result := parseJSON(t, rec)
		assert.Equal(t, float64(2), result["copied_fixed_expenses"])
		assert.Equal(t, newID, result["budget"].(map[string]interface{})["id"])
		assert.Equal(t, []string{"ROLLOVER_BUDGET"}, audit.actions)
	})

	t.Run("passes the new name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockBudgetServicer(ctrl)
		svc.EXPECT().RolloverBudget(testUserID, testBudgetID, "February").
			Return(&services.RolloverResult{Budget: &models.Budget{Base: models.Base{ID: newID}}}, nil)

		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "POST", "/budgets/"+testBudgetID+"/rollover", `{"new_budget_name":"February"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestBudgetHandler_GetBudgetProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBudgetServicer(ctrl)
	svc.EXPECT().GetBudgetProgress(testUserID, testBudgetID).Return(&services.BudgetProgress{
		Budget: &models.Budget{Base: models.Base{ID: testBudgetID}},
		Report: progress.Report{
			Categories: []progress.CategoryProgress{{
				CategoryID:  testCategoryID,
				Allocated:   10000,
				Spent:       8500,
				Remaining:   1500,
				PercentUsed: 85,
				Status:      progress.StatusWarning,
			}},
		},
	}, nil)

	r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))
	rec := doRequest(r, "GET", "/budgets/"+testBudgetID+"/progress", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := parseJSON(t, rec)["progress"].(map[string]interface{})
	categories := report["category_progress"].([]interface{})
	require.Len(t, categories, 1)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "WARNING", first["status"])
	assert.Equal(t, float64(85), first["percent_used"])
}
