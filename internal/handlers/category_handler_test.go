package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/pagination"
	"tally/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn    func(userID, name, color, description string) (*models.Category, error)
	getUserCategoriesFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	getCategoryByIDFn   func(userID, categoryID string) (*models.Category, error)
	updateCategoryFn    func(userID, categoryID, name, color string, description *string) (*models.Category, error)
	deleteCategoryFn    func(userID, categoryID string) error
}

func (m *mockCategoryService) CreateCategory(userID, name, color, description string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, name, color, description)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	if m.getUserCategoriesFn != nil {
		return m.getUserCategoriesFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Category{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockCategoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(userID, categoryID)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(userID, categoryID, name, color string, description *string) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, name, color, description)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(userID, categoryID string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/categories", handler.CreateCategory)
	auth.GET("/categories", handler.GetUserCategories)
	auth.GET("/categories/:id", handler.GetCategoryByID)
	auth.PUT("/categories/:id", handler.UpdateCategory)
	auth.DELETE("/categories/:id", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(userID, name, color, description string) (*models.Category, error) {
				return &models.Category{
					Record: models.Record{ID: testCategoryID},
					UserID: userID,
					Name:   name,
					Color:  color,
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"Groceries","color":"#22c55e"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		category := parseJSON(t, rec)["category"].(map[string]interface{})
		if category["name"] != "Groceries" {
			t.Errorf("expected Groceries, got %v", category["name"])
		}
		if category["user_id"] != testUserID {
			t.Errorf("expected user %s, got %v", testUserID, category["user_id"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"color":"#22c55e"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid color", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"Groceries","color":"green"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate name", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(_, _, _, _ string) (*models.Category, error) {
				return nil, apperrors.ErrDuplicateCategory
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"Groceries"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_CATEGORY")
	})
}

func TestCategoryHandler_GetUserCategories(t *testing.T) {
	t.Run("returns paginated categories", func(t *testing.T) {
		var capturedPage pagination.PageRequest
		svc := &mockCategoryService{
			getUserCategoriesFn: func(_ string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
				capturedPage = page
				resp := pagination.NewPageResponse([]models.Category{{Name: "Groceries"}, {Name: "Rent"}}, 2, 2, 4)
				return &resp, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories?page=2&page_size=2&sort=created_at&order=desc", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if capturedPage.Page != 2 || capturedPage.PageSize != 2 {
			t.Errorf("expected page 2 size 2, got %+v", capturedPage)
		}
		if capturedPage.Sort != "created_at" || capturedPage.Order != "desc" {
			t.Errorf("expected sort created_at desc, got %+v", capturedPage)
		}
		result := parseJSON(t, rec)
		if len(result["data"].([]interface{})) != 2 {
			t.Errorf("expected 2 categories, got %v", result["data"])
		}
	})
}

func TestCategoryHandler_GetUserCategories_InvalidOrder(t *testing.T) {
	r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

	rec := doRequest(r, "GET", "/categories?order=sideways", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
}

func TestCategoryHandler_GetCategoryByID(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryByIDFn: func(_, _ string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})

	t.Run("returns 400 on malformed ID", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("passes description pointer", func(t *testing.T) {
		var capturedDescription *string
		svc := &mockCategoryService{
			updateCategoryFn: func(_, _, name, _ string, description *string) (*models.Category, error) {
				capturedDescription = description
				return &models.Category{Record: models.Record{ID: testCategoryID}, Name: name}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/categories/"+testCategoryID, `{"name":"Food","description":""}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if capturedDescription == nil || *capturedDescription != "" {
			t.Errorf("expected empty description pointer, got %v", capturedDescription)
		}
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 200 and audits", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, audit))

		rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(audit.actions) != 1 || audit.actions[0] != "DELETE_CATEGORY" {
			t.Errorf("expected DELETE_CATEGORY audit, got %v", audit.actions)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		audit := &mockAuditService{}
		svc := &mockCategoryService{
			deleteCategoryFn: func(_, _ string) error { return apperrors.ErrCategoryNotFound },
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, audit))

		rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if len(audit.actions) != 0 {
			t.Errorf("expected no audit entries, got %v", audit.actions)
		}
	})
}
