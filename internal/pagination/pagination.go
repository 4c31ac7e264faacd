package pagination

import (
	"fmt"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageRequest holds pagination and ordering parameters parsed from query strings.
type PageRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Sort     string `form:"sort" binding:"omitempty,max=32"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Sorts maps the sort keys a listing accepts to database columns.
type Sorts map[string]string

// Asc orders by column ascending.
func Asc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}}
}

// Desc orders by column descending.
func Desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}
}

// OrderBy resolves the requested sort key against allowed. Without a sort key
// the listing's fallback ordering is used, though an explicit order still
// sets its direction. Unknown keys are rejected so callers can never order
// by an arbitrary column.
func (p *PageRequest) OrderBy(allowed Sorts, fallback clause.OrderByColumn) (clause.OrderByColumn, error) {
	order := fallback
	if p.Sort != "" {
		column, ok := allowed[p.Sort]
		if !ok {
			return clause.OrderByColumn{}, fmt.Errorf("unsupported sort %q", p.Sort)
		}
		order = Asc(column)
	}
	switch p.Order {
	case "asc":
		order.Desc = false
	case "desc":
		order.Desc = true
	}
	return order, nil
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Sorted returns a GORM scope ordering by order, with id as a tiebreak so
// pages stay stable when sort values repeat.
func Sorted(order clause.OrderByColumn) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order).Order("id ASC")
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}
