package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSorts = Sorts{"name": "name", "amount": "amount_value"}

func TestPageRequest_Defaults(t *testing.T) {
	p := PageRequest{}
	p.Defaults()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = PageRequest{Page: 3, PageSize: 10}
	p.Defaults()
	assert.Equal(t, 20, p.Offset())
}

func TestPageRequest_OrderBy(t *testing.T) {
	tests := []struct {
		name     string
		req      PageRequest
		wantCol  string
		wantDesc bool
	}{
		{"fallback", PageRequest{}, "date", true},
		{"fallback with explicit direction", PageRequest{Order: "asc"}, "date", false},
		{"known key ascending by default", PageRequest{Sort: "amount"}, "amount_value", false},
		{"known key descending", PageRequest{Sort: "name", Order: "desc"}, "name", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := tt.req.OrderBy(testSorts, Desc("date"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCol, order.Column.Name)
			assert.Equal(t, tt.wantDesc, order.Desc)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		req := PageRequest{Sort: "password"}
		_, err := req.OrderBy(testSorts, Desc("date"))
		assert.ErrorContains(t, err, "password")
	})
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[string](nil, 1, 20, 41)
	assert.NotNil(t, resp.Data)
	assert.Equal(t, 3, resp.TotalPages)
}
