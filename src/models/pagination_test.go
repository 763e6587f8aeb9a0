package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		params    PaginationParams
		wantPages int
	}{
		{"exact multiple", 30, PaginationParams{Page: 1, PageSize: 10}, 3},
		{"partial last page", 25, PaginationParams{Page: 1, PageSize: 10}, 3},
		{"single item", 1, PaginationParams{Page: 1, PageSize: 10}, 1},
		{"empty", 0, PaginationParams{Page: 1, PageSize: 10}, 0},
		{"zero page size", 10, PaginationParams{Page: 1, PageSize: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPaginationMeta(tt.total, tt.params)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.TotalItems)
			assert.Equal(t, tt.params.Page, meta.CurrentPage)
		})
	}
}

func TestPaginationParams(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		p := DefaultPagination()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.PageSize)
		assert.Equal(t, int64(0), p.GetSkip())
	})

	t.Run("skip", func(t *testing.T) {
		p := PaginationParams{Page: 3, PageSize: 20}
		assert.Equal(t, int64(40), p.GetSkip())
	})

	t.Run("in range", func(t *testing.T) {
		meta := PaginationMeta{TotalPages: 3}
		for page, want := range map[int]bool{0: false, 1: true, 3: true, 4: false, -2: false} {
			p := PaginationParams{Page: page, PageSize: 10}
			assert.Equal(t, want, p.InRange(meta), "page %d", page)
		}
	})
}
