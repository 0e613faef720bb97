package repository

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearbyQuery_Offset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
		wantBeyond bool
	}{
		{name: "first page", page: 1, pageSize: 20, wantOffset: 0},
		{name: "third page", page: 3, pageSize: 20, wantOffset: 40},
		{name: "zero page size", page: 5, pageSize: 0, wantOffset: 0},
		{name: "last representable page", page: math.MaxInt/20 + 1, pageSize: 20, wantOffset: (math.MaxInt / 20) * 20},
		{name: "page past int range saturates", page: math.MaxInt/20 + 2, pageSize: 20, wantOffset: math.MaxInt, wantBeyond: true},
		{name: "max page", page: math.MaxInt, pageSize: 100, wantOffset: math.MaxInt, wantBeyond: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NearbyQuery{Page: tt.page, PageSize: tt.pageSize}

			assert.Equal(t, tt.wantOffset, q.Offset())
			assert.GreaterOrEqual(t, q.Offset(), 0)
			assert.Equal(t, tt.wantBeyond, q.BeyondAnyRow())
		})
	}
}
