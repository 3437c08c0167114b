package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	type TestCase struct {
		Name         string
		Page         int64
		Limit        int64
		Total        int64
		ExpectedMeta Pagination
	}

	int64Ptr := func(v int64) *int64 { return &v }

	testCases := []TestCase{
		{
			Name:  "middle page",
			Page:  2,
			Limit: 5,
			Total: 12,
			ExpectedMeta: Pagination{
				CurrentPage:  2,
				TotalPages:   3,
				TotalItems:   12,
				ItemsPerPage: 5,
				HasNext:      true,
				HasPrev:      true,
				NextPage:     int64Ptr(3),
				PrevPage:     int64Ptr(1),
			},
		},
		{
			Name:  "first page",
			Page:  1,
			Limit: 10,
			Total: 25,
			ExpectedMeta: Pagination{
				CurrentPage:  1,
				TotalPages:   3,
				TotalItems:   25,
				ItemsPerPage: 10,
				HasNext:      true,
				HasPrev:      false,
				NextPage:     int64Ptr(2),
			},
		},
		{
			Name:  "last page with exact division",
			Page:  2,
			Limit: 5,
			Total: 10,
			ExpectedMeta: Pagination{
				CurrentPage:  2,
				TotalPages:   2,
				TotalItems:   10,
				ItemsPerPage: 5,
				HasNext:      false,
				HasPrev:      true,
				PrevPage:     int64Ptr(1),
			},
		},
		{
			Name:  "empty collection",
			Page:  1,
			Limit: 10,
			Total: 0,
			ExpectedMeta: Pagination{
				CurrentPage:  1,
				TotalPages:   0,
				TotalItems:   0,
				ItemsPerPage: 10,
				HasNext:      false,
				HasPrev:      false,
			},
		},
		{
			Name:  "single partial page",
			Page:  1,
			Limit: 10,
			Total: 3,
			ExpectedMeta: Pagination{
				CurrentPage:  1,
				TotalPages:   1,
				TotalItems:   3,
				ItemsPerPage: 10,
				HasNext:      false,
				HasPrev:      false,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.ExpectedMeta, BuildPagination(tc.Page, tc.Limit, tc.Total))
		})
	}
}

func TestFilterNormalize(t *testing.T) {
	filter := Filter{}
	filter.Normalize()
	assert.Equal(t, int64(1), filter.Page)
	assert.Equal(t, int64(10), filter.Limit)
	assert.Equal(t, int64(0), filter.Skip())

	filter = Filter{Page: 3, Limit: 5}
	filter.Normalize()
	assert.Equal(t, int64(10), filter.Skip())

	filter = Filter{Page: -1, Limit: -1}
	filter.Normalize()
	assert.Equal(t, int64(1), filter.Page)
	assert.Equal(t, int64(10), filter.Limit)
}
