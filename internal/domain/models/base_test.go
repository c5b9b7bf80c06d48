package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationQueryNormalize(t *testing.T) {
	q := PaginationQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)

	q = PaginationQuery{Page: -3, PageSize: 500}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)

	q = PaginationQuery{Page: 2, PageSize: 25}
	q.Normalize()
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.PageSize)
}

func TestNewPaginationResult(t *testing.T) {
	res := NewPaginationResult(21, 1, 10)
	assert.Equal(t, int64(21), res.Total)
	assert.Equal(t, int64(3), res.TotalPages)

	res = NewPaginationResult(0, 1, 10)
	assert.Equal(t, int64(0), res.TotalPages)

	res = NewPaginationResult(10, 1, 10)
	assert.Equal(t, int64(1), res.TotalPages)
}
