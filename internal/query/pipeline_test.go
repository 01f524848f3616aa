package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ledger = []row{
	{"id": "e-1", "storeName": "Kaufland", "category": "food", "amount": 187.45, "date": "2026-02-15", "status": "completed"},
	{"id": "e-2", "storeName": "Linella", "category": "food", "amount": 64.2, "date": "2026-02-11", "status": "completed"},
	{"id": "e-3", "storeName": "Orange", "category": "bills", "amount": 250.0, "date": "2026-02-01", "status": "pending"},
	{"id": "e-4", "storeName": "Kaufland Botanica", "category": "food", "amount": 32.9, "date": "2026-01-20", "status": "completed"},
	{"id": "e-5", "storeName": "Cinema", "category": "entertainment", "amount": 120.0, "date": "2025-12-24", "status": "cancelled"},
}

func TestApplyFiltersEmptyConfigIsIdentity(t *testing.T) {
	res := ApplyFilters(ledger, Config{})
	assert.Equal(t, ledger, res.Items)
	assert.Equal(t, len(ledger), res.TotalItems)
	assert.Nil(t, res.Pagination)
}

func TestApplyFiltersAllStages(t *testing.T) {
	r := DateRange{Start: day(2026, time.January, 1), End: day(2026, time.February, 28)}
	res := ApplyFilters(ledger, Config{
		SearchQuery:  "kaufland",
		SearchFields: []string{"storeName"},
		Filters:      map[string]string{"category": "food", "status": All},
		DateField:    "date",
		DateRange:    &r,
		Sort:         &SortConfig{Key: "amount", Direction: Asc},
		Page:         1,
		PageSize:     1,
	})

	assert.Equal(t, 2, res.TotalItems)
	assert.Equal(t, []any{"e-4"}, ids(res.Items))
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.True(t, res.Pagination.HasNextPage)
}

func TestApplyFiltersPageSizeAloneEnablesPagination(t *testing.T) {
	res := ApplyFilters(ledger, Config{PageSize: 2})
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, []any{"e-1", "e-2"}, ids(res.Items))
	assert.Equal(t, 5, res.TotalItems)
}

func TestApplyFiltersSearchNeedsFields(t *testing.T) {
	res := ApplyFilters(ledger, Config{SearchQuery: "kaufland"})
	assert.Len(t, res.Items, len(ledger))
}
