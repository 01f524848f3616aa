package query

import (
	"cmp"
	"slices"

	"github.com/nikkjke/finance-tracker/internal/models"
)

// CategoryTotal is the spending of one category within a set of expenses.
type CategoryTotal struct {
	Category   models.Category `json:"category"`
	Total      float64         `json:"total"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// CategoryTotals groups expenses by category, ordered by total descending.
// Cancelled expenses are not counted.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	byCat := make(map[models.Category]*CategoryTotal)
	var total float64

	for _, e := range expenses {
		if e.Status == models.StatusCancelled {
			continue
		}
		ct, ok := byCat[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category}
			byCat[e.Category] = ct
		}
		ct.Total += e.Amount
		ct.Count++
		total += e.Amount
	}

	out := make([]CategoryTotal, 0, len(byCat))
	for _, ct := range byCat {
		if total > 0 {
			ct.Percentage = ct.Total / total * 100
		}
		out = append(out, *ct)
	}
	slices.SortFunc(out, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// CountActive counts the non-cancelled expenses.
func CountActive(expenses []models.Expense) int {
	n := 0
	for _, e := range expenses {
		if e.Status != models.StatusCancelled {
			n++
		}
	}
	return n
}

// SumAmounts totals the amounts of the non-cancelled expenses.
func SumAmounts(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.Status != models.StatusCancelled {
			total += e.Amount
		}
	}
	return total
}
