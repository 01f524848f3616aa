package query

// Config describes one run of ApplyFilters. Zero values disable a stage.
type Config struct {
	SearchQuery  string            `json:"searchQuery,omitempty"`
	SearchFields []string          `json:"searchFields,omitempty"`
	Filters      map[string]string `json:"filters,omitempty"`
	DateField    string            `json:"dateField,omitempty"`
	DateRange    *DateRange        `json:"dateRange,omitempty"`
	Sort         *SortConfig       `json:"sort,omitempty"`
	// Pagination runs when Page or PageSize is positive.
	Page     int `json:"page,omitempty"`
	PageSize int `json:"pageSize,omitempty"`
}

// Result is the output of ApplyFilters. TotalItems counts the matches before
// pagination.
type Result[T any] struct {
	Items      []T      `json:"items"`
	TotalItems int      `json:"totalItems"`
	Pagination *Page[T] `json:"pagination,omitempty"`
}

// ApplyFilters runs search, field filters, date range, sort and pagination,
// in that order.
func ApplyFilters[T Record](items []T, cfg Config) Result[T] {
	out := items

	if cfg.SearchQuery != "" && len(cfg.SearchFields) > 0 {
		out = SearchByText(out, cfg.SearchQuery, cfg.SearchFields)
	}
	if len(cfg.Filters) > 0 {
		out = FilterByFields(out, cfg.Filters)
	}
	if cfg.DateField != "" && cfg.DateRange != nil {
		out = FilterByDateRange(out, cfg.DateField, *cfg.DateRange)
	}
	if cfg.Sort != nil {
		out = SortItems(out, *cfg.Sort)
	}

	total := len(out)
	if cfg.Page > 0 || cfg.PageSize > 0 {
		page := Paginate(out, cfg.Page, cfg.PageSize)
		return Result[T]{Items: page.Items, TotalItems: total, Pagination: &page}
	}
	return Result[T]{Items: out, TotalItems: total}
}
