package query

import "strings"

// SearchByText keeps the items where any of fields contains query,
// ignoring case. A blank query returns items unchanged.
func SearchByText[T Record](items []T, query string, fields []string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}

	needle := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields {
			v := item.Field(f)
			if v == nil {
				continue
			}
			if strings.Contains(strings.ToLower(stringOf(v)), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
