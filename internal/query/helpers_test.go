package query

import "time"

// row is a minimal Record for pipeline tests.
type row map[string]any

func (r row) Field(name string) any { return r[name] }

func ids(items []row) []any {
	out := make([]any, len(items))
	for i, r := range items {
		out[i] = r["id"]
	}
	return out
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.Local)
}
