package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var people = []row{
	{"id": 1, "name": "Mariana", "email": "mariana@example.com", "role": "user"},
	{"id": 2, "name": "Admin", "email": "admin@fintrack.com", "role": "admin"},
	{"id": 3, "name": "Ion", "email": "ion@example.com", "role": "user", "note": nil},
}

func TestSearchByText(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   []any
	}{
		{"case-insensitive substring", "MARI", []string{"name"}, []any{1}},
		{"any listed field", "fintrack", []string{"name", "email"}, []any{2}},
		{"unlisted field ignored", "fintrack", []string{"name"}, []any{}},
		{"nil fields skipped", "x", []string{"note"}, []any{}},
		{"numbers searched as text", "3", []string{"id"}, []any{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SearchByText(people, tt.query, tt.fields)))
		})
	}
}

func TestSearchByTextBlankQueryIsIdentity(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		got := SearchByText(people, q, []string{"name"})
		assert.Equal(t, people, got)
	}
}
