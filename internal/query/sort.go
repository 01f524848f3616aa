package query

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortConfig selects the field and order for SortItems. An empty Direction
// sorts ascending.
type SortConfig struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction,omitempty"`
}

// SortItems returns a sorted copy of items. Each pair of values is compared
// numerically when both are numbers, chronologically when both parse as
// dates, and otherwise as text using English collation. Nil values sort last
// in either direction. The sort is stable.
//
// Fields whose values mix types across items can order surprisingly, since
// the comparator is picked per pair.
func SortItems[T Record](items []T, cfg SortConfig) []T {
	out := slices.Clone(items)
	if cfg.Key == "" {
		return out
	}

	sign := 1
	if cfg.Direction == Desc {
		sign = -1
	}
	col := collate.New(language.English)

	slices.SortStableFunc(out, func(a, b T) int {
		av, bv := a.Field(cfg.Key), b.Field(cfg.Key)
		switch {
		case av == nil && bv == nil:
			return 0
		case av == nil:
			return 1
		case bv == nil:
			return -1
		}
		return sign * compareValues(col, av, bv)
	})
	return out
}

func compareValues(col *collate.Collator, a, b any) int {
	if an, ok := numberOf(a); ok {
		if bn, ok := numberOf(b); ok {
			return cmp.Compare(an, bn)
		}
	}
	if at, ok := parseTime(a); ok {
		if bt, ok := parseTime(b); ok {
			return at.Compare(bt)
		}
	}
	return col.CompareString(stringOf(a), stringOf(b))
}
