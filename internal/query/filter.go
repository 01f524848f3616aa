package query

// FilterByField keeps the items whose field equals value in string form.
// The value All returns items unchanged.
func FilterByField[T Record](items []T, field, value string) []T {
	if value == All {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if stringOf(item.Field(field)) == value {
			out = append(out, item)
		}
	}
	return out
}

// FilterByFields applies every entry of filters at once. Entries set to All
// are skipped; with no active entries items is returned unchanged.
func FilterByFields[T Record](items []T, filters map[string]string) []T {
	active := make(map[string]string, len(filters))
	for field, value := range filters {
		if value != All {
			active[field] = value
		}
	}
	if len(active) == 0 {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, active) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T Record](item T, filters map[string]string) bool {
	for field, value := range filters {
		if stringOf(item.Field(field)) != value {
			return false
		}
	}
	return true
}
