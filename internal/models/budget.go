package models

// Budget is a monthly spending target for one category.
type Budget struct {
	ID       string   `json:"id" yaml:"id"`
	UserID   string   `json:"userId" yaml:"userId"`
	Category Category `json:"category" yaml:"category"`
	Limit    float64  `json:"limit" yaml:"limit"`
	Spent    float64  `json:"spent" yaml:"spent"`
	// Month has the form "YYYY-MM".
	Month string `json:"month" yaml:"month"`
}

// Field returns the value stored under the JSON field name.
func (b Budget) Field(name string) any {
	switch name {
	case "id":
		return b.ID
	case "userId":
		return b.UserID
	case "category":
		return string(b.Category)
	case "limit":
		return b.Limit
	case "spent":
		return b.Spent
	case "month":
		return b.Month
	}
	return nil
}

// Remaining returns how much of the limit is left; negative when overspent.
func (b Budget) Remaining() float64 {
	return b.Limit - b.Spent
}

// CreateBudget is the payload required to create a new budget.
type CreateBudget struct {
	Category Category `json:"category"`
	Limit    float64  `json:"limit"`
	Month    string   `json:"month"`
}

// UpdateBudget carries the budget fields to change. Nil fields are kept.
type UpdateBudget struct {
	Category *Category `json:"category,omitempty"`
	Limit    *float64  `json:"limit,omitempty"`
	Spent    *float64  `json:"spent,omitempty"`
	Month    *string   `json:"month,omitempty"`
}
