package models

// Category classifies expenses and budgets.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryBills         Category = "bills"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategoryTravel        Category = "travel"
	CategoryOther         Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryBills,
	CategoryHealth,
	CategoryEducation,
	CategoryTravel,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentQRScan       PaymentMethod = "qr_scan"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentBankTransfer, PaymentQRScan:
		return true
	}
	return false
}

// Status is the lifecycle state of an expense record.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// Expense represents a financial expense record.
type Expense struct {
	ID            string        `json:"id" yaml:"id"`
	UserID        string        `json:"userId" yaml:"userId"`
	StoreName     string        `json:"storeName" yaml:"storeName"`
	Amount        float64       `json:"amount" yaml:"amount"`
	Category      Category      `json:"category" yaml:"category"`
	Date          string        `json:"date" yaml:"date"`
	Notes         *string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod" yaml:"paymentMethod"`
	Status        Status        `json:"status" yaml:"status"`
	ReceiptURL    *string       `json:"receiptUrl,omitempty" yaml:"receiptUrl,omitempty"`
}

// Field returns the value stored under the JSON field name, or nil when the
// field is unknown or unset.
func (e Expense) Field(name string) any {
	switch name {
	case "id":
		return e.ID
	case "userId":
		return e.UserID
	case "storeName":
		return e.StoreName
	case "amount":
		return e.Amount
	case "category":
		return string(e.Category)
	case "date":
		return e.Date
	case "notes":
		return deref(e.Notes)
	case "paymentMethod":
		return string(e.PaymentMethod)
	case "status":
		return string(e.Status)
	case "receiptUrl":
		return deref(e.ReceiptURL)
	}
	return nil
}

// CreateExpense is the payload required to create a new expense.
type CreateExpense struct {
	StoreName     string        `json:"storeName"`
	Amount        float64       `json:"amount"`
	Category      Category      `json:"category"`
	Date          string        `json:"date"`
	Notes         string        `json:"notes,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	ReceiptURL    string        `json:"receiptUrl,omitempty"`
}

// UpdateExpense carries the fields to change on an existing expense. Nil
// fields are left untouched.
type UpdateExpense struct {
	StoreName     *string        `json:"storeName,omitempty"`
	Amount        *float64       `json:"amount,omitempty"`
	Category      *Category      `json:"category,omitempty"`
	Date          *string        `json:"date,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	Status        *Status        `json:"status,omitempty"`
	ReceiptURL    *string        `json:"receiptUrl,omitempty"`
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
