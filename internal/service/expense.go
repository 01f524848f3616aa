package service

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nikkjke/finance-tracker/internal/models"
	"github.com/nikkjke/finance-tracker/internal/storage"
)

// ExpenseService manages the expenses slot.
type ExpenseService struct {
	store storage.Store
	seed  []models.Expense
	opts  Options
	net   *Network
}

// NewExpenseService returns a service seeding the slot from seed on first use.
func NewExpenseService(store storage.Store, seed []models.Expense, opts Options) *ExpenseService {
	return &ExpenseService{store: store, seed: seed, opts: opts, net: opts.network()}
}

func (s *ExpenseService) load(ctx context.Context) []models.Expense {
	return storage.Load(ctx, s.store, storage.KeyExpenses, s.seed)
}

func expenseID(e models.Expense) string { return e.ID }

// List returns the expenses of userID in stored order, or every expense
// when userID is empty.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]models.Expense, error) {
	if err := s.net.Call(ctx, OpListExpenses, "Failed to fetch expenses."); err != nil {
		return nil, err
	}
	expenses := s.load(ctx)
	if userID == "" {
		return expenses, nil
	}
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Get returns the expense with the given id.
func (s *ExpenseService) Get(ctx context.Context, id string) (models.Expense, error) {
	if err := s.net.Call(ctx, OpGetExpense, "Failed to fetch expense."); err != nil {
		return models.Expense{}, err
	}
	expenses := s.load(ctx)
	i := indexOf(expenses, id, expenseID)
	if i < 0 {
		return models.Expense{}, notFoundError(OpGetExpense, "Expense", id)
	}
	return expenses[i], nil
}

// Create validates dto and stores a new completed expense at the front of
// the list.
func (s *ExpenseService) Create(ctx context.Context, userID string, dto models.CreateExpense) (models.Expense, error) {
	const op = OpCreateExpense
	if err := s.net.Call(ctx, op, "Failed to create expense."); err != nil {
		return models.Expense{}, err
	}

	if err := validateStoreName(op, dto.StoreName); err != nil {
		return models.Expense{}, err
	}
	if err := validateAmount(op, dto.Amount); err != nil {
		return models.Expense{}, err
	}
	if err := validateDate(op, dto.Date); err != nil {
		return models.Expense{}, err
	}
	if !dto.Category.Valid() {
		return models.Expense{}, newError(KindValidation, op, "Unknown category %s.", quoted(dto.Category))
	}
	if !dto.PaymentMethod.Valid() {
		return models.Expense{}, newError(KindValidation, op, "Unknown payment method %s.", quoted(dto.PaymentMethod))
	}

	e := models.Expense{
		ID:            "e-" + uuid.NewString(),
		UserID:        userID,
		StoreName:     strings.TrimSpace(dto.StoreName),
		Amount:        dto.Amount,
		Category:      dto.Category,
		Date:          dto.Date,
		Notes:         optional(dto.Notes),
		PaymentMethod: dto.PaymentMethod,
		Status:        models.StatusCompleted,
		ReceiptURL:    optional(dto.ReceiptURL),
	}

	expenses := slices.Insert(s.load(ctx), 0, e)
	if err := saveAll(ctx, s.store, s.opts, op, storage.KeyExpenses, expenses); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// Update applies the supplied fields of dto to the expense with the given id.
func (s *ExpenseService) Update(ctx context.Context, id string, dto models.UpdateExpense) (models.Expense, error) {
	const op = OpUpdateExpense
	if err := s.net.Call(ctx, op, "Failed to update expense."); err != nil {
		return models.Expense{}, err
	}

	expenses := s.load(ctx)
	i := indexOf(expenses, id, expenseID)
	if i < 0 {
		return models.Expense{}, notFoundError(op, "Expense", id)
	}

	e := expenses[i]
	if dto.StoreName != nil {
		if err := validateStoreName(op, *dto.StoreName); err != nil {
			return models.Expense{}, err
		}
		e.StoreName = strings.TrimSpace(*dto.StoreName)
	}
	if dto.Amount != nil {
		if err := validateAmount(op, *dto.Amount); err != nil {
			return models.Expense{}, err
		}
		e.Amount = *dto.Amount
	}
	if dto.Category != nil {
		if !dto.Category.Valid() {
			return models.Expense{}, newError(KindValidation, op, "Unknown category %s.", quoted(*dto.Category))
		}
		e.Category = *dto.Category
	}
	if dto.Date != nil {
		if err := validateDate(op, *dto.Date); err != nil {
			return models.Expense{}, err
		}
		e.Date = *dto.Date
	}
	if dto.Notes != nil {
		e.Notes = optional(*dto.Notes)
	}
	if dto.PaymentMethod != nil {
		if !dto.PaymentMethod.Valid() {
			return models.Expense{}, newError(KindValidation, op, "Unknown payment method %s.", quoted(*dto.PaymentMethod))
		}
		e.PaymentMethod = *dto.PaymentMethod
	}
	if dto.Status != nil {
		if !dto.Status.Valid() {
			return models.Expense{}, newError(KindValidation, op, "Unknown status %s.", quoted(*dto.Status))
		}
		e.Status = *dto.Status
	}
	if dto.ReceiptURL != nil {
		e.ReceiptURL = optional(*dto.ReceiptURL)
	}

	expenses[i] = e
	if err := saveAll(ctx, s.store, s.opts, op, storage.KeyExpenses, expenses); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// Delete removes the expense with the given id.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	const op = OpDeleteExpense
	if err := s.net.Call(ctx, op, "Failed to delete expense."); err != nil {
		return err
	}

	expenses := s.load(ctx)
	i := indexOf(expenses, id, expenseID)
	if i < 0 {
		return notFoundError(op, "Expense", id)
	}
	return saveAll(ctx, s.store, s.opts, op, storage.KeyExpenses, slices.Delete(expenses, i, i+1))
}

func validateStoreName(op, name string) error {
	if strings.TrimSpace(name) == "" {
		return validationError(op, "Store name is required.")
	}
	return nil
}

func validateAmount(op string, amount float64) error {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return validationError(op, "Amount must be greater than zero.")
	}
	return nil
}

func validateDate(op, date string) error {
	if strings.TrimSpace(date) == "" {
		return validationError(op, "Date is required.")
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return validationError(op, "Date must be in YYYY-MM-DD format.")
	}
	return nil
}

// optional trims s and returns nil when nothing is left.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
