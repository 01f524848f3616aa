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

// BudgetService manages the budgets slot. A user has at most one budget per
// category and month.
type BudgetService struct {
	store storage.Store
	seed  []models.Budget
	opts  Options
	net   *Network
}

// NewBudgetService returns a service seeding the slot from seed on first use.
func NewBudgetService(store storage.Store, seed []models.Budget, opts Options) *BudgetService {
	return &BudgetService{store: store, seed: seed, opts: opts, net: opts.network()}
}

func (s *BudgetService) load(ctx context.Context) []models.Budget {
	return storage.Load(ctx, s.store, storage.KeyBudgets, s.seed)
}

func budgetID(b models.Budget) string { return b.ID }

// List returns the budgets of userID, or every budget when userID is empty.
func (s *BudgetService) List(ctx context.Context, userID string) ([]models.Budget, error) {
	if err := s.net.Call(ctx, OpListBudgets, "Failed to fetch budgets."); err != nil {
		return nil, err
	}
	budgets := s.load(ctx)
	if userID == "" {
		return budgets, nil
	}
	out := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// Get returns the budget with the given id.
func (s *BudgetService) Get(ctx context.Context, id string) (models.Budget, error) {
	if err := s.net.Call(ctx, OpGetBudget, "Failed to fetch budget."); err != nil {
		return models.Budget{}, err
	}
	budgets := s.load(ctx)
	i := indexOf(budgets, id, budgetID)
	if i < 0 {
		return models.Budget{}, notFoundError(OpGetBudget, "Budget", id)
	}
	return budgets[i], nil
}

// Create stores a new budget with nothing spent yet.
func (s *BudgetService) Create(ctx context.Context, userID string, dto models.CreateBudget) (models.Budget, error) {
	const op = OpCreateBudget
	if err := s.net.Call(ctx, op, "Failed to create budget."); err != nil {
		return models.Budget{}, err
	}

	if err := validateLimit(op, dto.Limit); err != nil {
		return models.Budget{}, err
	}
	if err := validateMonth(op, dto.Month); err != nil {
		return models.Budget{}, err
	}
	if !dto.Category.Valid() {
		return models.Budget{}, newError(KindValidation, op, "Unknown category %s.", quoted(dto.Category))
	}

	budgets := s.load(ctx)
	if duplicate(budgets, "", userID, dto.Category, dto.Month) {
		return models.Budget{}, conflictError(op, dto.Category, dto.Month)
	}

	b := models.Budget{
		ID:       "b-" + uuid.NewString(),
		UserID:   userID,
		Category: dto.Category,
		Limit:    dto.Limit,
		Month:    dto.Month,
	}
	budgets = append(budgets, b)
	if err := saveAll(ctx, s.store, s.opts, op, storage.KeyBudgets, budgets); err != nil {
		return models.Budget{}, err
	}
	return b, nil
}

// Update applies the supplied fields of dto to the budget with the given id.
func (s *BudgetService) Update(ctx context.Context, id string, dto models.UpdateBudget) (models.Budget, error) {
	const op = OpUpdateBudget
	if err := s.net.Call(ctx, op, "Failed to update budget."); err != nil {
		return models.Budget{}, err
	}

	budgets := s.load(ctx)
	i := indexOf(budgets, id, budgetID)
	if i < 0 {
		return models.Budget{}, notFoundError(op, "Budget", id)
	}

	old := budgets[i]
	b := old
	if dto.Category != nil {
		if !dto.Category.Valid() {
			return models.Budget{}, newError(KindValidation, op, "Unknown category %s.", quoted(*dto.Category))
		}
		b.Category = *dto.Category
	}
	if dto.Limit != nil {
		if err := validateLimit(op, *dto.Limit); err != nil {
			return models.Budget{}, err
		}
		b.Limit = *dto.Limit
	}
	if dto.Spent != nil {
		if !(*dto.Spent >= 0) || math.IsInf(*dto.Spent, 0) {
			return models.Budget{}, validationError(op, "Spent amount cannot be negative.")
		}
		b.Spent = *dto.Spent
	}
	if dto.Month != nil {
		if err := validateMonth(op, *dto.Month); err != nil {
			return models.Budget{}, err
		}
		b.Month = *dto.Month
	}

	moved := b.Category != old.Category || b.Month != old.Month
	if moved && duplicate(budgets, b.ID, b.UserID, b.Category, b.Month) {
		return models.Budget{}, conflictError(op, b.Category, b.Month)
	}

	budgets[i] = b
	if err := saveAll(ctx, s.store, s.opts, op, storage.KeyBudgets, budgets); err != nil {
		return models.Budget{}, err
	}
	return b, nil
}

// Delete removes the budget with the given id.
func (s *BudgetService) Delete(ctx context.Context, id string) error {
	const op = OpDeleteBudget
	if err := s.net.Call(ctx, op, "Failed to delete budget."); err != nil {
		return err
	}

	budgets := s.load(ctx)
	i := indexOf(budgets, id, budgetID)
	if i < 0 {
		return notFoundError(op, "Budget", id)
	}
	return saveAll(ctx, s.store, s.opts, op, storage.KeyBudgets, slices.Delete(budgets, i, i+1))
}

// duplicate reports whether a budget other than skipID already covers the
// user, category and month.
func duplicate(budgets []models.Budget, skipID, userID string, category models.Category, month string) bool {
	for _, b := range budgets {
		if b.ID != skipID && b.UserID == userID && b.Category == category && b.Month == month {
			return true
		}
	}
	return false
}

func conflictError(op string, category models.Category, month string) *Error {
	return newError(KindConflict, op, "A budget for %s already exists for %s.", quoted(category), month)
}

func validateLimit(op string, limit float64) error {
	if !(limit > 0) || math.IsInf(limit, 0) {
		return validationError(op, "Budget limit must be greater than zero.")
	}
	return nil
}

func validateMonth(op, month string) error {
	if strings.TrimSpace(month) == "" {
		return validationError(op, "Month is required.")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return validationError(op, "Month must be in YYYY-MM format.")
	}
	return nil
}
