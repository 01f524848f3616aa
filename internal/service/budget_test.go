package service

import (
	"math"

	"github.com/nikkjke/finance-tracker/internal/models"
)

func (s *ServiceTestSuite) TestBudgetCreate() {
	b, err := s.budgets.Create(s.ctx, "u-1", models.CreateBudget{
		Category: models.CategoryHealth,
		Limit:    250,
		Month:    "2026-02",
	})
	s.Require().NoError(err)
	s.Regexp(`^b-`, b.ID)
	s.Zero(b.Spent)

	list, err := s.budgets.List(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Len(list, 4)
	s.Equal(b, list[len(list)-1])
}

func (s *ServiceTestSuite) TestBudgetCreateDuplicateConflicts() {
	_, err := s.budgets.Create(s.ctx, "u-1", models.CreateBudget{
		Category: models.CategoryFood,
		Limit:    900,
		Month:    "2026-02",
	})
	s.ErrorIs(err, ErrConflict)
	s.EqualError(err, `A budget for "food" already exists for 2026-02.`)

	all, err := s.budgets.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, len(s.data.Budgets))

	// Same triple for another user is fine.
	_, err = s.budgets.Create(s.ctx, "u-2", models.CreateBudget{
		Category: models.CategoryFood,
		Limit:    900,
		Month:    "2026-02",
	})
	s.NoError(err)
}

func (s *ServiceTestSuite) TestBudgetCreateValidation() {
	tests := []struct {
		name string
		dto  models.CreateBudget
	}{
		{"zero limit", models.CreateBudget{Category: models.CategoryFood, Limit: 0, Month: "2026-03"}},
		{"infinite limit", models.CreateBudget{Category: models.CategoryFood, Limit: math.Inf(1), Month: "2026-03"}},
		{"missing month", models.CreateBudget{Category: models.CategoryFood, Limit: 10}},
		{"bad month", models.CreateBudget{Category: models.CategoryFood, Limit: 10, Month: "March"}},
		{"bad category", models.CreateBudget{Category: "pets", Limit: 10, Month: "2026-03"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.budgets.Create(s.ctx, "u-1", tt.dto)
			s.ErrorIs(err, ErrValidation)
		})
	}

	list, err := s.budgets.List(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Len(list, 3, "failed creates must not write")
}

func (s *ServiceTestSuite) TestBudgetUpdate() {
	b, err := s.budgets.Update(s.ctx, "b-1", models.UpdateBudget{
		Limit: ptr(1800.0),
		Spent: ptr(200.0),
	})
	s.Require().NoError(err)
	s.Equal(1800.0, b.Limit)
	s.Equal(200.0, b.Spent)
	s.Equal(models.CategoryFood, b.Category)

	_, err = s.budgets.Update(s.ctx, "b-1", models.UpdateBudget{Limit: ptr(-5.0)})
	s.ErrorIs(err, ErrValidation)

	_, err = s.budgets.Update(s.ctx, "b-1", models.UpdateBudget{Spent: ptr(-1.0)})
	s.ErrorIs(err, ErrValidation)

	_, err = s.budgets.Update(s.ctx, "b-1", models.UpdateBudget{Spent: ptr(math.Inf(1))})
	s.ErrorIs(err, ErrValidation)

	_, err = s.budgets.Update(s.ctx, "b-missing", models.UpdateBudget{Limit: ptr(-5.0)})
	s.ErrorIs(err, ErrNotFound, "missing budgets are reported before validation")
}

func (s *ServiceTestSuite) TestBudgetUpdateTripleConflict() {
	_, err := s.budgets.Update(s.ctx, "b-2", models.UpdateBudget{Category: ptr(models.CategoryFood)})
	s.ErrorIs(err, ErrConflict)

	b, err := s.budgets.Get(s.ctx, "b-2")
	s.Require().NoError(err)
	s.Equal(models.CategoryTransport, b.Category)

	moved, err := s.budgets.Update(s.ctx, "b-2", models.UpdateBudget{
		Category: ptr(models.CategoryFood),
		Month:    ptr("2026-03"),
	})
	s.Require().NoError(err)
	s.Equal("2026-03", moved.Month)

	same, err := s.budgets.Update(s.ctx, "b-1", models.UpdateBudget{Category: ptr(models.CategoryFood)})
	s.Require().NoError(err)
	s.Equal("b-1", same.ID)
}

func (s *ServiceTestSuite) TestBudgetDelete() {
	s.Require().NoError(s.budgets.Delete(s.ctx, "b-3"))

	err := s.budgets.Delete(s.ctx, "b-404")
	s.ErrorIs(err, ErrNotFound)

	all, err := s.budgets.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, len(s.data.Budgets)-1)
}
