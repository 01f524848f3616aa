package service

import (
	"math"

	"github.com/nikkjke/finance-tracker/internal/models"
	"github.com/nikkjke/finance-tracker/internal/storage"
)

func ptr[T any](v T) *T { return &v }

func (s *ServiceTestSuite) TestExpenseListSeedsOnFirstUse() {
	all, err := s.expenses.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, len(s.data.Expenses))
	s.Contains(s.store.Keys(), storage.KeyExpenses)

	mine, err := s.expenses.List(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Len(mine, 4)
	for _, e := range mine {
		s.Equal("u-1", e.UserID)
	}

	none, err := s.expenses.List(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *ServiceTestSuite) TestExpenseCreatePrepends() {
	created, err := s.expenses.Create(s.ctx, "u-1", models.CreateExpense{
		StoreName:     "  Kaufland  ",
		Amount:        187.45,
		Category:      models.CategoryFood,
		Date:          "2026-02-15",
		Notes:         "   ",
		PaymentMethod: models.PaymentCard,
	})
	s.Require().NoError(err)

	s.Regexp(`^e-[0-9a-f-]{36}$`, created.ID)
	s.Equal("Kaufland", created.StoreName)
	s.Equal(models.StatusCompleted, created.Status)
	s.Nil(created.Notes)
	s.Equal("u-1", created.UserID)

	list, err := s.expenses.List(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Require().Len(list, 5)
	s.Equal(created, list[0])
}

func (s *ServiceTestSuite) TestExpenseCreateValidation() {
	valid := models.CreateExpense{
		StoreName:     "Linella",
		Amount:        10,
		Category:      models.CategoryFood,
		Date:          "2026-02-01",
		PaymentMethod: models.PaymentCash,
	}

	tests := []struct {
		name   string
		mutate func(*models.CreateExpense)
		msg    string
	}{
		{"blank store", func(d *models.CreateExpense) { d.StoreName = "  " }, "Store name is required."},
		{"zero amount", func(d *models.CreateExpense) { d.Amount = 0 }, "Amount must be greater than zero."},
		{"negative amount", func(d *models.CreateExpense) { d.Amount = -3 }, "Amount must be greater than zero."},
		{"NaN amount", func(d *models.CreateExpense) { d.Amount = math.NaN() }, "Amount must be greater than zero."},
		{"infinite amount", func(d *models.CreateExpense) { d.Amount = math.Inf(1) }, "Amount must be greater than zero."},
		{"missing date", func(d *models.CreateExpense) { d.Date = "" }, "Date is required."},
		{"bad date", func(d *models.CreateExpense) { d.Date = "15/02/2026" }, "Date must be in YYYY-MM-DD format."},
		{"bad category", func(d *models.CreateExpense) { d.Category = "pets" }, `Unknown category "pets".`},
		{"bad payment", func(d *models.CreateExpense) { d.PaymentMethod = "cheque" }, `Unknown payment method "cheque".`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			dto := valid
			tt.mutate(&dto)
			_, err := s.expenses.Create(s.ctx, "u-1", dto)
			s.ErrorIs(err, ErrValidation)
			s.EqualError(err, tt.msg)
		})
	}

	all, err := s.expenses.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, len(s.data.Expenses), "failed creates must not write")
}

func (s *ServiceTestSuite) TestExpenseGet() {
	e, err := s.expenses.Get(s.ctx, "e-1")
	s.Require().NoError(err)
	s.Equal("Kaufland", e.StoreName)

	_, err = s.expenses.Get(s.ctx, "e-missing")
	s.ErrorIs(err, ErrNotFound)
	s.EqualError(err, `Expense with ID "e-missing" not found.`)
}

func (s *ServiceTestSuite) TestExpenseUpdate() {
	updated, err := s.expenses.Update(s.ctx, "e-4", models.UpdateExpense{
		Amount: ptr(135.0),
		Status: ptr(models.StatusCompleted),
		Notes:  ptr(" paid late "),
	})
	s.Require().NoError(err)
	s.Equal(135.0, updated.Amount)
	s.Equal(models.StatusCompleted, updated.Status)
	s.Require().NotNil(updated.Notes)
	s.Equal("paid late", *updated.Notes)
	s.Equal("Orange", updated.StoreName)

	got, err := s.expenses.Get(s.ctx, "e-4")
	s.Require().NoError(err)
	s.Equal(updated, got)

	cleared, err := s.expenses.Update(s.ctx, "e-4", models.UpdateExpense{Notes: ptr("")})
	s.Require().NoError(err)
	s.Nil(cleared.Notes)
}

func (s *ServiceTestSuite) TestExpenseUpdateRejectsInvalidFields() {
	_, err := s.expenses.Update(s.ctx, "e-1", models.UpdateExpense{Amount: ptr(-1.0)})
	s.ErrorIs(err, ErrValidation)

	_, err = s.expenses.Update(s.ctx, "e-1", models.UpdateExpense{Amount: ptr(math.Inf(1))})
	s.ErrorIs(err, ErrValidation)

	_, err = s.expenses.Update(s.ctx, "e-1", models.UpdateExpense{Status: ptr(models.Status("lost"))})
	s.ErrorIs(err, ErrValidation)

	_, err = s.expenses.Update(s.ctx, "e-missing", models.UpdateExpense{})
	s.ErrorIs(err, ErrNotFound)

	e, err := s.expenses.Get(s.ctx, "e-1")
	s.Require().NoError(err)
	s.Equal(187.45, e.Amount)
}

func (s *ServiceTestSuite) TestExpenseDelete() {
	s.Require().NoError(s.expenses.Delete(s.ctx, "e-2"))

	_, err := s.expenses.Get(s.ctx, "e-2")
	s.ErrorIs(err, ErrNotFound)

	err = s.expenses.Delete(s.ctx, "e-2")
	s.ErrorIs(err, ErrNotFound)

	all, err := s.expenses.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, len(s.data.Expenses)-1)
}

func (s *ServiceTestSuite) TestExpenseTransientFailureLeavesStoreUntouched() {
	s.build(Options{Network: &Network{Faults: FailOn(OpCreateExpense)}}, true, true, nil)

	_, err := s.expenses.Create(s.ctx, "u-1", models.CreateExpense{
		StoreName: "Bolt", Amount: 12, Category: models.CategoryTransport,
		Date: "2026-02-16", PaymentMethod: models.PaymentCard,
	})
	s.ErrorIs(err, ErrTransient)
	s.True(IsRetryable(err))
	s.EqualError(err, "Internal server error: Failed to create expense. Please try again.")
	s.NotContains(s.store.Keys(), storage.KeyExpenses)

	_, err = s.expenses.List(s.ctx, "u-1")
	s.NoError(err)
}

func (s *ServiceTestSuite) TestExpenseWriteFailures() {
	dto := models.CreateExpense{
		StoreName: "Bolt", Amount: 12, Category: models.CategoryTransport,
		Date: "2026-02-16", PaymentMethod: models.PaymentCard,
	}
	_, err := s.expenses.List(s.ctx, "")
	s.Require().NoError(err)
	s.store.SetFailWrites(true)

	created, err := s.expenses.Create(s.ctx, "u-1", dto)
	s.NoError(err, "write failures are swallowed by default")
	s.NotEmpty(created.ID)

	s.build(Options{Network: Instant(), SurfaceWriteErrors: true}, true, true, nil)
	_, err = s.expenses.Create(s.ctx, "u-1", dto)
	s.ErrorIs(err, ErrTransient)
	s.ErrorIs(err, storage.ErrWriteFailed)

	s.store.SetFailWrites(false)
	all, err := s.expenses.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, len(s.data.Expenses))
}
