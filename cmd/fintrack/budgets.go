package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nikkjke/finance-tracker/internal/models"
	"github.com/nikkjke/finance-tracker/internal/query"
)

// budgetView adds the derived remaining amount to a budget.
type budgetView struct {
	models.Budget
	Remaining float64 `json:"remaining"`
}

func (v budgetView) Field(name string) any {
	if name == "remaining" {
		return v.Remaining
	}
	return v.Budget.Field(name)
}

func viewOf(b models.Budget) budgetView {
	return budgetView{Budget: b, Remaining: b.Remaining()}
}

func newBudgetsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "budgets",
		Aliases: []string{"budget"},
		Short:   "Manage monthly budgets",
	}
	cmd.AddCommand(
		newBudgetListCmd(c),
		newBudgetGetCmd(c),
		newBudgetAddCmd(c),
		newBudgetUpdateCmd(c),
		newBudgetDeleteCmd(c),
	)
	return cmd
}

func newBudgetListCmd(c *cli) *cobra.Command {
	var (
		lf              listFlags
		category, month string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets of the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID, err := c.owner(ctx, lf.all)
			if err != nil {
				return emit(c, query.Result[budgetView]{}, err)
			}
			cfg, err := lf.config(
				[]string{"category", "month"},
				"month",
				map[string]string{"category": category, "month": month},
			)
			if err != nil {
				return err
			}

			budgets, err := c.app.Budgets.List(ctx, userID)
			if err != nil {
				return emit(c, query.Result[budgetView]{}, err)
			}
			views := make([]budgetView, len(budgets))
			for i, b := range budgets {
				views[i] = viewOf(b)
			}
			return emit(c, query.ApplyFilters(views, cfg), nil)
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVar(&category, "category", query.All, "Filter by category")
	cmd.Flags().StringVar(&month, "month", query.All, "Filter by month (YYYY-MM)")
	return cmd
}

func newBudgetGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			b, err := a.Budgets.Get(cmd.Context(), args[0])
			return emit(c, viewOf(b), err)
		},
	}
}

func newBudgetAddCmd(c *cli) *cobra.Command {
	var (
		dto      models.CreateBudget
		category string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a budget for a category and month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.currentUser(cmd.Context())
			if err != nil {
				return emit(c, budgetView{}, err)
			}
			dto.Category = models.Category(category)
			b, err := c.app.Budgets.Create(cmd.Context(), u.ID, dto)
			return emit(c, viewOf(b), err)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().Float64Var(&dto.Limit, "limit", 0, "Spending limit")
	cmd.Flags().StringVar(&dto.Month, "month", time.Now().Format("2006-01"), "Month (YYYY-MM)")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newBudgetUpdateCmd(c *cli) *cobra.Command {
	var (
		category, month string
		limit, spent    float64
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			var dto models.UpdateBudget
			flags := cmd.Flags()
			if flags.Changed("category") {
				cat := models.Category(category)
				dto.Category = &cat
			}
			if flags.Changed("limit") {
				dto.Limit = &limit
			}
			if flags.Changed("spent") {
				dto.Spent = &spent
			}
			if flags.Changed("month") {
				dto.Month = &month
			}

			b, err := a.Budgets.Update(cmd.Context(), args[0], dto)
			return emit(c, viewOf(b), err)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().Float64Var(&limit, "limit", 0, "Spending limit")
	cmd.Flags().Float64Var(&spent, "spent", 0, "Amount spent so far")
	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM)")
	return cmd
}

func newBudgetDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a budget",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			return emitDone(c, a.Budgets.Delete(cmd.Context(), args[0]))
		},
	}
}
