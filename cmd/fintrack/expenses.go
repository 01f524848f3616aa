package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikkjke/finance-tracker/internal/models"
	"github.com/nikkjke/finance-tracker/internal/query"
)

// listFlags are the query options shared by the list commands.
type listFlags struct {
	all      bool
	search   string
	sortKey  string
	desc     bool
	preset   string
	page     int
	pageSize int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.all, "all", false, "Include every user's records")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Case-insensitive text search")
	cmd.Flags().StringVar(&f.sortKey, "sort", "", "Field to sort by")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "Sort descending")
	cmd.Flags().StringVar(&f.preset, "range", "", presetUsage())
	cmd.Flags().IntVar(&f.page, "page", 0, "Page number, starting at 1")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "Items per page")
}

func (f *listFlags) config(searchFields []string, dateField string, filters map[string]string) (query.Config, error) {
	cfg := query.Config{
		SearchQuery:  f.search,
		SearchFields: searchFields,
		Filters:      filters,
		Page:         f.page,
		PageSize:     f.pageSize,
	}
	if f.sortKey != "" {
		dir := query.Asc
		if f.desc {
			dir = query.Desc
		}
		cfg.Sort = &query.SortConfig{Key: f.sortKey, Direction: dir}
	}
	if f.preset != "" {
		r, err := query.PresetToDateRange(query.Preset(f.preset))
		if err != nil {
			return query.Config{}, err
		}
		cfg.DateField = dateField
		cfg.DateRange = &r
	}
	return cfg, nil
}

func presetUsage() string {
	names := make([]string, len(query.Presets))
	for i, p := range query.Presets {
		names[i] = string(p)
	}
	return "Date range preset (" + strings.Join(names, ", ") + ")"
}

// owner returns the user id to scope a listing to, or "" for everyone.
func (c *cli) owner(ctx context.Context, all bool) (string, error) {
	if all {
		if _, err := c.open(ctx); err != nil {
			return "", err
		}
		return "", nil
	}
	u, err := c.currentUser(ctx)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

func newExpensesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"expense", "ex"},
		Short:   "Manage expenses",
	}
	cmd.AddCommand(
		newExpenseListCmd(c),
		newExpenseGetCmd(c),
		newExpenseAddCmd(c),
		newExpenseUpdateCmd(c),
		newExpenseDeleteCmd(c),
		newExpenseStatsCmd(c),
	)
	return cmd
}

func newExpenseListCmd(c *cli) *cobra.Command {
	var (
		lf                        listFlags
		category, status, payment string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses of the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID, err := c.owner(ctx, lf.all)
			if err != nil {
				return emit(c, query.Result[models.Expense]{}, err)
			}
			cfg, err := lf.config(
				[]string{"storeName", "notes", "category"},
				"date",
				map[string]string{"category": category, "status": status, "paymentMethod": payment},
			)
			if err != nil {
				return err
			}

			expenses, err := c.app.Expenses.List(ctx, userID)
			if err != nil {
				return emit(c, query.Result[models.Expense]{}, err)
			}
			return emit(c, query.ApplyFilters(expenses, cfg), nil)
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVar(&category, "category", query.All, "Filter by category")
	cmd.Flags().StringVar(&status, "status", query.All, "Filter by status")
	cmd.Flags().StringVar(&payment, "payment", query.All, "Filter by payment method")
	return cmd
}

func newExpenseGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			e, err := a.Expenses.Get(cmd.Context(), args[0])
			return emit(c, e, err)
		},
	}
}

func newExpenseAddCmd(c *cli) *cobra.Command {
	var (
		dto      models.CreateExpense
		category string
		payment  string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.currentUser(cmd.Context())
			if err != nil {
				return emit(c, models.Expense{}, err)
			}
			dto.Category = models.Category(category)
			dto.PaymentMethod = models.PaymentMethod(payment)
			e, err := c.app.Expenses.Create(cmd.Context(), u.ID, dto)
			return emit(c, e, err)
		},
	}
	cmd.Flags().StringVar(&dto.StoreName, "store", "", "Store name")
	cmd.Flags().Float64Var(&dto.Amount, "amount", 0, "Amount spent")
	cmd.Flags().StringVar(&category, "category", string(models.CategoryOther), "Category")
	cmd.Flags().StringVar(&dto.Date, "date", time.Now().Format(time.DateOnly), "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dto.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&payment, "payment", string(models.PaymentCard), "Payment method")
	cmd.Flags().StringVar(&dto.ReceiptURL, "receipt", "", "Receipt URL")
	return cmd
}

func newExpenseUpdateCmd(c *cli) *cobra.Command {
	var (
		store, category, date, notes, payment, status, receipt string
		amount                                                 float64
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			var dto models.UpdateExpense
			flags := cmd.Flags()
			if flags.Changed("store") {
				dto.StoreName = &store
			}
			if flags.Changed("amount") {
				dto.Amount = &amount
			}
			if flags.Changed("category") {
				cat := models.Category(category)
				dto.Category = &cat
			}
			if flags.Changed("date") {
				dto.Date = &date
			}
			if flags.Changed("notes") {
				dto.Notes = &notes
			}
			if flags.Changed("payment") {
				pm := models.PaymentMethod(payment)
				dto.PaymentMethod = &pm
			}
			if flags.Changed("status") {
				st := models.Status(status)
				dto.Status = &st
			}
			if flags.Changed("receipt") {
				dto.ReceiptURL = &receipt
			}

			e, err := a.Expenses.Update(cmd.Context(), args[0], dto)
			return emit(c, e, err)
		},
	}
	cmd.Flags().StringVar(&store, "store", "", "Store name")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount spent")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes; empty clears them")
	cmd.Flags().StringVar(&payment, "payment", "", "Payment method")
	cmd.Flags().StringVar(&status, "status", "", "Status (completed, pending, cancelled)")
	cmd.Flags().StringVar(&receipt, "receipt", "", "Receipt URL; empty clears it")
	return cmd
}

func newExpenseDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an expense",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			return emitDone(c, a.Expenses.Delete(cmd.Context(), args[0]))
		},
	}
}

// expenseStats is the payload of "expenses stats".
type expenseStats struct {
	Total      float64               `json:"total"`
	Count      int                   `json:"count"`
	Categories []query.CategoryTotal `json:"categories"`
}

func newExpenseStatsCmd(c *cli) *cobra.Command {
	var (
		all    bool
		preset string
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID, err := c.owner(ctx, all)
			if err != nil {
				return emit(c, expenseStats{}, err)
			}
			expenses, err := c.app.Expenses.List(ctx, userID)
			if err != nil {
				return emit(c, expenseStats{}, err)
			}
			if preset != "" {
				r, err := query.PresetToDateRange(query.Preset(preset))
				if err != nil {
					return err
				}
				expenses = query.FilterByDateRange(expenses, "date", r)
			}
			return emit(c, expenseStats{
				Total:      query.SumAmounts(expenses),
				Count:      query.CountActive(expenses),
				Categories: query.CategoryTotals(expenses),
			}, nil)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include every user's expenses")
	cmd.Flags().StringVar(&preset, "range", "", presetUsage())
	return cmd
}
