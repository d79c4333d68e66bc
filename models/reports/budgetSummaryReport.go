package reports

import (
	"context"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/pennyflow_backend/models"
)

// RecordReader is the slice of the record store the report layer needs.
type RecordReader interface {
	GetBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	GetCategoryTotals(ctx context.Context, userID uuid.UUID) (map[models.TransactionCategory]int64, error)
	GetRecentTransactions(ctx context.Context, userID uuid.UUID, n int, order string) ([]models.Transaction, error)
}

type BudgetSummaryEntry struct {
	Category  models.TransactionCategory `json:"category"`
	Frequency models.Frequency           `json:"frequency"`
	Amount    decimal.Decimal            `json:"amount"`
	Spent     decimal.Decimal            `json:"spent"`
	Remaining decimal.Decimal            `json:"remaining"`
}

// BudgetSummary joins the user's budgets against per-category expense totals.
// Spent defaults to 0 for categories with no expenses yet, and remaining may
// go negative. Totals are lifetime sums, not scoped to the budget's
// recurrence period.
func BudgetSummary(ctx context.Context, store RecordReader, userID uuid.UUID) ([]BudgetSummaryEntry, error) {
	budgets, err := store.GetBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}
	categoryTotals, err := store.GetCategoryTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := make([]BudgetSummaryEntry, 0, len(budgets))
	for _, budget := range budgets {
		spent := categoryTotals[budget.Category]
		summary = append(summary, BudgetSummaryEntry{
			Category:  budget.Category,
			Frequency: budget.Frequency,
			Amount:    models.MajorUnits(budget.Amount),
			Spent:     models.MajorUnits(spent),
			Remaining: models.MajorUnits(budget.Amount - spent),
		})
	}
	return summary, nil
}
