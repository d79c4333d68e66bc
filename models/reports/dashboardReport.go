package reports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/pennyflow_backend/models"
)

const latestTransactionCount = 10

type DashboardResponse struct {
	UserAlias              string                   `json:"user_alias"`
	UserLatestTransactions []models.TransactionView `json:"user_latest_transactions"`
	UserIncomesTotal       decimal.Decimal          `json:"user_incomes_total"`
	UserExpensesTotal      decimal.Decimal          `json:"user_expenses_total"`
	UserBudgetSummary      []BudgetSummaryEntry     `json:"user_budget_summary"`
}

// ComputeDashboard assembles the overview payload from whatever snapshot is
// in hand (cached or freshly loaded):
//   - latest transactions always come fresh from the record store so recency
//     holds even when the snapshot is stale
//   - income/expense totals come from the snapshot's transaction list
//   - the budget summary is recomputed for the snapshot's user id
//
// A snapshot without a usable meta id is a caller contract violation and
// surfaces as an error, never as defaulted output.
func ComputeDashboard(ctx context.Context, store RecordReader, snapshot models.UserSnapshot) (*DashboardResponse, error) {
	if snapshot.Meta.Id == "" {
		return nil, errors.New("snapshot meta id is required")
	}
	userID, err := uuid.Parse(snapshot.Meta.Id)
	if err != nil {
		return nil, errors.New("snapshot meta id is not a valid user id")
	}

	latest, err := store.GetRecentTransactions(ctx, userID, latestTransactionCount, "DESC")
	if err != nil {
		return nil, err
	}

	incomesTotal := decimal.Zero
	expensesTotal := decimal.Zero
	for _, transaction := range snapshot.Transactions {
		switch transaction.Type {
		case models.TransactionTypeIncome:
			incomesTotal = incomesTotal.Add(transaction.Amount)
		case models.TransactionTypeExpense:
			expensesTotal = expensesTotal.Add(transaction.Amount)
		}
	}

	budgetSummary, err := BudgetSummary(ctx, store, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		UserAlias:              snapshot.Meta.Alias,
		UserLatestTransactions: models.TransactionViews(latest),
		UserIncomesTotal:       incomesTotal,
		UserExpensesTotal:      expensesTotal,
		UserBudgetSummary:      budgetSummary,
	}, nil
}
