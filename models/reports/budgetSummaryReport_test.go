package reports

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/pennyflow_backend/models"
)

func TestBudgetSummarySpentDefaultsToZero(t *testing.T) {
	userID := uuid.New()
	store := &fakeRecordReader{
		budgets: []models.Budget{
			{ID: uuid.New(), UserId: userID, Category: models.CategoryRent, Frequency: models.FrequencyMonthly, Amount: 50000},
		},
		totals: map[models.TransactionCategory]int64{},
	}

	summary, err := BudgetSummary(context.Background(), store, userID)
	if err != nil {
		t.Fatalf("BudgetSummary: %v", err)
	}
	if len(summary) != 1 {
		t.Fatalf("summary length = %d", len(summary))
	}

	entry := summary[0]
	if !entry.Spent.Equal(decimal.Zero) {
		t.Fatalf("spent should default to 0, got %s", entry.Spent)
	}
	if !entry.Remaining.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("remaining = %s, want 500", entry.Remaining)
	}
	if !entry.Amount.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("amount = %s, want 500", entry.Amount)
	}
}

func TestBudgetSummaryNegativeRemaining(t *testing.T) {
	userID := uuid.New()
	store := &fakeRecordReader{
		budgets: []models.Budget{
			{ID: uuid.New(), UserId: userID, Category: models.CategoryGroceries, Frequency: models.FrequencyWeekly, Amount: 15000},
		},
		totals: map[models.TransactionCategory]int64{models.CategoryGroceries: 17500},
	}

	summary, err := BudgetSummary(context.Background(), store, userID)
	if err != nil {
		t.Fatalf("BudgetSummary: %v", err)
	}

	entry := summary[0]
	if !entry.Spent.Equal(decimal.RequireFromString("175")) {
		t.Fatalf("spent = %s", entry.Spent)
	}
	if !entry.Remaining.Equal(decimal.RequireFromString("-25")) {
		t.Fatalf("remaining = %s, want -25", entry.Remaining)
	}
}

func TestBudgetSummaryEmptyBudgets(t *testing.T) {
	store := &fakeRecordReader{totals: map[models.TransactionCategory]int64{models.CategoryRent: 10000}}

	summary, err := BudgetSummary(context.Background(), store, uuid.New())
	if err != nil {
		t.Fatalf("BudgetSummary: %v", err)
	}
	if len(summary) != 0 {
		t.Fatalf("no budgets should mean an empty summary, got %+v", summary)
	}
}
