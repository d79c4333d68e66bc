package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestMajorUnits(t *testing.T) {
	cases := []struct {
		minor int64
		major string
	}{
		{0, "0"},
		{1, "0.01"},
		{1234, "12.34"},
		{-5000, "-50"},
		{250000, "2500"},
	}
	for _, tc := range cases {
		got := MajorUnits(tc.minor)
		if !got.Equal(decimal.RequireFromString(tc.major)) {
			t.Fatalf("MajorUnits(%d) = %s, want %s", tc.minor, got, tc.major)
		}
	}
}

func TestTransactionToView(t *testing.T) {
	userID := uuid.New()
	freq := FrequencyMonthly
	note := "rent for july"
	transaction := Transaction{
		ID:          uuid.New(),
		UserId:      userID,
		Type:        TransactionTypeExpense,
		Category:    CategoryRent,
		Date:        time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Frequency:   &freq,
		Amount:      95000,
		Description: &note,
	}

	view := transaction.ToView()
	if view.UserId != userID.String() {
		t.Fatalf("user id mismatch: %s", view.UserId)
	}
	if view.Date != "2025-07-03" {
		t.Fatalf("date not formatted: %s", view.Date)
	}
	if !view.Amount.Equal(decimal.RequireFromString("950")) {
		t.Fatalf("amount not in major units: %s", view.Amount)
	}
	if view.Frequency == nil || *view.Frequency != FrequencyMonthly {
		t.Fatalf("frequency lost: %v", view.Frequency)
	}
}

func TestBudgetToViewRemaining(t *testing.T) {
	budget := Budget{
		ID:        uuid.New(),
		UserId:    uuid.New(),
		Category:  CategoryGroceries,
		Frequency: FrequencyWeekly,
		Amount:    15000,
	}

	view := budget.ToView(17500)
	if !view.Spent.Equal(decimal.RequireFromString("175")) {
		t.Fatalf("spent = %s", view.Spent)
	}
	// Over-budget is representable, not an error.
	if !view.Remaining.Equal(decimal.RequireFromString("-25")) {
		t.Fatalf("remaining = %s", view.Remaining)
	}
}

func TestCategorySetsAreDisjoint(t *testing.T) {
	for c := range incomeCategories {
		if expenseCategories[c] {
			t.Fatalf("category %s is in both sets", c)
		}
	}
}
