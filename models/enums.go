package models

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type TransactionCategory string

// Income categories
const (
	CategorySalary   TransactionCategory = "Salary"
	CategoryInterest TransactionCategory = "Interest"
	CategoryBonus    TransactionCategory = "Bonus"
	CategoryDividend TransactionCategory = "Dividend"
	CategoryRefund   TransactionCategory = "Refund"
	CategoryGift     TransactionCategory = "Gift"
)

// Expense categories
const (
	CategoryRent         TransactionCategory = "Rent"
	CategoryMortgage     TransactionCategory = "Mortgage"
	CategoryUtilities    TransactionCategory = "Utilities"
	CategorySubscription TransactionCategory = "Subscription"
	CategoryLeisure      TransactionCategory = "Leisure"
	CategoryGroceries    TransactionCategory = "Groceries"
	CategoryDining       TransactionCategory = "Dining"
	CategoryAlcohol      TransactionCategory = "Alcohol"
	CategoryHealth       TransactionCategory = "Health"
	CategorySport        TransactionCategory = "Sport"
	CategoryGigs         TransactionCategory = "Gigs"
	CategoryEvent        TransactionCategory = "Event"
)

// income and expense categories are disjoint value sets
var incomeCategories = map[TransactionCategory]bool{
	CategorySalary:   true,
	CategoryInterest: true,
	CategoryBonus:    true,
	CategoryDividend: true,
	CategoryRefund:   true,
	CategoryGift:     true,
}

var expenseCategories = map[TransactionCategory]bool{
	CategoryRent:         true,
	CategoryMortgage:     true,
	CategoryUtilities:    true,
	CategorySubscription: true,
	CategoryLeisure:      true,
	CategoryGroceries:    true,
	CategoryDining:       true,
	CategoryAlcohol:      true,
	CategoryHealth:       true,
	CategorySport:        true,
	CategoryGigs:         true,
	CategoryEvent:        true,
}

func (c TransactionCategory) Valid() bool {
	return incomeCategories[c] || expenseCategories[c]
}

func (c TransactionCategory) IsIncome() bool {
	return incomeCategories[c]
}

func (c TransactionCategory) IsExpense() bool {
	return expenseCategories[c]
}

type Frequency string

const (
	FrequencyDaily      Frequency = "Daily"
	FrequencyWeekly     Frequency = "Weekly"
	FrequencyBiWeekly   Frequency = "Bi-Weekly"
	FrequencyFourWeekly Frequency = "Four-Weekly"
	FrequencyMonthly    Frequency = "Monthly"
	FrequencyAnnually   Frequency = "Annually"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencyFourWeekly, FrequencyMonthly, FrequencyAnnually:
		return true
	}
	return false
}
