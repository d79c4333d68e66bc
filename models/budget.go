package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget holds one per-category allowance per user; the composite unique
// index enforces the at-most-one-budget-per-category invariant.
type Budget struct {
	ID        uuid.UUID           `gorm:"type:char(36);primary_key" json:"id"`
	UserId    uuid.UUID           `gorm:"type:char(36);not null;uniqueIndex:idx_budget_user_category" json:"user_id"`
	Category  TransactionCategory `gorm:"size:30;not null;uniqueIndex:idx_budget_user_category" json:"category" binding:"required"`
	Frequency Frequency           `gorm:"size:20;not null" json:"frequency" binding:"required"`
	Amount    int64               `gorm:"not null" json:"amount"`
	CreatedAt time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BudgetView carries the derived spent/remaining figures alongside the stored
// fields, all in major units. Remaining may be negative: over-budget is a
// representable state, not an error.
type BudgetView struct {
	Id        string              `json:"id"`
	UserId    string              `json:"user_id"`
	Category  TransactionCategory `json:"category"`
	Frequency Frequency           `json:"frequency"`
	Amount    decimal.Decimal     `json:"amount"`
	Spent     decimal.Decimal     `json:"spent"`
	Remaining decimal.Decimal     `json:"remaining"`
}

// ToView derives spent/remaining from the given minor-unit expense total for
// this budget's category. Categories with no expenses pass 0.
func (b Budget) ToView(spentMinor int64) BudgetView {
	return BudgetView{
		Id:        b.ID.String(),
		UserId:    b.UserId.String(),
		Category:  b.Category,
		Frequency: b.Frequency,
		Amount:    MajorUnits(b.Amount),
		Spent:     MajorUnits(spentMinor),
		Remaining: MajorUnits(b.Amount - spentMinor),
	}
}

func BudgetViews(budgets []Budget, categoryTotals map[TransactionCategory]int64) []BudgetView {
	views := make([]BudgetView, 0, len(budgets))
	for _, b := range budgets {
		views = append(views, b.ToView(categoryTotals[b.Category]))
	}
	return views
}
