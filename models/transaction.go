package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction amounts are stored in minor units (pennies) and only converted
// to major units at the view boundary.
type Transaction struct {
	ID          uuid.UUID           `gorm:"type:char(36);primary_key" json:"id"`
	UserId      uuid.UUID           `gorm:"type:char(36);index;not null" json:"user_id"`
	Type        TransactionType     `gorm:"type:enum('income','expense');not null" json:"type" binding:"required"`
	Category    TransactionCategory `gorm:"size:30;not null" json:"category" binding:"required"`
	Date        time.Time           `gorm:"type:date;not null" json:"date" binding:"required"`
	Frequency   *Frequency          `gorm:"size:20" json:"frequency"`
	Amount      int64               `gorm:"not null" json:"amount"`
	Description *string             `gorm:"size:100" json:"description"`
	CreatedAt   time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TransactionView is the JSON shape served to clients and cached in the user
// snapshot: ids as strings, date as yyyy-mm-dd, amount in major units.
type TransactionView struct {
	Id          string              `json:"id"`
	UserId      string              `json:"user_id"`
	Type        TransactionType     `json:"type"`
	Category    TransactionCategory `json:"category"`
	Date        string              `json:"date"`
	Frequency   *Frequency          `json:"frequency"`
	Amount      decimal.Decimal     `json:"amount"`
	Description *string             `json:"description"`
}

var minorUnitsPerMajor = decimal.NewFromInt(100)

// MajorUnits converts a minor-unit amount (pennies) to its decimal major-unit
// value (pounds).
func MajorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(minorUnitsPerMajor)
}

func (t Transaction) ToView() TransactionView {
	return TransactionView{
		Id:          t.ID.String(),
		UserId:      t.UserId.String(),
		Type:        t.Type,
		Category:    t.Category,
		Date:        t.Date.Format("2006-01-02"),
		Frequency:   t.Frequency,
		Amount:      MajorUnits(t.Amount),
		Description: t.Description,
	}
}

func TransactionViews(transactions []Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, t.ToView())
	}
	return views
}
