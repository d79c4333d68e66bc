package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"type:char(36);primary_key" json:"id"`
	Email     string    `gorm:"size:100;not null;unique" json:"email" binding:"required,email"`
	Password  string    `gorm:"size:100;not null" json:"password" binding:"required"`
	Alias     string    `gorm:"size:30;not null" json:"alias" binding:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:UserId" json:"transactions"`
	Budgets      []Budget      `gorm:"foreignKey:UserId" json:"budgets"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) PrepareGive() {
	u.Password = ""
}

// UserMeta is the identity slice of a cached snapshot. The password hash is
// never serialised into the cache.
type UserMeta struct {
	Id    string `json:"id"`
	Alias string `json:"alias"`
}

// UserSnapshot is the denormalised view of a user plus their transactions and
// budgets, as written to and read from the cache store.
type UserSnapshot struct {
	Meta         UserMeta          `json:"meta"`
	Transactions []TransactionView `json:"transactions"`
	Budgets      []BudgetView      `json:"budgets"`
}

// ToSnapshot serialises the user's associations into the flat snapshot shape.
// categoryTotals supplies the minor-unit expense totals the budget views
// derive their spent/remaining figures from.
func (u User) ToSnapshot(categoryTotals map[TransactionCategory]int64) UserSnapshot {
	return UserSnapshot{
		Meta:         UserMeta{Id: u.ID.String(), Alias: u.Alias},
		Transactions: TransactionViews(u.Transactions),
		Budgets:      BudgetViews(u.Budgets, categoryTotals),
	}
}
