package models

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pennyflow/pennyflow_backend/utils"
)

// RecordStore is the authoritative read side for users, transactions and
// budgets. It is constructed with its DB handle so services and tests can
// substitute their own store.
type RecordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// GetUserWithAssociations loads the user aggregate with transactions and
// budgets eagerly attached. Transactions come back date-descending so cached
// lists keep the order the endpoints serve.
func (s *RecordStore) GetUserWithAssociations(ctx context.Context, userID uuid.UUID) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).
		Preload("Transactions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("date DESC, created_at DESC")
		}).
		Preload("Budgets", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("category ASC")
		}).
		First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *RecordStore) GetBudgets(ctx context.Context, userID uuid.UUID) ([]Budget, error) {
	var budgets []Budget
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

// GetCategoryTotals sums expense-type transaction amounts (minor units) per
// category for one user. Lifetime totals: no date-range scoping.
func (s *RecordStore) GetCategoryTotals(ctx context.Context, userID uuid.UUID) (map[TransactionCategory]int64, error) {
	var rows []struct {
		Category TransactionCategory
		Total    int64
	}
	err := s.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ? AND type = ?", userID, TransactionTypeExpense).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[TransactionCategory]int64, len(rows))
	for _, row := range rows {
		totals[row.Category] = row.Total
	}
	return totals, nil
}

// GetRecentTransactions returns the n most recent transactions by date.
// order must be "ASC" or "DESC".
func (s *RecordStore) GetRecentTransactions(ctx context.Context, userID uuid.UUID, n int, order string) ([]Transaction, error) {
	order = strings.ToUpper(order)
	if order != "ASC" && order != "DESC" {
		return nil, errors.New("order must be either 'ASC' or 'DESC'")
	}

	var transactions []Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date " + order).
		Limit(n).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *RecordStore) GetAllTransactions(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
