// seed-dev resets the demo user (email: example@mail.com) and populates
// sample transactions and budgets for local development.
//
// Usage (from backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-dev
//
// Prints a JWT for the demo user so the API can be exercised immediately.
package main

import (
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/pennyflow/pennyflow_backend/config"
	"github.com/pennyflow/pennyflow_backend/models"
	"github.com/pennyflow/pennyflow_backend/utils"
)

const (
	demoEmail    = "example@mail.com"
	demoPassword = "password"
	demoAlias    = "Captain Test"
)

func main() {
	db := config.ConnectDatabaseWithRetry()
	if err := models.AutoMigrate(db); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate database: %v\n", err)
		os.Exit(1)
	}

	user, err := upsertDemoUser(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed demo user: %v\n", err)
		os.Exit(1)
	}

	if err := seedRecords(db, user); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed records: %v\n", err)
		os.Exit(1)
	}

	token, err := utils.JwtGenerate(user.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeded user %s (%s)\n", user.Alias, user.ID)
	fmt.Printf("token: %s\n", token)
}

func upsertDemoUser(db *gorm.DB) (*models.User, error) {
	hashed, err := utils.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = db.Where("email = ?", demoEmail).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{Email: demoEmail, Password: string(hashed), Alias: demoAlias}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	if err := db.Model(&user).Updates(models.User{Password: string(hashed), Alias: demoAlias}).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedRecords(db *gorm.DB, user *models.User) error {
	// Re-seed from scratch each run.
	if err := db.Where("user_id = ?", user.ID).Delete(&models.Transaction{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id = ?", user.ID).Delete(&models.Budget{}).Error; err != nil {
		return err
	}

	monthly := models.FrequencyMonthly
	salaryNote := "Day job"
	transactions := []models.Transaction{
		{UserId: user.ID, Type: models.TransactionTypeIncome, Category: models.CategorySalary, Date: date(2025, 6, 1), Frequency: &monthly, Amount: 250000, Description: &salaryNote},
		{UserId: user.ID, Type: models.TransactionTypeIncome, Category: models.CategorySalary, Date: date(2025, 7, 1), Frequency: &monthly, Amount: 250000, Description: &salaryNote},
		{UserId: user.ID, Type: models.TransactionTypeIncome, Category: models.CategoryInterest, Date: date(2025, 7, 15), Amount: 1250},
		{UserId: user.ID, Type: models.TransactionTypeExpense, Category: models.CategoryRent, Date: date(2025, 6, 3), Frequency: &monthly, Amount: 95000},
		{UserId: user.ID, Type: models.TransactionTypeExpense, Category: models.CategoryRent, Date: date(2025, 7, 3), Frequency: &monthly, Amount: 95000},
		{UserId: user.ID, Type: models.TransactionTypeExpense, Category: models.CategoryGroceries, Date: date(2025, 7, 8), Amount: 12345},
		{UserId: user.ID, Type: models.TransactionTypeExpense, Category: models.CategoryDining, Date: date(2025, 7, 20), Amount: 4250},
	}
	if err := db.Create(&transactions).Error; err != nil {
		return err
	}

	budgets := []models.Budget{
		{UserId: user.ID, Category: models.CategoryRent, Frequency: models.FrequencyMonthly, Amount: 100000},
		{UserId: user.ID, Category: models.CategoryGroceries, Frequency: models.FrequencyWeekly, Amount: 15000},
		{UserId: user.ID, Category: models.CategoryLeisure, Frequency: models.FrequencyMonthly, Amount: 20000},
	}
	return db.Create(&budgets).Error
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
