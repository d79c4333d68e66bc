package models

import "gorm.io/gorm"

// AutoMigrate creates/updates the tables this backend owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Transaction{},
		&Budget{},
	)
}
