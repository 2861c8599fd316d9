package gormrepo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// AutoMigrate creates the save-slot and journal tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SaveSlot{}, &JournalRow{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
