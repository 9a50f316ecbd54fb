package config

import (
	"github.com/samamo-gana/FitTracker/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the SQLite database and migrates the schema.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.WeightLog{},
		&models.Workout{},
		&models.Meal{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
