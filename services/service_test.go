package services

import (
	"testing"

	"github.com/samamo-gana/FitTracker/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test db")
	err = db.AutoMigrate(&models.User{}, &models.WeightLog{}, &models.Workout{}, &models.Meal{})
	require.NoError(t, err, "failed to migrate test db")
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	user := models.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}
