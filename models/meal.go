package models

import (
    "time"

    "gorm.io/gorm"
)

// One logged meal with its macro snapshot.
type Meal struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"` // FK → users.id
    Name     string `gorm:"not null"`
    Calories int
    Protein  int
    Carbs    int
    Fats     int
    LoggedAt time.Time `gorm:"index;not null"`
}
