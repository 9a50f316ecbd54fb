package models

import (
    "time"

    "gorm.io/gorm"
)

type Workout struct {
    gorm.Model
    UserID       uint   `gorm:"index;not null"` // FK → users.id
    ExerciseName string `gorm:"not null"`
    Sets         int
    Reps         int
    DurationMin  *int      // optional
    LoggedAt     time.Time `gorm:"index;not null"`
}
