package models

import (
    "time"

    "gorm.io/gorm"
)

// One body-weight measurement. Weight logs are append-only: they are never
// updated and survive the reset-today operation.
type WeightLog struct {
    gorm.Model
    UserID   uint      `gorm:"index;not null"` // FK → users.id
    Weight   float64   `gorm:"not null"`       // kilograms
    LoggedAt time.Time `gorm:"index;not null"` // UTC, defaults to creation time
}
