package services

import (
	"errors"
	"time"

	"github.com/samamo-gana/FitTracker/models"

	"gorm.io/gorm"
)

type TrackerService struct{ db *gorm.DB }

func NewTrackerService(db *gorm.DB) *TrackerService { return &TrackerService{db: db} }

// utcDayStart returns midnight of t's calendar date in UTC. "Today" on the
// dashboard means logged_at >= this instant.
func utcDayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *TrackerService) AddWeight(userID uint, weight float64) error {
	log := models.WeightLog{
		UserID:   userID,
		Weight:   weight,
		LoggedAt: time.Now().UTC(),
	}
	return s.db.Create(&log).Error
}

func (s *TrackerService) AddWorkout(userID uint, exercise string, sets, reps int, durationMin *int) error {
	workout := models.Workout{
		UserID:       userID,
		ExerciseName: exercise,
		Sets:         sets,
		Reps:         reps,
		DurationMin:  durationMin,
		LoggedAt:     time.Now().UTC(),
	}
	return s.db.Create(&workout).Error
}

func (s *TrackerService) AddMeal(userID uint, name string, calories, protein, carbs, fats int) error {
	meal := models.Meal{
		UserID:   userID,
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
		LoggedAt: time.Now().UTC(),
	}
	return s.db.Create(&meal).Error
}

func (s *TrackerService) TodaysMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND logged_at >= ?", userID, utcDayStart(time.Now())).
		Order("logged_at ASC, id ASC").
		Find(&meals).Error
	return meals, err
}

func (s *TrackerService) TodaysWorkouts(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.
		Where("user_id = ? AND logged_at >= ?", userID, utcDayStart(time.Now())).
		Order("logged_at ASC, id ASC").
		Find(&workouts).Error
	return workouts, err
}

// LatestWeight returns the most recently logged weight. ok is false when the
// user has no weight logs yet.
func (s *TrackerService) LatestWeight(userID uint) (weight float64, ok bool, err error) {
	var log models.WeightLog
	err = s.db.
		Where("user_id = ?", userID).
		Order("logged_at DESC, id DESC").
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return log.Weight, true, nil
}

// WeightPoint is one point of the dashboard trend chart.
type WeightPoint struct {
	Weight float64
	Label  string // short date, e.g. "Aug 29"
}

// WeightHistory returns up to limit most recent weight logs, oldest first.
func (s *TrackerService) WeightHistory(userID uint, limit int) ([]WeightPoint, error) {
	var logs []models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("logged_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	points := make([]WeightPoint, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		points = append(points, WeightPoint{
			Weight: logs[i].Weight,
			Label:  logs[i].LoggedAt.Format("Jan 2"),
		})
	}
	return points, nil
}

type NutritionTotals struct {
	Calories int
	Protein  int
	Carbs    int
	Fats     int
}

// SumNutrition adds up the macros of the given meals.
func SumNutrition(meals []models.Meal) NutritionTotals {
	var totals NutritionTotals
	for _, m := range meals {
		totals.Calories += m.Calories
		totals.Protein += m.Protein
		totals.Carbs += m.Carbs
		totals.Fats += m.Fats
	}
	return totals
}

// ResetToday deletes today's meals and workouts for one user in a single
// transaction. Weight logs are kept.
func (s *TrackerService) ResetToday(userID uint) error {
	start := utcDayStart(time.Now())
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND logged_at >= ?", userID, start).
			Delete(&models.Meal{}).Error; err != nil {
			return err
		}
		return tx.
			Where("user_id = ? AND logged_at >= ?", userID, start).
			Delete(&models.Workout{}).Error
	})
}
