package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/samamo-gana/FitTracker/middlewares"
	"github.com/samamo-gana/FitTracker/models"
	"github.com/samamo-gana/FitTracker/services"
	"github.com/samamo-gana/FitTracker/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Number of points shown in the weight trend chart.
const weightHistoryLimit = 10

type DashboardController struct {
	tracker *services.TrackerService
	log     *zap.SugaredLogger
}

func NewDashboardController(tracker *services.TrackerService, log *zap.SugaredLogger) *DashboardController {
	return &DashboardController{tracker: tracker, log: log}
}

// formInt casts a required numeric form field. Empty, missing and non-numeric
// values all abort the write.
func formInt(c *gin.Context, field string) (int, error) {
	v := c.PostForm(field)
	if v == "" {
		return 0, models.ErrInvalidInput
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, models.ErrInvalidInput
	}
	return n, nil
}

// optionalFormInt casts a numeric form field that may be left blank.
func optionalFormInt(c *gin.Context, field string) (*int, error) {
	v := c.PostForm(field)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, models.ErrInvalidInput
	}
	return &n, nil
}

func formFloat(c *gin.Context, field string) (float64, error) {
	v := c.PostForm(field)
	if v == "" {
		return 0, models.ErrInvalidInput
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, models.ErrInvalidInput
	}
	return f, nil
}

// Show renders the dashboard: today's logs, nutrition totals, current weight,
// the weight trend and a tip.
func (d *DashboardController) Show(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	meals, err := d.tracker.TodaysMeals(user.ID)
	if err != nil {
		d.renderUnavailable(c, user, err)
		return
	}
	workouts, err := d.tracker.TodaysWorkouts(user.ID)
	if err != nil {
		d.renderUnavailable(c, user, err)
		return
	}
	latest, hasWeight, err := d.tracker.LatestWeight(user.ID)
	if err != nil {
		d.renderUnavailable(c, user, err)
		return
	}
	history, err := d.tracker.WeightHistory(user.ID, weightHistoryLimit)
	if err != nil {
		d.renderUnavailable(c, user, err)
		return
	}

	currentWeight := "N/A"
	if hasWeight {
		currentWeight = fmt.Sprintf("%.1f", latest)
	}
	totals := services.SumNutrition(meals)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":           user,
		"Tip":            services.RandomTip(),
		"TodaysMeals":    meals,
		"TodaysWorkouts": workouts,
		"Totals":         totals,
		"CurrentWeight":  currentWeight,
		"WeightHistory":  history,
		"Flash":          utils.PopFlash(c),
	})
}

// Create handles the dashboard form: one new weight, workout or meal row,
// selected by the "type" discriminator field. Any failed cast aborts the
// whole write.
func (d *DashboardController) Create(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var err error
	var success string

	switch c.PostForm("type") {
	case "weight":
		weight, ferr := formFloat(c, "weight")
		if ferr != nil {
			err = ferr
		} else {
			err = d.tracker.AddWeight(user.ID, weight)
			success = "Weight logged successfully!"
		}
	case "workout":
		exercise := c.PostForm("exercise")
		sets, serr := formInt(c, "sets")
		reps, rerr := formInt(c, "reps")
		duration, derr := optionalFormInt(c, "time")
		if exercise == "" || serr != nil || rerr != nil || derr != nil {
			err = models.ErrInvalidInput
		} else {
			err = d.tracker.AddWorkout(user.ID, exercise, sets, reps, duration)
			success = "Workout logged successfully!"
		}
	case "meal":
		name := c.PostForm("meal_name")
		calories, cerr := formInt(c, "calories")
		protein, perr := formInt(c, "protein")
		carbs, crerr := formInt(c, "carbs")
		fats, ferr := formInt(c, "fats")
		if name == "" || cerr != nil || perr != nil || crerr != nil || ferr != nil {
			err = models.ErrInvalidInput
		} else {
			err = d.tracker.AddMeal(user.ID, name, calories, protein, carbs, fats)
			success = "Meal logged successfully!"
		}
	default:
		err = models.ErrInvalidInput
	}

	switch {
	case err == nil:
		utils.SetFlash(c, "success", success)
	case errors.Is(err, models.ErrInvalidInput):
		utils.SetFlash(c, "danger", "Invalid input data. Please ensure all fields are correct.")
	default:
		d.log.Errorw("dashboard write failed",
			"request_id", c.GetString("request_id"), "user_id", user.ID, "error", err)
		utils.SetFlash(c, "danger", "Could not save your entry. Please try again.")
	}

	// Redirect-after-POST so a refresh does not resubmit the form.
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// ResetToday bulk-deletes today's meals and workouts for the calling user.
func (d *DashboardController) ResetToday(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	if err := d.tracker.ResetToday(user.ID); err != nil {
		d.log.Errorw("reset today failed",
			"request_id", c.GetString("request_id"), "user_id", user.ID, "error", err)
		utils.SetFlash(c, "danger", "Could not reset today's data. Please try again.")
	} else {
		utils.SetFlash(c, "warning", "All meals and workouts for today have been reset!")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (d *DashboardController) renderUnavailable(c *gin.Context, user *models.User, err error) {
	d.log.Errorw("dashboard read failed",
		"request_id", c.GetString("request_id"), "user_id", user.ID, "error", err)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":           user,
		"Tip":            services.RandomTip(),
		"TodaysMeals":    []models.Meal{},
		"TodaysWorkouts": []models.Workout{},
		"Totals":         services.NutritionTotals{},
		"CurrentWeight":  "N/A",
		"WeightHistory":  []services.WeightPoint{},
		"Flash":          &utils.Flash{Level: "danger", Message: "Could not load your data. Please try again."},
	})
}
