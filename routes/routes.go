package routes

import (
	"github.com/samamo-gana/FitTracker/config"
	"github.com/samamo-gana/FitTracker/controllers"
	"github.com/samamo-gana/FitTracker/middlewares"
	"github.com/samamo-gana/FitTracker/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRouter wires services, controllers and middleware into the Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.LoadHTMLGlob(cfg.TemplateGlob)

	secret := []byte(cfg.SecretKey)
	authSvc := services.NewAuthService(db)
	trackerSvc := services.NewTrackerService(db)

	authCtl := controllers.NewAuthController(authSvc, secret, log)
	dashCtl := controllers.NewDashboardController(trackerSvc, log)

	// Public routes
	r.GET("/", authCtl.Home)
	r.GET("/register", authCtl.ShowRegister)
	r.POST("/register", authCtl.Register)
	r.GET("/login", authCtl.ShowLogin)
	r.POST("/login", authCtl.Login)
	r.GET("/logout", authCtl.Logout)

	// Protected routes
	private := r.Group("/")
	private.Use(middlewares.AuthRequired(secret, authSvc))
	{
		private.GET("/dashboard", dashCtl.Show)
		private.POST("/dashboard", dashCtl.Create)
		private.POST("/reset_today_data", dashCtl.ResetToday)
	}

	return r
}
