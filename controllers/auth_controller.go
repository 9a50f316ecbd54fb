package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/samamo-gana/FitTracker/middlewares"
	"github.com/samamo-gana/FitTracker/models"
	"github.com/samamo-gana/FitTracker/services"
	"github.com/samamo-gana/FitTracker/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	auth   *services.AuthService
	secret []byte
	log    *zap.SugaredLogger
}

func NewAuthController(auth *services.AuthService, secret []byte, log *zap.SugaredLogger) *AuthController {
	return &AuthController{auth: auth, secret: secret, log: log}
}

func (ac *AuthController) isAuthenticated(c *gin.Context) bool {
	_, ok := middlewares.SessionUserID(c, ac.secret)
	return ok
}

// Home sends authenticated users to the dashboard and everyone else to the
// login page. The session is kept as-is.
func (ac *AuthController) Home(c *gin.Context) {
	if ac.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	if ac.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "register.html", gin.H{"Flash": utils.PopFlash(c)})
}

func (ac *AuthController) Register(c *gin.Context) {
	if ac.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	err := ac.auth.Register(username, password)
	switch {
	case err == nil:
		utils.SetFlash(c, "success", "Account created! You can now login")
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, models.ErrAlreadyExists), errors.Is(err, models.ErrInvalidInput):
		utils.SetFlash(c, "danger", "Username already exists or invalid data.")
		c.Redirect(http.StatusSeeOther, "/register")
	default:
		ac.log.Errorw("register failed",
			"request_id", c.GetString("request_id"), "error", err)
		utils.SetFlash(c, "danger", "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/register")
	}
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	if ac.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": utils.PopFlash(c)})
}

func (ac *AuthController) Login(c *gin.Context) {
	if ac.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := ac.auth.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, models.ErrBadCredentials) {
			ac.log.Errorw("login failed",
				"request_id", c.GetString("request_id"), "error", err)
		}
		utils.SetFlash(c, "danger", "Login Unsuccessful. Please check username and password")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	token, err := utils.GenerateSessionToken(ac.secret, user.ID)
	if err != nil {
		ac.log.Errorw("session token generation failed",
			"request_id", c.GetString("request_id"), "error", err)
		utils.SetFlash(c, "danger", "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.SetCookie(utils.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
