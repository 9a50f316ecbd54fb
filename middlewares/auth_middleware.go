package middlewares

import (
	"net/http"

	"github.com/samamo-gana/FitTracker/models"
	"github.com/samamo-gana/FitTracker/services"
	"github.com/samamo-gana/FitTracker/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthRequired resolves the session cookie to a User exactly once per request
// and stores it in the request context. Requests without a valid session are
// redirected to the login page.
func AuthRequired(secret []byte, users *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := SessionUserID(c, secret)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := users.UserByID(userID)
		if err != nil {
			// Stale cookie for a user that no longer exists.
			c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// SessionUserID reports the user id carried by the session cookie, if the
// request has a valid one.
func SessionUserID(c *gin.Context, secret []byte) (uint, bool) {
	raw, err := c.Cookie(utils.SessionCookie)
	if err != nil {
		return 0, false
	}
	userID, err := utils.ParseSessionToken(secret, raw)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CurrentUser returns the authenticated user set by AuthRequired. Only valid
// on routes behind that middleware.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(currentUserKey).(*models.User)
}
