package utils

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "fittracker_flash"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   string // success | danger | warning
	Message string
}

// SetFlash stores a flash message in a short-lived cookie. The message
// survives exactly one redirect.
func SetFlash(c *gin.Context, level, message string) {
	value := url.QueryEscape(level + "|" + message)
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	level, message, ok := strings.Cut(decoded, "|")
	if !ok {
		return nil
	}
	return &Flash{Level: level, Message: message}
}
