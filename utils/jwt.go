package utils

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the HttpOnly cookie carrying the session token.
const SessionCookie = "fittracker_session"

// SessionTTL is how long an issued session stays valid.
const SessionTTL = 72 * time.Hour

// GenerateSessionToken signs a session token for the given user id.
func GenerateSessionToken(secret []byte, userID uint) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "user_id": userID,
        "exp":     time.Now().Add(SessionTTL).Unix(),
    })
    return token.SignedString(secret)
}

// ParseSessionToken validates a session token and returns the user id it was
// issued for.
func ParseSessionToken(secret []byte, tokenString string) (uint, error) {
    token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, errors.New("unexpected signing method")
        }
        return secret, nil
    })
    if err != nil || !token.Valid {
        return 0, errors.New("invalid session token")
    }

    claims, ok := token.Claims.(jwt.MapClaims)
    if !ok {
        return 0, errors.New("invalid claims")
    }

    id, ok := claims["user_id"].(float64) // numbers decode as float64
    if !ok || id <= 0 {
        return 0, errors.New("user_id claim missing")
    }
    return uint(id), nil
}
