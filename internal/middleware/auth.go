package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/swarmwrapped/wrapped-backend-go/internal/repository"
	"github.com/swarmwrapped/wrapped-backend-go/pkg/response"
)

// SessionCookie is the browser cookie carrying the signed session id. The
// OAuth access token itself never leaves the server.
const SessionCookie = "wrapped_session"

// TokenContextKey is where the middleware stores the resolved access token.
const TokenContextKey = "access_token"

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SignSession issues the JWT placed in the session cookie.
func SignSession(secret, sessionID string, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSession validates a session JWT and returns the session id.
func ParseSession(secret, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.SessionID, nil
}

// SessionAuth resolves the session cookie to an OAuth access token and puts
// it on the request context. Requests without a live session get 401.
func SessionAuth(secret string, sessions *repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		sessionID, err := ParseSession(secret, cookie)
		if err != nil {
			response.Unauthorized(c, "Invalid session")
			c.Abort()
			return
		}

		token, err := sessions.GetToken(sessionID)
		if err != nil {
			response.Unauthorized(c, "Session expired")
			c.Abort()
			return
		}

		c.Set(TokenContextKey, token)
		c.Next()
	}
}
