package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

const (
	AdminSessionCookie = "admin_session"
	adminSessionMaxAge = 7 * 24 * time.Hour
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	return parts[1], true
}

func requireBearer(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server_token_not_configured"})
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_bearer_token"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_bearer_token"})
			return
		}

		c.Next()
	}
}

// MakeAuth protects the endpoints called by the Make workflow.
func MakeAuth(cfg *config.Config) gin.HandlerFunc {
	return requireBearer(cfg.MakeBearerToken)
}

// AdminBearerAuth protects the machine-facing admin endpoints.
func AdminBearerAuth(cfg *config.Config) gin.HandlerFunc {
	return requireBearer(cfg.AdminBearerToken)
}

// IssueAdminSession signs a session token for the admin panel cookie.
func IssueAdminSession(cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(adminSessionMaxAge).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.AdminSessionSecret))
}

// AdminSessionAuth validates the admin panel cookie.
func AdminSessionAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminSessionSecret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_secret_not_configured"})
			return
		}

		cookie, err := c.Cookie(AdminSessionCookie)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
			return
		}

		token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.AdminSessionSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
			return
		}

		c.Next()
	}
}

// SessionCookieMaxAge is what handlers pass to SetCookie on login.
func SessionCookieMaxAge() int {
	return int(adminSessionMaxAge.Seconds())
}
