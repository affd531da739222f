package delivery

import (
	"crypto/subtle"
	"net/http"
	"strings"

	authdomain "planner-backend/internal/auth/domain"
	"planner-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "sessionid"
	CSRFCookie    = "csrftoken"
	CSRFHeader    = "X-CSRFToken"
)

// AuthMiddleware resolves the caller from a Bearer token or the session
// cookie. Cookie sessions must also pass the CSRF check on unsafe methods.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, fromCookie := requestToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication credentials were not provided"})
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		if fromCookie && !safeMethod(c.Request.Method) && !validCSRF(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "CSRF token missing or incorrect"})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsStaff {
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to perform this action"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (*authdomain.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*authdomain.User)
	return user, ok
}

func requestToken(c *gin.Context) (token string, fromCookie bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1], false
		}
		return "", false
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func validCSRF(c *gin.Context) bool {
	cookie, err := c.Cookie(CSRFCookie)
	header := c.GetHeader(CSRFHeader)
	if err != nil || cookie == "" || header == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) == 1
}
