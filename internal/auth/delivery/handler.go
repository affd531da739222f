package delivery

import (
	"errors"
	"net/http"
	"strings"
	"time"

	authdto "planner-backend/internal/auth/dto"
	"planner-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const csrfCookieMaxAge = 365 * 24 * time.Hour

// CookieOptions controls the session and CSRF cookies
type CookieOptions struct {
	Secure     bool
	SessionTTL time.Duration
}

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	cookies     CookieOptions
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		cookies:     cookies,
	}
}

// CSRFToken issues the CSRF cookie
// GET /api/csrf-token
func (h *AuthHandler) CSRFToken(c *gin.Context) {
	h.ensureCSRFCookie(c)
	c.JSON(http.StatusOK, gin.H{"detail": "CSRF cookie set"})
}

// Register creates a user and their profile
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, authdto.NewUserResponse(user))
}

// Login checks credentials and starts a session
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.setSessionCookie(c, tokens.AccessToken)
	h.ensureCSRFCookie(c)
	c.JSON(http.StatusOK, authdto.LoginResponse{
		UserResponse:  authdto.NewUserResponse(user),
		TokenResponse: *tokens,
	})
}

// RefreshToken exchanges a refresh token for a new pair
// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) || errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := c.Cookie(SessionCookie); err == nil {
		h.setSessionCookie(c, tokens.AccessToken)
	}
	c.JSON(http.StatusOK, tokens)
}

// Logout ends the session
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.LogoutRequest
	// The body is optional.
	_ = c.ShouldBindJSON(&req)

	if err := h.authUsecase.Logout(req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.cookies.Secure, true)
	c.JSON(http.StatusOK, gin.H{"detail": "Successfully logged out"})
}

// Me returns the current user
// GET /api/auth/user
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication credentials were not provided"})
		return
	}
	c.JSON(http.StatusOK, authdto.NewUserResponse(user))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, accessToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, accessToken, int(h.cookies.SessionTTL.Seconds()), "/", "", h.cookies.Secure, true)
}

// ensureCSRFCookie keeps an existing token so open tabs stay valid.
func (h *AuthHandler) ensureCSRFCookie(c *gin.Context) {
	token, err := c.Cookie(CSRFCookie)
	if err != nil || token == "" {
		token = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	c.SetSameSite(http.SameSiteLaxMode)
	// Readable by the frontend, which echoes it in X-CSRFToken.
	c.SetCookie(CSRFCookie, token, int(csrfCookieMaxAge.Seconds()), "/", "", h.cookies.Secure, false)
}
