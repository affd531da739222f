package usecase

import (
	"errors"

	authdomain "planner-backend/internal/auth/domain"
	authdto "planner-backend/internal/auth/dto"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameTaken      = errors.New("a user with that username already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthUsecase covers registration, login and token handling
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)
	Login(req *authdto.LoginRequest) (*authdomain.User, *authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error

	// ValidateToken resolves an access token to its user
	ValidateToken(tokenString string) (*authdomain.User, error)
}

// UserUsecase is the staff-only user management API
type UserUsecase interface {
	ListUsers() ([]*authdomain.User, error)
	GetUser(id string) (*authdomain.User, error)
	CreateUser(req *authdto.CreateUserRequest) (*authdomain.User, error)
	UpdateUser(id string, req *authdto.UpdateUserRequest) (*authdomain.User, error)

	// DeleteUser also removes everything the user owns
	DeleteUser(id string) error
}
