package dto

import authdomain "planner-backend/internal/auth/domain"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// CreateUserRequest is the admin body for creating a user
type CreateUserRequest struct {
	RegisterRequest
	IsStaff bool `json:"is_staff"`
}

// UpdateUserRequest is the admin body for changing a user. Only set fields change.
type UpdateUserRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=1,max=150"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	IsStaff   *bool   `json:"is_staff"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AdminUserResponse adds the staff flag for the user management endpoints
type AdminUserResponse struct {
	UserResponse
	IsStaff bool `json:"is_staff"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse is the user representation plus a token pair
type LoginResponse struct {
	UserResponse
	TokenResponse
}

func NewUserResponse(user *authdomain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func NewAdminUserResponse(user *authdomain.User) AdminUserResponse {
	return AdminUserResponse{UserResponse: NewUserResponse(user), IsStaff: user.IsStaff}
}
