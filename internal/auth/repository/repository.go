package repository

import authdomain "planner-backend/internal/auth/domain"

// UserRepository defines the interface for user and token data access
type UserRepository interface {
	Create(user *authdomain.User) error

	// CreateWithProfile inserts the user and a default profile in one transaction
	CreateWithProfile(user *authdomain.User) error

	FindByUsername(username string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	List() ([]*authdomain.User, error)
	Update(user *authdomain.User) error

	// Delete removes the user together with everything they own
	Delete(id string) (bool, error)

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error

	// RotateRefreshToken swaps old for next atomically
	RotateRefreshToken(old string, next *authdomain.RefreshToken) error
}
