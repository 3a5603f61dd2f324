package contract

import (
	"context"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// UserFilter selects users; empty fields match anything.
type UserFilter struct {
	Role       entity.UserRole
	FirstName  string
	LastName   string
	Department string
}

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	// GetUserByID retrieves a user without its password hash.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user without its password hash.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserWithPassword retrieves a user by email including its password hash.
	GetUserWithPassword(ctx context.Context, email string) (*entity.User, error)
	// GetUserWithPasswordByID retrieves a user by ID including its password hash.
	GetUserWithPasswordByID(ctx context.Context, id string) (*entity.User, error)
	FindUsers(ctx context.Context, filter UserFilter) ([]*entity.User, error)
	// UpdateUser replaces the stored record, password hash included.
	UpdateUser(ctx context.Context, user *entity.User) error
}
