// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email is already taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrDuplicateUsername is returned when another user holds the username.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserFilter narrows the admin user listing.
type UserFilter struct {
	UserType  entity.Role
	IsActive  *bool
	KYCStatus entity.KYCStatus
	Search    string
	entity.Pagination
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// SetActive activates or deactivates a user.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// AcquireSessionMutex row-locks the user so session limits are checked serially.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error

	// List returns one page of users matching filter and the total count.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)

	// FindRecent returns the newest users.
	FindRecent(ctx context.Context, limit int) ([]*entity.User, error)
}
