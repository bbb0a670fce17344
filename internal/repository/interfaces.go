package repository

import (
	"context"

	"github.com/Darshan-Yash/Periodic-table/internal/domain/user"
)

// UserRepository is the data-access surface for the users table.
type UserRepository interface {
	// Create inserts a new user and returns the generated id.
	// Returns ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	// GetByEmail returns the user with the given email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (user.User, error)
}
