package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for accounts.
type UserRepository interface {
	// Add persists a new account. Returns ValueIsInvalidError when the
	// email is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves an account by its unique email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// Delete removes an account. Returns ObjectNotFoundError when no row
	// was removed.
	Delete(ctx context.Context, id kernel.UUID) error
}
