package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// GetUserQueryHandler reads one account straight from the database. The
// password hash never leaves the storage layer through this path.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for single-account lookups.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when the account
// does not exist.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	var resp UserResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			active,
			created_at
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Email,
		&resp.Role,
		&resp.Active,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return UserResponse{}, errs.NewObjectNotFoundError("user", query.UserID())
	}
	if err != nil {
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}
	resp.ID = userID

	return resp, nil
}
