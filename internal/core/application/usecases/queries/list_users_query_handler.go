package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
)

// ListUsersQueryResponse is one page of accounts.
type ListUsersQueryResponse struct {
	Data       []UserResponse
	Pagination Pagination
}

// ListUsersQueryHandler reads account pages straight from the database.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for account listings.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the listing, newest accounts first.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) (ListUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUsersQueryResponse{}, err
	}

	var total int
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM users").
		Scan(&total).Error; err != nil {
		return ListUsersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			active,
			created_at
		FROM users
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return ListUsersQueryResponse{}, err
	}
	defer rows.Close()

	users := make([]UserResponse, 0, query.Limit())
	for rows.Next() {
		var resp UserResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Role,
			&resp.Active,
			&resp.CreatedAt,
		); err != nil {
			return ListUsersQueryResponse{}, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListUsersQueryResponse{}, idErr
		}
		resp.ID = userID
		users = append(users, resp)
	}
	if err = rows.Err(); err != nil {
		return ListUsersQueryResponse{}, err
	}

	return ListUsersQueryResponse{
		Data:       users,
		Pagination: newPagination(query.Page(), query.Limit(), total),
	}, nil
}
