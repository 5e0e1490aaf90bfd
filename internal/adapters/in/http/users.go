package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
)

// ListUsers handles GET /api/admin/users with page and limit parameters.
func (s *Server) ListUsers(ctx echo.Context) error {
	page, err := queryInt(ctx, "page")
	if err != nil {
		return badRequest(ctx, "Invalid page parameter")
	}
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "Invalid limit parameter")
	}

	query, err := queries.NewListUsersQuery(page, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	users := make([]UserResponse, len(result.Data))
	for i, u := range result.Data {
		users[i] = toUserResponse(u)
	}

	return ctx.JSON(http.StatusOK, UserListResponse{
		Data:       users,
		Pagination: toPaginationResponse(result.Pagination),
	})
}

// GetUser handles GET /api/admin/users/:id.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(result))
}

// UpdateUser handles PUT /api/admin/users/:id. Email and role are fixed at
// registration; name, password and the active flag may change.
func (s *Server) UpdateUser(ctx echo.Context) error {
	userID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var req UpdateUserRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateUserCommand(userID, req.Name, req.Password, req.Active)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "User updated successfully"})
}

// DeleteUser handles DELETE /api/admin/users/:id. Admins cannot delete
// their own account.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	if claims := currentClaims(ctx); claims != nil && claims.UserID == userID.String() {
		return badRequest(ctx, "Cannot delete your own account")
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
