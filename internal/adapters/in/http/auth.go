package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/security"
)

// Login handles POST /api/auth/login. Bad password, unknown email and
// deactivated account all answer the same 401 so callers cannot probe
// which emails exist.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	account, err := s.users.GetByEmail(ctx.Request().Context(), string(req.Email))
	if err != nil {
		return unauthorized(ctx, "Invalid credentials")
	}
	if !account.IsActive() || !security.CheckPassword(account.PasswordHash(), req.Password) {
		return unauthorized(ctx, "Invalid credentials")
	}

	token, err := s.tokens.Issue(account.ID().String(), account.Email(), string(account.Role()))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User: UserResponse{
			ID:        account.ID().String(),
			Name:      account.Name(),
			Email:     account.Email(),
			Role:      string(account.Role()),
			Active:    account.IsActive(),
			CreatedAt: account.CreatedAt(),
		},
	})
}

// Register handles POST /api/auth/register and POST /api/admin/users.
// Self-registration always yields a customer account; the role field is
// honored only when an admin token is present.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role := user.RoleCustomer
	claims := currentClaims(ctx)
	if claims != nil && claims.Role == string(user.RoleAdmin) && req.Role != "" {
		role = user.Role(req.Role)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Name, string(req.Email), req.Password, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID.String(),
	})
}

// Me handles GET /api/auth/me, returning the account behind the token.
func (s *Server) Me(ctx echo.Context) error {
	claims := currentClaims(ctx)
	if claims == nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return unauthorized(ctx, "Invalid or expired token")
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	account, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(account))
}
