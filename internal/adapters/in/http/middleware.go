package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/domain/model/user"
)

// claimsContextKey is the echo context key the verified token claims are
// stored under.
const claimsContextKey = "auth.claims"

// Authenticated rejects requests without a valid bearer token and stores
// the verified claims on the request context.
func (s *Server) Authenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(ctx, "Missing bearer token")
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			return unauthorized(ctx, "Invalid or expired token")
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// AdminOnly rejects authenticated requests whose token does not carry the
// admin role. Must run after Authenticated.
func (s *Server) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims := currentClaims(ctx)
		if claims == nil || claims.Role != string(user.RoleAdmin) {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "Admin access required",
			})
		}
		return next(ctx)
	}
}
