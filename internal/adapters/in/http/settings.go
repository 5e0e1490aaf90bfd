package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/setting"
)

// GetSettings handles GET /api/admin/settings. Without a category parameter
// every category is returned, keyed by category name.
func (s *Server) GetSettings(ctx echo.Context) error {
	var filter *setting.Category
	if raw := ctx.QueryParam("category"); raw != "" {
		c := setting.Category(raw)
		filter = &c
	}

	query, err := queries.NewGetSettingsQuery(filter)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getSettingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// UpdateSettings handles PUT /api/admin/settings. The body maps category
// names to key/value blocks; each block upserts independently.
func (s *Server) UpdateSettings(ctx echo.Context) error {
	var req map[string]map[string]string
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if len(req) == 0 {
		return badRequest(ctx, "No settings provided")
	}

	for name, values := range req {
		cmd, err := commands.NewUpdateSettingsCommand(setting.Category(name), values)
		if err != nil {
			return writeError(ctx, err)
		}
		if err = s.updateSettingsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return writeError(ctx, err)
		}
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Settings updated successfully"})
}
