package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/domain/model/kernel"
)

// pathUUID parses the :id path parameter.
func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// queryInt parses an optional integer query parameter. A missing or empty
// parameter yields zero, which the query constructors treat as "use the
// default".
func queryInt(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// optionalUUID parses a nullable UUID taken from a request body or query
// string. Empty input yields nil.
func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
