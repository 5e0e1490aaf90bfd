package http

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openapiSpec []byte

// registerAPIDocs validates the embedded OpenAPI document and serves it as
// JSON at /openapi.json.
func registerAPIDocs(e *echo.Echo) error {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return err
	}
	if err = doc.Validate(context.Background()); err != nil {
		return err
	}

	rendered, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, rendered)
	})
	return nil
}
