package http

import (
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openAPISpec []byte

// ValidateOpenAPISpec parses the embedded API contract and checks it is a
// well-formed OpenAPI 3 document. Called at startup so a broken contract
// fails the deploy instead of the first client.
func ValidateOpenAPISpec() error {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return err
	}
	return doc.Validate(loader.Context)
}

// OpenAPISpec handles GET /openapi.json.
func (s *Server) OpenAPISpec(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, openAPISpec)
}
