// Package http is the echo adapter for the holder API.
//
// Routes are bound through servers.RegisterHandlers. RegisterDocs adds the
// OpenAPI document at /openapi.json and the Swagger UI at /swagger/*.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"valueguard/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	doc string
}

func (s swaggerDoc) ReadDoc() string {
	return s.doc
}

var registerSwagger sync.Once

// RegisterDocs validates the embedded OpenAPI document and serves it.
// swag keeps a process-wide registry, so only the first call registers the document there.
func RegisterDocs(e *echo.Echo) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(body)})
	})

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, body)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
