// Package servers holds the HTTP API contract: request and response bodies,
// the ServerInterface the adapter implements, and the echo wiring that binds
// parameters before dispatching to it.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Holder defines model for Holder.
type Holder struct {
	Id    openapi_types.UUID `json:"id"`
	Text  string             `json:"text"`
	Value int64              `json:"value"`
}

// NewHolder defines model for NewHolder.
type NewHolder struct {
	Value *int64 `json:"value"`
}

// CreateHolderJSONRequestBody defines body for CreateHolder for application/json ContentType.
type CreateHolderJSONRequestBody = NewHolder

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List holders
	// (GET /api/v1/holders)
	GetHolders(ctx echo.Context) error
	// Create a holder
	// (POST /api/v1/holders)
	CreateHolder(ctx echo.Context) error
	// Get a holder
	// (GET /api/v1/holders/{holderId})
	GetHolder(ctx echo.Context, holderId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetHolders converts echo context to params.
func (w *ServerInterfaceWrapper) GetHolders(ctx echo.Context) error {
	return w.Handler.GetHolders(ctx)
}

// CreateHolder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateHolder(ctx echo.Context) error {
	return w.Handler.CreateHolder(ctx)
}

// GetHolder converts echo context to params.
func (w *ServerInterfaceWrapper) GetHolder(ctx echo.Context) error {
	var holderId string

	err := runtime.BindStyledParameterWithOptions("simple", "holderId", ctx.Param("holderId"), &holderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter holderId: %s", err))
	}

	return w.Handler.GetHolder(ctx, holderId)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/holders", wrapper.GetHolders)
	router.POST(baseURL+"/api/v1/holders", wrapper.CreateHolder)
	router.GET(baseURL+"/api/v1/holders/:holderId", wrapper.GetHolder)
}
