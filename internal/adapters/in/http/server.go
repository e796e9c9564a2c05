package http

import (
	"context"
	"errors"
	"math"
	"net/http"

	"valueguard/internal/core/application/usecases/commands"
	"valueguard/internal/core/application/usecases/queries"
	"valueguard/internal/core/domain/model/kernel"
	"valueguard/internal/generated/servers"
	"valueguard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	// HolderCreator runs the create holder command.
	HolderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateHolderCommand) (kernel.UUID, error)
	}

	// HolderGetter runs the single holder query.
	HolderGetter interface {
		Handle(ctx context.Context, query queries.GetHolderQuery) (queries.HolderResponse, error)
	}

	// HolderLister runs the holder listing query.
	HolderLister interface {
		Handle(ctx context.Context, query queries.GetAllHoldersQuery) ([]queries.HolderResponse, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createHolderHandler HolderCreator

	// Query handlers
	getHolderHandler     HolderGetter
	getAllHoldersHandler HolderLister
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createHolderHandler HolderCreator,
	getHolderHandler HolderGetter,
	getAllHoldersHandler HolderLister,
) *Server {
	return &Server{
		createHolderHandler:  createHolderHandler,
		getHolderHandler:     getHolderHandler,
		getAllHoldersHandler: getAllHoldersHandler,
	}
}

// GetHolders handles GET /api/v1/holders - retrieves all holders.
func (s *Server) GetHolders(ctx echo.Context) error {
	query := queries.NewGetAllHoldersQuery()

	holders, err := s.getAllHoldersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve holders")
	}

	response := make([]servers.Holder, len(holders))
	for i, holder := range holders {
		response[i] = toHolderBody(holder.ID, holder.Value)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateHolder handles POST /api/v1/holders - creates a new holder.
func (s *Server) CreateHolder(ctx echo.Context) error {
	var newHolder servers.CreateHolderJSONRequestBody
	if err := ctx.Bind(&newHolder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if newHolder.Value == nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body: value is required")
	}
	if *newHolder.Value < math.MinInt || *newHolder.Value > math.MaxInt {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body: value is out of range")
	}

	cmd, err := commands.NewCreateHolderCommand(int(*newHolder.Value))
	if err != nil {
		return commandErrorResponse(ctx, err)
	}

	id, err := s.createHolderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toHolderBody(id, cmd.Value()))
}

// GetHolder handles GET /api/v1/holders/{holderId} - retrieves one holder.
func (s *Server) GetHolder(ctx echo.Context, holderId string) error {
	id, err := kernel.UUIDFromString(holderId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid holder ID: "+err.Error())
	}

	query, err := queries.NewGetHolderQuery(id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid holder ID: "+err.Error())
	}

	holder, err := s.getHolderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return errorResponse(ctx, http.StatusNotFound, "Holder not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve holder")
	}

	return ctx.JSON(http.StatusOK, toHolderBody(holder.ID, holder.Value))
}

func commandErrorResponse(ctx echo.Context, err error) error {
	var notPositive *errs.ValueIsNotPositiveError
	if errors.As(err, &notPositive) {
		return errorResponse(ctx, http.StatusUnprocessableEntity, "Invalid holder data: "+err.Error())
	}
	return errorResponse(ctx, http.StatusInternalServerError, "Failed to create holder")
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code), //nolint:gosec // HTTP status codes fit in int32
		Message: message,
	})
}

func toHolderBody(id kernel.UUID, value kernel.PositiveValue) servers.Holder {
	return servers.Holder{
		Id:    id.Bytes(),
		Value: int64(value.Value()),
		Text:  value.String(),
	}
}
