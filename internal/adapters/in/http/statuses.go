package http

import (
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CreateStatusRequest is the body of POST /api/v1/statuses.
type CreateStatusRequest struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

// UpdateStatusRequest is the body of PATCH /api/v1/statuses/:statusId. Only
// label and description are mutable; code and the system flag never change.
type UpdateStatusRequest struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ReorderStatusesRequest is the body of PUT /api/v1/statuses/reorder: the
// full list of status ids in their new display order.
type ReorderStatusesRequest struct {
	StatusIDs []string `json:"statusIds"`
}

// StatusBody is the status projection on the wire.
type StatusBody struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	IsSystem    bool   `json:"isSystem"`
	SortOrder   int    `json:"sortOrder"`
}

func statusBodyFromDomain(s *status.Status) StatusBody {
	return StatusBody{
		ID:          s.ID().String(),
		Code:        s.Code(),
		Label:       s.Label(),
		Description: s.Description(),
		IsSystem:    s.IsSystem(),
		SortOrder:   s.SortOrder(),
	}
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(ctx echo.Context) error {
	statuses, err := s.listStatusesHandler.Handle(
		ctx.Request().Context(), queries.NewListStatusesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	bodies := make([]StatusBody, len(statuses))
	for i, resp := range statuses {
		bodies[i] = StatusBody{
			ID:          resp.ID,
			Code:        resp.Code,
			Label:       resp.Label,
			Description: resp.Description,
			IsSystem:    resp.IsSystem,
			SortOrder:   resp.SortOrder,
		}
	}
	return ctx.JSON(http.StatusOK, bodies)
}

// CreateStatus handles POST /api/v1/statuses.
func (s *Server) CreateStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	var req CreateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateStatusCommand(
		actor, req.Code, req.Label, req.Description, req.SortOrder)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.logger.Info("status created", zap.String("code", created.Code()))
	return ctx.JSON(http.StatusCreated, statusBodyFromDomain(created))
}

// UpdateStatus handles PATCH /api/v1/statuses/:statusId.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	statusID, err := kernel.UUIDFromString(ctx.Param("statusId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateStatusCommand(actor, statusID, req.Label, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusBodyFromDomain(updated))
}

// DeleteStatus handles DELETE /api/v1/statuses/:statusId.
func (s *Server) DeleteStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	statusID, err := kernel.UUIDFromString(ctx.Param("statusId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteStatusCommand(actor, statusID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.logger.Info("status deleted", zap.String("statusId", statusID.String()))
	return ctx.NoContent(http.StatusNoContent)
}

// ReorderStatuses handles PUT /api/v1/statuses/reorder.
func (s *Server) ReorderStatuses(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	var req ReorderStatusesRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	statusIDs := make([]kernel.UUID, len(req.StatusIDs))
	for i, raw := range req.StatusIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusIDs[i] = id
	}

	cmd, err := commands.NewReorderStatusesCommand(actor, statusIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reorderStatusesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.ListStatuses(ctx)
}
