package http

import (
	"errors"
	"net/http"

	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request. Kind is a
// stable machine-readable classifier; Fields is present only on forbidden
// responses that rejected specific change-set fields.
type ErrorResponse struct {
	Code    int      `json:"code"`
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// writeError maps an application error onto the HTTP surface. The taxonomy
// maps one-to-one: NotFound 404, Forbidden 403, InvalidState 422,
// Conflict 409, invalid input 400, everything else 500.
func writeError(ctx echo.Context, err error) error {
	resp := ErrorResponse{
		Code:    http.StatusInternalServerError,
		Kind:    "internal",
		Message: "internal server error",
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		resp.Code = http.StatusNotFound
		resp.Kind = "not_found"
		resp.Message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		resp.Code = http.StatusForbidden
		resp.Kind = "forbidden"
		resp.Message = err.Error()
		var forbidden *errs.ForbiddenError
		if errors.As(err, &forbidden) {
			resp.Fields = forbidden.Fields
		}
	case errors.Is(err, errs.ErrInvalidState):
		resp.Code = http.StatusUnprocessableEntity
		resp.Kind = "invalid_state"
		resp.Message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		resp.Code = http.StatusConflict
		resp.Kind = "conflict"
		resp.Message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		resp.Code = http.StatusBadRequest
		resp.Kind = "invalid_input"
		resp.Message = err.Error()
	}

	return ctx.JSON(resp.Code, resp)
}

// badRequest writes a 400 for malformed requests that never reach the
// application layer.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Kind:    "invalid_input",
		Message: message,
	})
}
