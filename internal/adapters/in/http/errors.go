package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/core/domain/services"
	"coldstore/internal/core/ports"
	"coldstore/internal/pkg/errs"
)

// ErrorResponse is the uniform error payload of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain failures to HTTP statuses. Conflicts between the
// queue and the store state (gone source, occupied target) are 409, not
// 500: they are expected outcomes of the check-twice execution model.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, ports.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, role.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNoEligibleSource),
		errors.Is(err, services.ErrInvalidTarget),
		errors.Is(err, services.ErrSourceGone),
		errors.Is(err, services.ErrTargetOccupied),
		errors.Is(err, services.ErrReviewOrdersDisabled),
		errors.Is(err, warehouse.ErrNoBoxAtPosition),
		errors.Is(err, warehouse.ErrPositionOccupied):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
