package http

import (
	"errors"
	"net/http"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/generated/servers"
	"workorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors onto HTTP status codes. Version conflicts are
// checked before persistence failures because a conflict arrives wrapped in one.
func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrReasonRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyInStatus):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrTitleIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusFor(err)

	body := servers.Error{Code: code, Message: err.Error()}
	switch code {
	case http.StatusUnprocessableEntity:
		reasonRequired := true
		body.ReasonRequired = &reasonRequired
	case http.StatusInternalServerError:
		ctx.Logger().Error(err)
		body.Message = "Internal server error"
	}

	return ctx.JSON(code, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
