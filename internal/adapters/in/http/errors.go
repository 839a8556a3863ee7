package http

import (
	"errors"
	"log/slog"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Kind is the machine-readable failure class carried by every error response.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindUnauthorized    Kind = "unauthorized"
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindEmptyCart       Kind = "empty_cart"
	KindConflict        Kind = "conflict"
	KindInternal        Kind = "internal"
)

type Error struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var errUnauthenticated = errors.New("authentication required")

// toError classifies err. Unclassified errors become KindInternal and their
// text is not exposed.
func toError(err error) Error {
	var he *echo.HTTPError
	switch {
	case errors.Is(err, errUnauthenticated):
		return Error{Code: http.StatusUnauthorized, Kind: KindUnauthenticated, Message: err.Error()}
	case errors.Is(err, errs.ErrAccessDenied):
		return Error{Code: http.StatusForbidden, Kind: KindUnauthorized, Message: err.Error()}
	case errors.Is(err, commands.ErrEmptyCart):
		return Error{Code: http.StatusBadRequest, Kind: KindEmptyCart, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return Error{Code: http.StatusNotFound, Kind: KindNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrConflict):
		return Error{Code: http.StatusConflict, Kind: KindConflict, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return Error{Code: http.StatusBadRequest, Kind: KindInvalidInput, Message: err.Error()}
	case errors.As(err, &he):
		return fromHTTPError(he)
	default:
		return Error{Code: http.StatusInternalServerError, Kind: KindInternal, Message: http.StatusText(http.StatusInternalServerError)}
	}
}

func fromHTTPError(he *echo.HTTPError) Error {
	msg := http.StatusText(he.Code)
	if s, ok := he.Message.(string); ok && s != "" {
		msg = s
	}
	switch {
	case he.Code == http.StatusUnauthorized:
		return Error{Code: he.Code, Kind: KindUnauthenticated, Message: msg}
	case he.Code == http.StatusForbidden:
		return Error{Code: he.Code, Kind: KindUnauthorized, Message: msg}
	case he.Code == http.StatusNotFound:
		return Error{Code: he.Code, Kind: KindNotFound, Message: msg}
	case he.Code == http.StatusConflict:
		return Error{Code: he.Code, Kind: KindConflict, Message: msg}
	case he.Code >= http.StatusBadRequest && he.Code < http.StatusInternalServerError:
		return Error{Code: he.Code, Kind: KindInvalidInput, Message: msg}
	default:
		return Error{Code: http.StatusInternalServerError, Kind: KindInternal, Message: http.StatusText(http.StatusInternalServerError)}
	}
}

// NewHTTPErrorHandler renders handler errors as Error bodies and logs the
// ones that map to KindInternal.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		body := toError(err)
		if body.Kind == KindInternal {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
