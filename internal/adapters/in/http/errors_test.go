package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind Kind
	}{
		{"unauthenticated", fmt.Errorf("%w: invalid token", errUnauthenticated), http.StatusUnauthorized, KindUnauthenticated},
		{"access denied", errs.NewAccessDeniedError("PlaceOrder"), http.StatusForbidden, KindUnauthorized},
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound, KindNotFound},
		{"empty cart", commands.ErrEmptyCart, http.StatusBadRequest, KindEmptyCart},
		{"wrapped empty cart", fmt.Errorf("place order: %w", commands.ErrEmptyCart), http.StatusBadRequest, KindEmptyCart},
		{"invalid", errs.NewValueIsInvalidError("price"), http.StatusBadRequest, KindInvalidInput},
		{"required", errs.NewValueIsRequiredError("title"), http.StatusBadRequest, KindInvalidInput},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 32767), http.StatusBadRequest, KindInvalidInput},
		{"joined validation", errors.Join(errs.NewValueIsRequiredError("title"), errs.NewValueIsInvalidError("price")), http.StatusBadRequest, KindInvalidInput},
		{"invalid crew", fmt.Errorf("%w: user lacks role", commands.ErrInvalidCrewAssignment), http.StatusBadRequest, KindInvalidInput},
		{"role not assignable", user.ErrRoleIsNotAssignable, http.StatusBadRequest, KindInvalidInput},
		{"conflict", errs.NewConflictError("category"), http.StatusConflict, KindConflict},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound, KindNotFound},
		{"echo method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, KindInvalidInput},
		{"echo bad request", echo.NewHTTPError(http.StatusBadRequest, "bad json"), http.StatusBadRequest, KindInvalidInput},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toError(tt.err)

			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.kind, got.Kind)
		})
	}
}

func TestToError_InternalHidesDetails(t *testing.T) {
	got := toError(errors.New("pq: password authentication failed"))

	assert.Equal(t, "Internal Server Error", got.Message)
}

func TestHTTPErrorHandler_WritesBody(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(discardLogger())
	e.GET("/boom", func(echo.Context) error {
		return errs.NewObjectNotFoundError("menu item", "7")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, KindNotFound, body.Kind)
	assert.Equal(t, "object not found: 7", body.Message)
}
