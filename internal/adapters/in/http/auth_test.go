package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type MockCallerResolver struct {
	mock.Mock
}

func (m *MockCallerResolver) Handle(ctx context.Context, query queries.GetCallerQuery) (queries.GetCallerQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCallerQueryResponse), args.Error(1)
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, subject string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func newAuthEcho(t *testing.T, resolver CallerResolver, ops ...services.Operation) *echo.Echo {
	t.Helper()
	auth, err := NewAuthenticator(testSecret, resolver)
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(discardLogger())
	e.GET("/whoami", func(c echo.Context) error {
		caller := callerFrom(c)
		return c.JSON(http.StatusOK, map[string]any{"id": caller.ID.String(), "roles": caller.Roles.String()})
	}, auth.Middleware(), requireAny(services.NewAccessPolicy(), ops...))
	return e
}

func call(e *echo.Echo, token string) (*httptest.ResponseRecorder, Error) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body Error
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestAuthenticator_ResolvesCaller(t *testing.T) {
	id := kernel.NewUUID()
	resolver := &MockCallerResolver{}
	resolver.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCallerQuery) bool {
		return q.UserID() == id
	})).Return(queries.GetCallerQueryResponse{
		Caller:   user.NewCaller(id, user.RoleCustomer),
		Username: "ada",
	}, nil).Once()

	rec, _ := call(newAuthEcho(t, resolver, services.OpPlaceOrder),
		signToken(t, jwt.SigningMethodHS256, []byte(testSecret), id.String(), time.Now().Add(time.Hour)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
	resolver.AssertExpectations(t)
}

func TestAuthenticator_RejectsBadTokens(t *testing.T) {
	id := kernel.NewUUID().String()
	hour := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other"), id, hour)},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), id, time.Now().Add(-time.Minute))},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), id, hour)},
		{"unsigned", signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, id, hour)},
		{"subject is not a uuid", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "42", hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &MockCallerResolver{}

			rec, body := call(newAuthEcho(t, resolver), tt.token)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, KindUnauthenticated, body.Kind)
			resolver.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthenticator_UnknownUserIsUnauthenticated(t *testing.T) {
	id := kernel.NewUUID()
	resolver := &MockCallerResolver{}
	resolver.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetCallerQueryResponse{}, errs.NewObjectNotFoundError("user", id)).Once()

	rec, body := call(newAuthEcho(t, resolver),
		signToken(t, jwt.SigningMethodHS256, []byte(testSecret), id.String(), time.Now().Add(time.Hour)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, KindUnauthenticated, body.Kind)
}

func TestAuthenticator_DirectoryFailureIsInternal(t *testing.T) {
	id := kernel.NewUUID()
	resolver := &MockCallerResolver{}
	resolver.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetCallerQueryResponse{}, errors.New("db down")).Once()

	rec, body := call(newAuthEcho(t, resolver),
		signToken(t, jwt.SigningMethodHS256, []byte(testSecret), id.String(), time.Now().Add(time.Hour)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, KindInternal, body.Kind)
}

func TestRequireAny(t *testing.T) {
	id := kernel.NewUUID()
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), id.String(), time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		roles []user.Role
		ops   []services.Operation
		code  int
	}{
		{"customer may place orders", []user.Role{user.RoleCustomer}, []services.Operation{services.OpPlaceOrder}, http.StatusOK},
		{"manager may not place orders", []user.Role{user.RoleManager}, []services.Operation{services.OpPlaceOrder}, http.StatusForbidden},
		{"no roles", nil, []services.Operation{services.OpBrowseCatalog}, http.StatusForbidden},
		{"crew passes either-op route", []user.Role{user.RoleDeliveryCrew}, []services.Operation{services.OpUpdateOrderStatus, services.OpAssignCrew}, http.StatusOK},
		{"manager passes either-op route", []user.Role{user.RoleManager}, []services.Operation{services.OpUpdateOrderStatus, services.OpAssignCrew}, http.StatusOK},
		{"customer fails either-op route", []user.Role{user.RoleCustomer}, []services.Operation{services.OpUpdateOrderStatus, services.OpAssignCrew}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &MockCallerResolver{}
			resolver.On("Handle", mock.Anything, mock.Anything).
				Return(queries.GetCallerQueryResponse{Caller: user.NewCaller(id, tt.roles...)}, nil)

			rec, body := call(newAuthEcho(t, resolver, tt.ops...), token)

			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusForbidden {
				assert.Equal(t, KindUnauthorized, body.Kind)
			}
		})
	}
}

func TestNewAuthenticator_RequiresSecret(t *testing.T) {
	_, err := NewAuthenticator("", &MockCallerResolver{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
