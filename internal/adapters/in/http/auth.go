package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// CallerResolver maps an authenticated user id to its current role set.
type CallerResolver interface {
	Handle(ctx context.Context, query queries.GetCallerQuery) (queries.GetCallerQueryResponse, error)
}

// Authenticator verifies HS256 bearer tokens. The token subject is the user
// id; the roles come from the role directory on every request.
type Authenticator struct {
	secret   []byte
	resolver CallerResolver
}

func NewAuthenticator(secret string, resolver CallerResolver) (*Authenticator, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	return &Authenticator{secret: []byte(secret), resolver: resolver}, nil
}

// Middleware stores the resolved user.Caller in the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := a.subject(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}

			query, err := queries.NewGetCallerQuery(userID)
			if err != nil {
				return fmt.Errorf("%w: %w", errUnauthenticated, err)
			}
			resp, err := a.resolver.Handle(c.Request().Context(), query)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return fmt.Errorf("%w: unknown user", errUnauthenticated)
			}
			if err != nil {
				return err
			}

			c.Set(callerKey, resp.Caller)
			return next(c)
		}
	}
}

func (a *Authenticator) subject(header string) (kernel.UUID, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return kernel.UUID{}, fmt.Errorf("%w: missing bearer token", errUnauthenticated)
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: invalid token", errUnauthenticated)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: invalid subject", errUnauthenticated)
	}
	return id, nil
}

// requireAny rejects callers that may run none of ops. It runs before the
// request body is read.
func requireAny(policy services.AccessPolicy, ops ...services.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(ops) == 0 {
				return next(c)
			}
			caller := callerFrom(c)
			var err error
			for _, op := range ops {
				if err = policy.Authorize(caller, op); err == nil {
					return next(c)
				}
			}
			return err
		}
	}
}

func callerFrom(c echo.Context) user.Caller {
	caller, _ := c.Get(callerKey).(user.Caller)
	return caller
}
