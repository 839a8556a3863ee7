package http

import (
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

func pathRole(c echo.Context) (user.Role, error) {
	var name string
	err := runtime.BindStyledParameterWithOptions("simple", "role", c.Param("role"), &name, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Required:      true,
	})
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("role", err)
	}
	return user.ParseRole(name)
}

func queryParam[T any](c echo.Context, name string, dest **T) error {
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

func menuItemFilters(c echo.Context) (queries.MenuItemFilters, error) {
	var (
		f     queries.MenuItemFilters
		price *string
	)
	if err := queryParam(c, "title", &f.Title); err != nil {
		return f, err
	}
	if err := queryParam(c, "price", &price); err != nil {
		return f, err
	}
	if err := queryParam(c, "category", &f.Category); err != nil {
		return f, err
	}
	if err := queryParam(c, "featured", &f.Featured); err != nil {
		return f, err
	}
	if price != nil {
		ceiling, err := kernel.MoneyFromString(*price)
		if err != nil {
			return f, errs.NewValueIsInvalidErrorWithCause("price", err)
		}
		f.PriceCeiling = &ceiling
	}
	return f, nil
}

func orderFilters(c echo.Context) (queries.OrderFilters, error) {
	var (
		f     queries.OrderFilters
		date  *openapi_types.Date
		total *string
		owner *openapi_types.UUID
		crew  *openapi_types.UUID
	)
	if err := queryParam(c, "date", &date); err != nil {
		return queries.OrderFilters{}, err
	}
	if err := queryParam(c, "status", &f.Delivered); err != nil {
		return queries.OrderFilters{}, err
	}
	if err := queryParam(c, "total", &total); err != nil {
		return queries.OrderFilters{}, err
	}
	if err := queryParam(c, "user", &owner); err != nil {
		return queries.OrderFilters{}, err
	}
	if err := queryParam(c, "delivery_crew", &crew); err != nil {
		return queries.OrderFilters{}, err
	}

	if date != nil {
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		f.Date = &day
	}
	if total != nil {
		ceiling, err := kernel.MoneyFromString(*total)
		if err != nil {
			return queries.OrderFilters{}, errs.NewValueIsInvalidErrorWithCause("total", err)
		}
		f.TotalCeiling = &ceiling
	}
	var err error
	if f.UserID, err = optionalUUID(owner); err != nil {
		return queries.OrderFilters{}, err
	}
	if f.CrewID, err = optionalUUID(crew); err != nil {
		return queries.OrderFilters{}, err
	}
	return f, nil
}

func optionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &u, nil
}
