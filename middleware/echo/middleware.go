package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/modelstate"
	"github.com/reoring/modelstate/middleware"
)

// ModelState attaches a fresh Dictionary to each request, runs the handler
// chain, and when the handler left the dictionary invalid responds 422 with
// the error payload. Handlers reach the dictionary via GetState.
func ModelState(opts ...modelstate.Options) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ms := modelstate.New(opts...)
			ctx := middleware.ContextWithState(c.Request().Context(), ms)
			c.SetRequest(c.Request().WithContext(ctx))
			if err := next(c); err != nil {
				return err
			}
			if !ms.IsValid() && !c.Response().Committed {
				return c.JSON(http.StatusUnprocessableEntity, middleware.ErrorPayload(ms))
			}
			return nil
		}
	}
}

// GetState fetches the request's Dictionary from echo.Context.
func GetState(c echo.Context) (*modelstate.Dictionary, bool) {
	return middleware.StateFromContext(c.Request().Context())
}

// BindQuery records every query parameter of the request into ms, so the
// attempted values are available when validation later fails.
func BindQuery(c echo.Context, ms *modelstate.Dictionary) {
	values := middleware.FormValues(c.QueryParams())
	for key := range c.QueryParams() {
		ms.BindValue(key, values)
	}
}
