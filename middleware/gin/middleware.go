package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/modelstate"
	"github.com/reoring/modelstate/middleware"
)

// ModelState attaches a fresh Dictionary to each request, runs the handler
// chain, and when the handlers left the dictionary invalid responds 422 with
// the error payload. Handlers reach the dictionary via GetState.
func ModelState(opts ...modelstate.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		ms := modelstate.New(opts...)
		ctx := middleware.ContextWithState(c.Request.Context(), ms)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		if !ms.IsValid() && !c.Writer.Written() {
			c.JSON(http.StatusUnprocessableEntity, middleware.ErrorPayload(ms))
		}
	}
}

// GetState fetches the request's Dictionary from gin.Context.
func GetState(c *gin.Context) (*modelstate.Dictionary, bool) {
	return middleware.StateFromContext(c.Request.Context())
}

// BindQuery records every query parameter of the request into ms, so the
// attempted values are available when validation later fails.
func BindQuery(c *gin.Context, ms *modelstate.Dictionary) {
	query := c.Request.URL.Query()
	values := middleware.FormValues(query)
	for key := range query {
		ms.BindValue(key, values)
	}
}
