// Package middleware holds the framework-neutral plumbing shared by the
// echo and gin adapters: per-request Dictionary context storage and the
// error payload shape.
package middleware

import (
	"context"
	"net/url"

	"github.com/reoring/modelstate"
	"github.com/reoring/modelstate/report"
)

// ctxKeyState is the typed context key for the per-request Dictionary.
type ctxKeyState struct{}

// ContextWithState attaches a Dictionary to the context.
func ContextWithState(ctx context.Context, d *modelstate.Dictionary) context.Context {
	return context.WithValue(ctx, ctxKeyState{}, d)
}

// StateFromContext retrieves the request's Dictionary from context.
func StateFromContext(ctx context.Context) (*modelstate.Dictionary, bool) {
	d, ok := ctx.Value(ctxKeyState{}).(*modelstate.Dictionary)
	return d, ok
}

// ErrorPayload shapes the invalid fields of d for JSON responses.
func ErrorPayload(d *modelstate.Dictionary) map[string]any {
	return map[string]any{"errors": report.Invalid(d)}
}

// FormValues adapts url.Values (query strings, parsed form bodies) to
// modelstate.ValueProvider.
type FormValues url.Values

// Value returns the values bound under key, in submission order.
func (f FormValues) Value(key string) (modelstate.BoundValue, bool) {
	vs, ok := f[key]
	if !ok {
		return modelstate.BoundValue{}, false
	}
	return modelstate.BoundValue{Values: vs}, true
}
