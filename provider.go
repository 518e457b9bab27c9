package modelstate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BoundValue is what a value provider supplies for a key: zero, one or many
// raw string values in submission order.
type BoundValue struct {
	Values []string
}

// First returns the first value, or "" when none is present.
func (v BoundValue) First() string {
	if len(v.Values) == 0 {
		return ""
	}
	return v.Values[0]
}

// String returns the display form: the single value as-is, or the values
// comma-joined.
func (v BoundValue) String() string {
	switch len(v.Values) {
	case 0:
		return ""
	case 1:
		return v.Values[0]
	default:
		return strings.Join(v.Values, ",")
	}
}

// ValueProvider supplies raw bound values by key. Implementations typically
// wrap a query string, a form body or route values.
type ValueProvider interface {
	// Value returns the bound value for key and whether one was present.
	Value(key string) (BoundValue, bool)
}

// MessageProvider formats field display names and the messages substituted
// for format/overflow-class binder failures.
type MessageProvider interface {
	// DisplayName returns a human-readable name for a field key.
	DisplayName(key string) string
	// InvalidValueMessage formats the message recorded in place of a
	// format/overflow failure. attemptedValue is "" when no value was
	// recorded for the field.
	InvalidValueMessage(name, attemptedValue string) string
}

// DefaultMessages is the MessageProvider used when Options.Messages is nil.
// The display name is the last path segment of the key.
var DefaultMessages MessageProvider = defaultMessages{}

type defaultMessages struct{}

func (defaultMessages) DisplayName(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}

func (defaultMessages) InvalidValueMessage(name, attemptedValue string) string {
	if attemptedValue == "" {
		return fmt.Sprintf("The supplied value is invalid for %s.", name)
	}
	return fmt.Sprintf("The value '%s' is not valid for %s.", attemptedValue, name)
}

// isFormatError reports whether err is a format/overflow-class failure, the
// kind a binder produces when input text does not convert to the target type.
// strconv's syntax and range errors (wrapped by *strconv.NumError) are the
// canonical cases.
func isFormatError(err error) bool {
	return errors.Is(err, strconv.ErrSyntax) || errors.Is(err, strconv.ErrRange)
}
