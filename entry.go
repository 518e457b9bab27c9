package modelstate

// ModelError is one recorded binding or validation failure: either a
// free-text message or an underlying Go error. Exactly one side is set.
// Both kinds may be appended to the same entry and insertion order is kept.
type ModelError struct {
	Message string
	Err     error
}

// Entry is the state recorded for one field key.
type Entry struct {
	// RawValue is the value supplied by the value provider, verbatim. A
	// single value is kept as-is; multiple values are kept as the ordered
	// collection.
	RawValue any

	// AttemptedValue is the display form of RawValue, used when
	// formatting binder failure messages.
	AttemptedValue string

	// Errors holds the recorded errors in insertion order.
	Errors []ModelError

	// State is this entry's own validation state. Aggregation over a
	// sub-tree is the Dictionary's concern.
	State ValidationState
}

// copyFrom overwrites e's payload with a copy of src's. The error slice is
// copied so entries never share backing storage across dictionaries.
func (e *Entry) copyFrom(src *Entry) {
	e.RawValue = src.RawValue
	e.AttemptedValue = src.AttemptedValue
	e.Errors = append([]ModelError(nil), src.Errors...)
	e.State = src.State
}
