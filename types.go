package modelstate

// ValidationState describes the validation outcome recorded for a field, or
// the aggregate over a sub-tree of fields.
type ValidationState int

const (
	// Unvalidated means a value was bound but no validator has run yet.
	Unvalidated ValidationState = iota
	// Invalid means at least one error was recorded.
	Invalid
	// Valid means validation ran and passed.
	Valid
	// Skipped means validation was deliberately not performed for the field.
	Skipped
)

func (s ValidationState) String() string {
	switch s {
	case Unvalidated:
		return "unvalidated"
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// DefaultMaxAllowedErrors is the error cap applied when Options leaves
// MaxAllowedErrors unset.
const DefaultMaxAllowedErrors = 200

// Options bundles Dictionary construction options.
type Options struct {
	// MaxAllowedErrors caps the total number of recorded errors, the
	// too-many-errors sentinel included. Zero means
	// DefaultMaxAllowedErrors; negative values are a caller bug and panic.
	MaxAllowedErrors int

	// Messages supplies display names and binder failure messages. Nil
	// means DefaultMessages.
	Messages MessageProvider
}
