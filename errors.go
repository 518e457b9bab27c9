package modelstate

import "errors"

// ErrTooManyErrors is the sentinel recorded against the root key once the
// error budget is exhausted. Its presence makes the whole dictionary Invalid.
var ErrTooManyErrors = errors.New("the maximum number of allowed model errors has been reached")

// ErrKeyExists is returned by Add when the key already has a recorded entry.
var ErrKeyExists = errors.New("an entry is already recorded for the key")

// ErrFieldInvalid is returned by MarkFieldValid and MarkFieldSkipped when the
// field already has recorded errors; invalid fields cannot be silently
// upgraded.
var ErrFieldInvalid = errors.New("field has recorded errors and cannot be marked valid or skipped")
