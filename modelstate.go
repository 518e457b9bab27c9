package modelstate

import (
	"fmt"
	"iter"

	"github.com/reoring/modelstate/internal/pathtrie"
)

// Dictionary records, per field key, the outcome of model binding: the bound
// value, the recorded errors and the validation state. It is the write
// surface for a binder/validator pair and the read surface for consumers
// asking "is this field (or sub-object, or the whole model) valid?".
//
// Keys resolve case-insensitively: "Person.Name" and "person.name" address
// the same entry, which keeps the casing it was first recorded under.
// Enumeration yields shallow entries before their descendants (see
// WalkPrefix).
//
// A Dictionary is request-scoped and single-threaded. Mutating it while
// ranging over one of its sequences is undefined.
type Dictionary struct {
	trie     *pathtrie.Trie[Entry]
	messages MessageProvider

	count               int // visible entries
	errorCount          int
	maxAllowedErrors    int
	hasRecordedMaxError bool
}

// New returns an empty Dictionary. At most one Options value is applied.
func New(opts ...Options) *Dictionary {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.MaxAllowedErrors < 0 {
		panic("modelstate.New: MaxAllowedErrors must not be negative")
	}
	maxErrors := opt.MaxAllowedErrors
	if maxErrors == 0 {
		maxErrors = DefaultMaxAllowedErrors
	}
	messages := opt.Messages
	if messages == nil {
		messages = DefaultMessages
	}
	return &Dictionary{
		trie:             pathtrie.New[Entry](),
		messages:         messages,
		maxAllowedErrors: maxErrors,
	}
}

func (d *Dictionary) markVisible(n *pathtrie.Node[Entry]) {
	if !n.Visible() {
		n.SetVisible(true)
		d.count++
	}
}

// ---- error recording ----

// AddError records a free-text error against key and marks the field
// Invalid. When the error budget is exhausted the error is dropped and the
// one-shot ErrTooManyErrors sentinel is recorded at the root key instead;
// use TryAddError to observe which happened.
func (d *Dictionary) AddError(key, message string) { d.TryAddError(key, message) }

// AddErrorf records a formatted free-text error against key.
func (d *Dictionary) AddErrorf(key, format string, args ...any) {
	d.TryAddError(key, fmt.Sprintf(format, args...))
}

// TryAddError records a free-text error against key. It reports false when
// the error budget dropped the error.
func (d *Dictionary) TryAddError(key, message string) bool {
	return d.tryRecord(key, ModelError{Message: message})
}

// AddException records err against key. See TryAddException.
func (d *Dictionary) AddException(key string, err error) { d.TryAddException(key, err) }

// TryAddException records err against key and marks the field Invalid.
// Format/overflow-class failures (strconv.ErrSyntax / strconv.ErrRange) are
// not recorded verbatim: they are rewritten into the message provider's
// invalid-value message, using the attempted value already recorded for the
// key when one exists. It reports false when the error budget dropped the
// error. A nil err is a caller bug and panics.
func (d *Dictionary) TryAddException(key string, err error) bool {
	if err == nil {
		panic("modelstate.TryAddException: err must not be nil")
	}
	if isFormatError(err) {
		name := d.messages.DisplayName(key)
		attempted := ""
		if e, ok := d.Get(key); ok {
			attempted = e.AttemptedValue
		}
		return d.tryRecord(key, ModelError{Message: d.messages.InvalidValueMessage(name, attempted)})
	}
	return d.tryRecord(key, ModelError{Err: err})
}

// tryRecord enforces the error budget. Once errorCount crosses
// maxAllowedErrors-1 the caller's error is dropped; the first time that
// happens the sentinel is attached at the root key, counted once, and the
// latch is set so it is never recorded again.
func (d *Dictionary) tryRecord(key string, me ModelError) bool {
	if d.errorCount >= d.maxAllowedErrors-1 {
		if !d.hasRecordedMaxError {
			d.hasRecordedMaxError = true
			root := d.trie.Root()
			d.markVisible(root)
			root.Value.Errors = append(root.Value.Errors, ModelError{Err: ErrTooManyErrors})
			root.Value.State = Invalid
			d.errorCount++
		}
		return false
	}
	n := d.trie.GetOrCreate(key)
	d.markVisible(n)
	n.Value.Errors = append(n.Value.Errors, me)
	n.Value.State = Invalid
	d.errorCount++
	return true
}

// ---- value recording and marks ----

// SetValue records the bound raw value and its display form against key.
func (d *Dictionary) SetValue(key string, rawValue any, attemptedValue string) {
	n := d.trie.GetOrCreate(key)
	d.markVisible(n)
	n.Value.RawValue = rawValue
	n.Value.AttemptedValue = attemptedValue
}

// SetValueFrom records a value provider result against key. A single value
// is kept verbatim as the raw value; multiple values are kept as a copy of
// the ordered collection.
func (d *Dictionary) SetValueFrom(key string, v BoundValue) {
	var raw any
	switch len(v.Values) {
	case 0:
	case 1:
		raw = v.Values[0]
	default:
		raw = append([]string(nil), v.Values...)
	}
	d.SetValue(key, raw, v.String())
}

// BindValue copies the provider's value for key into the dictionary. It
// reports whether the provider had a value; when it does not, nothing is
// recorded.
func (d *Dictionary) BindValue(key string, p ValueProvider) bool {
	v, ok := p.Value(key)
	if !ok {
		return false
	}
	d.SetValueFrom(key, v)
	return true
}

// MarkFieldValid records that validation ran and passed for key. A field
// with recorded errors cannot be upgraded; in that case ErrFieldInvalid is
// returned and the entry is left untouched.
func (d *Dictionary) MarkFieldValid(key string) error {
	return d.markField(key, Valid)
}

// MarkFieldSkipped records that validation was deliberately skipped for key.
// Fails with ErrFieldInvalid when the field already has recorded errors.
func (d *Dictionary) MarkFieldSkipped(key string) error {
	return d.markField(key, Skipped)
}

func (d *Dictionary) markField(key string, state ValidationState) error {
	n := d.trie.GetOrCreate(key)
	if n.Visible() && n.Value.State == Invalid {
		return fmt.Errorf("%w: %q", ErrFieldInvalid, key)
	}
	d.markVisible(n)
	n.Value.State = state
	return nil
}

// ---- collection surface ----

// Get returns the entry recorded for key. Nodes that only index descendants
// are not entries; Get reports false for them. The returned pointer stays
// valid for the lifetime of the dictionary and mutating it mutates the
// recorded entry.
func (d *Dictionary) Get(key string) (*Entry, bool) {
	n := d.trie.Find(key)
	if n == nil || !n.Visible() {
		return nil, false
	}
	return &n.Value, true
}

// Set copies entry's payload into the node for key, overwriting whatever was
// there, and forces the entry visible. The error count is adjusted by the
// difference; Set bypasses the budget sentinel. A nil entry is a caller bug
// and panics.
func (d *Dictionary) Set(key string, entry *Entry) {
	if entry == nil {
		panic("modelstate.Set: entry must not be nil")
	}
	n := d.trie.GetOrCreate(key)
	d.markVisible(n)
	d.errorCount += len(entry.Errors) - len(n.Value.Errors)
	n.Value.copyFrom(entry)
}

// Add records entry under key, failing with ErrKeyExists when the key
// already has a recorded entry.
func (d *Dictionary) Add(key string, entry *Entry) error {
	if _, ok := d.Get(key); ok {
		return fmt.Errorf("%w: %q", ErrKeyExists, key)
	}
	d.Set(key, entry)
	return nil
}

// ContainsKey reports whether an entry was recorded for exactly key.
func (d *Dictionary) ContainsKey(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Remove discards the entry recorded for key and reports whether one
// existed. The node itself stays in the trie, so entries recorded under
// longer keys remain addressable.
func (d *Dictionary) Remove(key string) bool {
	n := d.trie.Find(key)
	if n == nil || !n.Visible() {
		return false
	}
	d.count--
	d.errorCount -= len(n.Value.Errors)
	n.Reset()
	return true
}

// Merge copies every entry of other into d, overwriting by key, in other's
// enumeration order. Entries are copied, never shared. Merging nil or the
// dictionary itself is a no-op.
func (d *Dictionary) Merge(other *Dictionary) {
	if other == nil || other == d {
		return
	}
	for key, e := range other.All() {
		d.Set(key, e)
	}
}

// Clear empties the dictionary: every entry, both counters and the
// too-many-errors latch. The root node is reset in place, never replaced.
func (d *Dictionary) Clear() {
	d.count = 0
	d.errorCount = 0
	d.hasRecordedMaxError = false
	root := d.trie.Root()
	root.Reset()
	root.ClearChildren()
}

// ClearValidationState clears the recorded errors and resets the state to
// Unvalidated for every entry at or beneath key, leaving bound values and
// visibility untouched. The empty key clears every entry in the dictionary.
func (d *Dictionary) ClearValidationState(key string) {
	for _, n := range d.trie.WalkPrefix(key) {
		d.errorCount -= len(n.Value.Errors)
		n.Value.Errors = nil
		n.Value.State = Unvalidated
	}
}

// Len returns the number of recorded entries.
func (d *Dictionary) Len() int { return d.count }

// ErrorCount returns the total number of recorded errors, the sentinel
// included once it has been recorded.
func (d *Dictionary) ErrorCount() int { return d.errorCount }

// ---- enumeration ----

// All returns every recorded entry keyed by full key. The sequence is lazy,
// restartable and yields shallow entries before their descendants.
func (d *Dictionary) All() iter.Seq2[string, *Entry] { return d.WalkPrefix("") }

// WalkPrefix returns the entries recorded at or beneath prefix: the entry at
// prefix itself first (when recorded), then descendants breadth-first in
// child-list order. Nodes that only index descendants are skipped while
// their recorded descendants are still surfaced.
func (d *Dictionary) WalkPrefix(prefix string) iter.Seq2[string, *Entry] {
	return func(yield func(string, *Entry) bool) {
		for key, n := range d.trie.WalkPrefix(prefix) {
			if !yield(key, &n.Value) {
				return
			}
		}
	}
}

// Keys returns the recorded keys in enumeration order.
func (d *Dictionary) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range d.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns the recorded entries in enumeration order.
func (d *Dictionary) Values() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range d.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// ---- validity ----

// ValidationState aggregates over the whole dictionary: Unvalidated when any
// entry is still Unvalidated, Invalid when any entry has errors, Valid
// otherwise (an empty dictionary is Valid). Skipped entries count as
// passing.
func (d *Dictionary) ValidationState() ValidationState {
	return d.aggregateState("", Valid)
}

// IsValid reports whether every recorded entry passed validation.
func (d *Dictionary) IsValid() bool { return d.ValidationState() == Valid }

// ValidationStateOf returns the state recorded for exactly key, or
// Unvalidated when no entry exists.
func (d *Dictionary) ValidationStateOf(key string) ValidationState {
	if e, ok := d.Get(key); ok {
		return e.State
	}
	return Unvalidated
}

// FieldValidationState aggregates over the entries at or beneath key. A key
// with no entries beneath it is Unvalidated.
func (d *Dictionary) FieldValidationState(key string) ValidationState {
	return d.aggregateState(key, Unvalidated)
}

// aggregateState folds the states under prefix. Unvalidated dominates and
// short-circuits; Invalid beats Valid; Skipped passes. An empty sequence
// yields the caller-supplied default.
func (d *Dictionary) aggregateState(prefix string, whenEmpty ValidationState) ValidationState {
	empty := true
	invalid := false
	for _, e := range d.WalkPrefix(prefix) {
		empty = false
		switch e.State {
		case Unvalidated:
			return Unvalidated
		case Invalid:
			invalid = true
		}
	}
	if empty {
		return whenEmpty
	}
	if invalid {
		return Invalid
	}
	return Valid
}

// ---- error budget ----

// MaxAllowedErrors returns the current error cap.
func (d *Dictionary) MaxAllowedErrors() int { return d.maxAllowedErrors }

// SetMaxAllowedErrors changes the error cap. Negative values are a caller
// bug and panic. Lowering the cap below the current error count does not
// retroactively drop recorded errors; it only affects future recording.
func (d *Dictionary) SetMaxAllowedErrors(n int) {
	if n < 0 {
		panic("modelstate.SetMaxAllowedErrors: n must not be negative")
	}
	d.maxAllowedErrors = n
}

// HasReachedMaxErrors reports whether the error budget is exhausted.
func (d *Dictionary) HasReachedMaxErrors() bool {
	return d.errorCount >= d.maxAllowedErrors
}
