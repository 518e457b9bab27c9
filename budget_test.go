package modelstate_test

import (
	"errors"
	"testing"

	"github.com/reoring/modelstate"
)

func TestErrorBudget_SentinelRecordedOnceAtRoot(t *testing.T) {
	ms := modelstate.New(modelstate.Options{MaxAllowedErrors: 3})

	if !ms.TryAddError("a", "one") {
		t.Fatalf("first error dropped")
	}
	if !ms.TryAddError("b", "two") {
		t.Fatalf("second error dropped")
	}
	// third attempt crosses the cap: dropped, sentinel recorded instead
	if ms.TryAddError("c", "three") {
		t.Fatalf("third error recorded past the budget")
	}

	if ms.ErrorCount() != 3 {
		t.Errorf("ErrorCount = %d, want 3 (two errors + sentinel)", ms.ErrorCount())
	}
	if !ms.HasReachedMaxErrors() {
		t.Errorf("HasReachedMaxErrors = false")
	}

	root, ok := ms.Get("")
	if !ok {
		t.Fatalf("no sentinel entry at the root key")
	}
	if len(root.Errors) != 1 || !errors.Is(root.Errors[0].Err, modelstate.ErrTooManyErrors) {
		t.Fatalf("root entry = %+v, want single ErrTooManyErrors", root)
	}
	if root.State != modelstate.Invalid {
		t.Errorf("root state = %v, want invalid", root.State)
	}
	if _, ok := ms.Get("c"); ok {
		t.Errorf("dropped error still materialized an entry for c")
	}
}

func TestErrorBudget_FurtherAttemptsAreSilentlyDropped(t *testing.T) {
	ms := modelstate.New(modelstate.Options{MaxAllowedErrors: 3})
	ms.AddError("a", "one")
	ms.AddError("b", "two")
	ms.AddError("c", "three") // sentinel

	countBefore := ms.ErrorCount()
	lenBefore := ms.Len()

	if ms.TryAddError("d", "four") {
		t.Fatalf("error recorded after the sentinel")
	}
	if ms.TryAddException("e", errors.New("boom")) {
		t.Fatalf("exception recorded after the sentinel")
	}
	if ms.ErrorCount() != countBefore || ms.Len() != lenBefore {
		t.Fatalf("dropped attempts mutated the dictionary: errors %d->%d len %d->%d",
			countBefore, ms.ErrorCount(), lenBefore, ms.Len())
	}
}

func TestErrorBudget_SentinelMakesWholeStoreInvalid(t *testing.T) {
	ms := modelstate.New(modelstate.Options{MaxAllowedErrors: 1})
	ms.MarkFieldValid("fine")

	ms.AddError("any", "bad") // budget of 1: dropped, sentinel only

	if ms.IsValid() {
		t.Fatalf("dictionary valid despite the sentinel")
	}
	if got := ms.ValidationState(); got != modelstate.Invalid {
		t.Fatalf("ValidationState = %v, want invalid", got)
	}
	if _, ok := ms.Get("any"); ok {
		t.Fatalf("dropped error materialized an entry")
	}
}

func TestErrorBudget_ClearValidationStateReleasesHeadroomButKeepsLatch(t *testing.T) {
	ms := modelstate.New(modelstate.Options{MaxAllowedErrors: 3})
	ms.AddError("a", "one")
	ms.AddError("b", "two")
	ms.AddError("c", "three") // dropped, sentinel recorded at the root
	if ms.ErrorCount() != 3 {
		t.Fatalf("ErrorCount = %d, want 3 before clearing", ms.ErrorCount())
	}

	ms.ClearValidationState("")

	if ms.ErrorCount() != 0 {
		t.Fatalf("ErrorCount = %d after clear, want 0", ms.ErrorCount())
	}
	if !ms.TryAddError("a", "again") || !ms.TryAddError("b", "again") {
		t.Fatalf("recording still blocked after clear released the headroom")
	}

	// the budget is crossed a second time: the attempt is dropped, but the
	// one-shot latch prevents another sentinel
	if ms.TryAddError("c", "again") {
		t.Fatalf("error recorded past the budget after clear")
	}
	root, ok := ms.Get("")
	if !ok {
		t.Fatalf("root entry from the first sentinel gone")
	}
	if len(root.Errors) != 0 {
		t.Fatalf("second sentinel recorded at the root: %v", root.Errors)
	}
	if ms.ErrorCount() != 2 {
		t.Fatalf("ErrorCount = %d, want 2 (dropped attempt not counted)", ms.ErrorCount())
	}
}

func TestErrorBudget_SetMaxAllowedErrors(t *testing.T) {
	ms := modelstate.New()
	if ms.MaxAllowedErrors() != modelstate.DefaultMaxAllowedErrors {
		t.Fatalf("default cap = %d, want %d", ms.MaxAllowedErrors(), modelstate.DefaultMaxAllowedErrors)
	}
	ms.SetMaxAllowedErrors(5)
	if ms.MaxAllowedErrors() != 5 {
		t.Fatalf("cap = %d, want 5", ms.MaxAllowedErrors())
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on negative cap")
		}
	}()
	ms.SetMaxAllowedErrors(-1)
}
