package modelstate

// Package modelstate tracks, per named field, the outcome of binding an
// external input value: the raw value received, the errors produced, and the
// aggregate validity of a field, a sub-object or the whole model.
//
// - Fields are addressed by path keys ("Person.Address[0].Street") mirroring
//   object/array nesting; the backing trie matches keys case-insensitively.
// - Entries are recorded lazily; intermediate nodes exist only to index their
//   descendants and never show up in enumeration, containment or counts.
// - The total number of recorded errors is capped (default 200); once the cap
//   is hit a single too-many-errors sentinel is attached at the root key and
//   further errors are dropped.
//
// Design policy:
// - Keep only public APIs in the root package; the path trie lives under
//   internal/pathtrie.
// - Rendering of error reports is under report/, framework adapters under
//   middleware/.
// - A Dictionary belongs to one bind/validate cycle. It is not safe for
//   concurrent use, and mutating it while ranging over it is undefined.
//
// Typical usage:
//
//	ms := modelstate.New()
//	ms.SetValue("Person.Age", "abc", "abc")
//	ms.AddError("Person.Age", "The value 'abc' is not valid for Age.")
//	if !ms.IsValid() {
//		payload, _ := report.JSON(ms)
//		...
//	}
