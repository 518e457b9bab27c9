// Package report renders a modelstate.Dictionary as a problem-report
// document, for JSON API responses or YAML tooling output.
package report

import (
	"errors"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/modelstate"
)

// Field is the rendered form of one recorded entry.
type Field struct {
	Key            string   `json:"key" yaml:"key"`
	AttemptedValue string   `json:"attemptedValue,omitempty" yaml:"attemptedValue,omitempty"`
	State          string   `json:"state" yaml:"state"`
	Messages       []string `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Document is the rendered form of a whole dictionary. Fields appear in the
// dictionary's enumeration order, shallow entries first.
type Document struct {
	Valid      bool    `json:"valid" yaml:"valid"`
	ErrorCount int     `json:"errorCount" yaml:"errorCount"`
	Fields     []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// genericMessage replaces exception-backed errors that carry no renderable
// message, so internal error text never leaks into payloads.
const genericMessage = "The input was not valid."

// Build renders every recorded entry of d.
func Build(d *modelstate.Dictionary) Document {
	doc := Document{
		Valid:      d.IsValid(),
		ErrorCount: d.ErrorCount(),
	}
	for key, e := range d.All() {
		f := Field{
			Key:            key,
			AttemptedValue: e.AttemptedValue,
			State:          e.State.String(),
		}
		for _, me := range e.Errors {
			f.Messages = append(f.Messages, renderMessage(me))
		}
		doc.Fields = append(doc.Fields, f)
	}
	return doc
}

// Invalid renders only the entries that failed validation, which is the
// usual shape for a 4xx response body.
func Invalid(d *modelstate.Dictionary) Document {
	doc := Document{
		Valid:      d.IsValid(),
		ErrorCount: d.ErrorCount(),
	}
	for key, e := range d.All() {
		if e.State != modelstate.Invalid {
			continue
		}
		f := Field{
			Key:            key,
			AttemptedValue: e.AttemptedValue,
			State:          e.State.String(),
		}
		for _, me := range e.Errors {
			f.Messages = append(f.Messages, renderMessage(me))
		}
		doc.Fields = append(doc.Fields, f)
	}
	return doc
}

func renderMessage(me modelstate.ModelError) string {
	if me.Message != "" {
		return me.Message
	}
	if errors.Is(me.Err, modelstate.ErrTooManyErrors) {
		return me.Err.Error()
	}
	return genericMessage
}

// JSON renders the full document as JSON.
func JSON(d *modelstate.Dictionary) ([]byte, error) {
	return json.Marshal(Build(d))
}

// YAML renders the full document as YAML.
func YAML(d *modelstate.Dictionary) ([]byte, error) {
	return yaml.Marshal(Build(d))
}
