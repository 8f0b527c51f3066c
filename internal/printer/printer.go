// Package printer renders evaluation results for people.
package printer

import (
	"minilisp/internal/object"
)

// Render returns the user-facing text for a result. Numbers, booleans and
// symbols print plainly; everything else falls back to its debug form.
func Render(e object.Expr) string {
	switch e := e.(type) {
	case object.Number:
		return object.FormatNumber(e.Value)
	case object.Bool:
		if e.Value {
			return "true"
		}
		return "false"
	case object.Symbol:
		return e.Name
	case nil:
		return ""
	default:
		return e.Inspect()
	}
}

// RenderError formats a failure the way the REPL shows it.
func RenderError(err error) string {
	return "error: " + err.Error()
}
