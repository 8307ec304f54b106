// File: internal/analyzer/errors.go
package analyzer

import "fmt"

// ValidationError reports a rejected parameter update. It carries the
// parameter name and the permitted closed interval so callers can surface
// the bound directly to the operator.
type ValidationError struct {
	Name  string
	Value float64
	Bound Bound
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parameter %q: value %g outside permitted range [%g, %g]",
		e.Name, e.Value, e.Bound.Min, e.Bound.Max)
}
