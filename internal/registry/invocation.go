package registry

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapprep/pkg/core"
)

// ErrMissingParam is returned when an operation asks for a parameter that
// was never resolved.
var ErrMissingParam = errors.New("missing parameter")

// Invocation carries the decoded input and resolved parameters of one run.
type Invocation struct {
	Values []core.Value          // Decoded VALUES, for InputArray operations
	Text   string                // Raw TEXT, for InputText operations
	Params map[string]core.Value // Resolved parameters keyed by Param.Name
}

// Value returns a resolved parameter.
func (inv Invocation) Value(name string) (core.Value, bool) {
	v, ok := inv.Params[name]
	return v, ok
}

// Float returns a resolved numeric parameter as float64.
func (inv Invocation) Float(name string) (float64, error) {
	v, ok := inv.Params[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	f, ok := v.Float64()
	if !ok {
		return 0, fmt.Errorf("parameter %s: %s is %w", name, v.Repr(), core.ErrNotNumeric)
	}
	return f, nil
}

// Int returns an optional integer parameter. ok is false when the
// parameter was not supplied.
func (inv Invocation) Int(name string) (n int64, ok bool, err error) {
	v, present := inv.Params[name]
	if !present {
		return 0, false, nil
	}
	if i, isInt := v.AsInt(); isInt {
		return i, true, nil
	}
	return 0, false, fmt.Errorf("parameter %s: %s is not an integer", name, v.Repr())
}

// List returns an optional list parameter, empty when not supplied.
func (inv Invocation) List(name string) ([]core.Value, error) {
	v, present := inv.Params[name]
	if !present {
		return nil, nil
	}
	items, ok := v.AsList()
	if !ok {
		return nil, fmt.Errorf("parameter %s: %s is %w", name, v.Repr(), core.ErrNotList)
	}
	return items, nil
}
