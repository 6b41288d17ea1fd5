package catalog

import "fmt"

// Arguments is the validated subset of a caller's argument map: only keys the
// operation declares, and only keys the caller actually sent. Presence is
// meaningful. A key that exists maps to exactly what the caller sent, so
// false, 0 and "" survive binding; a key the caller omitted stays absent and
// later contributes nothing to the query string or body.
type Arguments map[string]any

// Has reports whether the caller supplied the parameter.
func (a Arguments) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// ValidationError reports a required parameter the caller did not supply.
type ValidationError struct {
	Tool  string
	Param string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required for %s", e.Param, e.Tool)
}

// Bind validates args against the operation's parameter spec and returns the
// bound argument set. Required parameters are checked for presence, not
// truthiness: an explicit false or 0 is a valid value. The first missing
// required parameter, in declaration order, is reported. Undeclared keys are
// dropped silently; value legality (enum membership, ranges) is left to the
// API.
func (op *Operation) Bind(args map[string]any) (Arguments, error) {
	params := op.Params()

	for _, p := range params {
		if !p.Required {
			continue
		}
		if _, ok := args[p.Name]; !ok {
			return nil, &ValidationError{Tool: op.Name, Param: p.Name}
		}
	}

	bound := make(Arguments, len(args))
	for _, p := range params {
		if v, ok := args[p.Name]; ok {
			bound[p.Name] = v
		}
	}
	return bound, nil
}
