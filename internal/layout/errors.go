package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is matched by every ConstructionError via errors.Is.
var ErrInvalidDimension = errors.New("invalid dimension")

// ConstructionError reports invalid arguments passed to a Dimension
// constructor. It is raised before any geometry is touched and is never
// recovered by the engine.
type ConstructionError struct {
	Kind   Kind   // Dimension kind being built
	Field  string // "value", "minimum" or "maximum"
	Value  any    // Offending argument
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s %s=%v: %s", ErrInvalidDimension, e.Kind, e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidDimension.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrInvalidDimension
}
