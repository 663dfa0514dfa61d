package frame

import (
	"errors"
	"fmt"
)

// Domain errors for model construction and solution.
var (
	// ErrSingularSystem indicates the reduced stiffness matrix is singular or
	// too ill-conditioned to solve (the structure is unstable or underconstrained).
	ErrSingularSystem = errors.New("frame: singular stiffness matrix (structure is unstable)")

	// ErrUnsolved indicates a result was requested before a successful Solve.
	ErrUnsolved = errors.New("frame: model has not been solved")

	// ErrSolved indicates an attempt to modify a model that was already solved.
	ErrSolved = errors.New("frame: model already solved")

	// ErrInvalidReference indicates a node or element id that does not exist.
	ErrInvalidReference = errors.New("frame: invalid reference")

	// ErrInvalidProperty indicates a non-positive E, A or I.
	ErrInvalidProperty = errors.New("frame: invalid element property")

	// ErrZeroLength indicates an element whose two nodes coincide.
	ErrZeroLength = errors.New("frame: zero-length element")
)

// ReferenceError reports which id failed to resolve.
type ReferenceError struct {
	Kind string // "node" or "element"
	ID   int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("frame: %s %d does not exist", e.Kind, e.ID)
}

func (e *ReferenceError) Unwrap() error {
	return ErrInvalidReference
}
