package planner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCyclicDependency marks a dependency cycle reachable from a requested target.
var ErrCyclicDependency = errors.New("cyclic dependency")

// CycleError carries the traversal path that closed the cycle.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return ErrCyclicDependency.Error()
	}
	return fmt.Sprintf("%s: %s", ErrCyclicDependency.Error(), strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCyclicDependency }

func cycleError(path []string) error {
	return &CycleError{Path: path}
}
