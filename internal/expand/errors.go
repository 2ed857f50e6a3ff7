package expand

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolvedReference marks a reference to a name that was never defined.
	ErrUnresolvedReference = errors.New("unresolved variable reference")
	// ErrCircularReference marks a binding that transitively references itself.
	ErrCircularReference = errors.New("circular variable reference")
)

// RefError wraps variable resolution failures with the offending name
// and the resolution chain that led to it.
type RefError struct {
	Kind  error
	Name  string
	Chain []string
}

func (e *RefError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Name)
	}
	return fmt.Sprintf("%s: %s (via %s)", e.Kind.Error(), e.Name, strings.Join(e.Chain, " -> "))
}

func (e *RefError) Unwrap() error { return e.Kind }

func unresolvedError(name string, chain []string) error {
	return &RefError{Kind: ErrUnresolvedReference, Name: name, Chain: chain}
}

func circularError(chain []string) error {
	name := ""
	if len(chain) > 0 {
		name = chain[len(chain)-1]
	}
	return &RefError{Kind: ErrCircularReference, Name: name, Chain: chain}
}
