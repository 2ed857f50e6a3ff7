package expand

import (
	"fmt"
	"sort"
	"strings"
)

// Table holds named string bindings and substitutes ${name} references
// inside arbitrary strings. Values may reference other bindings
// transitively; resolution recurses to a fixed point. A binding that
// transitively references itself is an error, not an infinite loop.
type Table struct {
	vars map[string]string
}

// NewTable creates an empty variable table
func NewTable() *Table {
	return &Table{vars: make(map[string]string)}
}

// Define stores a binding. Redefining a name overwrites the previous value.
func (t *Table) Define(name, raw string) {
	t.vars[name] = raw
}

// Names returns all defined names in sorted order
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.vars))
	for name := range t.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the fully substituted value of a binding.
func (t *Table) Resolve(name string) (string, error) {
	return t.resolve(name, make(map[string]bool), nil)
}

// Expand substitutes every ${name} reference in s, recursively. The
// sequence $$ produces a literal $; any other $ passes through untouched.
func (t *Table) Expand(s string) (string, error) {
	return t.expand(s, make(map[string]bool), nil)
}

func (t *Table) resolve(name string, visiting map[string]bool, chain []string) (string, error) {
	if visiting[name] {
		return "", circularError(append(chain, name))
	}
	raw, ok := t.vars[name]
	if !ok {
		return "", unresolvedError(name, chain)
	}
	visiting[name] = true
	defer delete(visiting, name)
	return t.expand(raw, visiting, append(chain, name))
}

func (t *Table) expand(s string, visiting map[string]bool, chain []string) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '$' {
			out.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '$' {
			out.WriteByte('$')
			i += 2
			continue
		}
		if i+1 >= len(s) || s[i+1] != '{' {
			out.WriteByte('$')
			i++
			continue
		}
		end := strings.IndexByte(s[i+2:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated variable reference in %q", s[i:])
		}
		name := s[i+2 : i+2+end]
		i += 2 + end + 1

		value, err := t.resolve(name, visiting, chain)
		if err != nil {
			return "", err
		}
		out.WriteString(value)
	}
	return out.String(), nil
}
