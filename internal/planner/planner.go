package planner

import (
	"github.com/sourceplane/taskrun/internal/model"
	"github.com/sourceplane/taskrun/internal/registry"
)

// Plan computes the execution order for the requested targets.
//
// Each requested name is traversed depth-first, deps before the target
// itself, deps visited in their declaration order. A shared visited set
// deduplicates targets reachable through multiple paths, so every target
// appears in the order at most once per invocation. Requested names are
// planned left to right; a target already emitted by an earlier request
// is not repeated.
//
// A target encountered while still on the current traversal path is a
// back-edge and fails with ErrCyclicDependency. Any name missing from
// the registry fails with registry.ErrUnknownTarget before a single
// command runs.
func Plan(reg *registry.Registry, requested []string) (*model.Plan, error) {
	visited := make(map[string]bool)
	onPath := make(map[string]bool)
	order := make([]string, 0, reg.Len())

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		if visited[name] {
			return nil
		}
		if onPath[name] {
			return cycleError(append(path, name))
		}
		task, err := reg.Lookup(name)
		if err != nil {
			return err
		}

		onPath[name] = true
		for _, dep := range task.Deps {
			if err := visit(dep, append(path, name)); err != nil {
				return err
			}
		}
		delete(onPath, name)

		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range requested {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}

	return &model.Plan{Requested: requested, Order: order}, nil
}
