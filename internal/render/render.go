package render

import (
	"fmt"
	"strings"

	"github.com/sourceplane/taskrun/internal/model"
	"github.com/sourceplane/taskrun/internal/registry"
)

// Plan returns a human-readable view of an execution order: each target
// in sequence with its deps and commands.
func Plan(reg *registry.Registry, plan *model.Plan) string {
	if len(plan.Order) == 0 {
		return "No targets in plan\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Execution order (%d targets):\n", len(plan.Order))
	for i, name := range plan.Order {
		task, err := reg.Lookup(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, name)
		if len(task.Deps) > 0 {
			fmt.Fprintf(&sb, "   deps: %s\n", strings.Join(task.Deps, ", "))
		}
		for _, command := range task.Commands {
			fmt.Fprintf(&sb, "   $ %s\n", command)
		}
	}
	return sb.String()
}

// TaskList returns a listing of every registered target in declaration
// order, with descriptions where declared. Zero-command targets are
// marked as aggregates.
func TaskList(reg *registry.Registry, defaultTarget string) string {
	names := reg.Names()
	if len(names) == 0 {
		return "No targets defined\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Targets (%d):\n", len(names))
	for _, name := range names {
		task, err := reg.Lookup(name)
		if err != nil {
			continue
		}

		marker := " "
		if name == defaultTarget {
			marker = "*"
		}

		line := fmt.Sprintf("%s %s", marker, name)
		if len(task.Commands) == 0 && len(task.Deps) > 0 {
			line += " (aggregate)"
		}
		if task.Description != "" {
			line += ": " + task.Description
		}
		sb.WriteString(line + "\n")
	}
	if defaultTarget != "" {
		sb.WriteString("\n* = default target\n")
	}
	return sb.String()
}
