package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sourceplane/taskrun/internal/planner"
	"github.com/sourceplane/taskrun/internal/registry"
	"github.com/sourceplane/taskrun/internal/runner"
)

// ErrNoDefaultTarget marks an empty request against a taskfile that
// configures no default target.
var ErrNoDefaultTarget = errors.New("no targets requested and no default target configured")

// State tracks where one invocation is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StatePlanning
	StateExecuting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlanning:
		return "planning"
	case StateExecuting:
		return "executing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Engine drives one invocation: plan the requested targets against the
// registry, then execute the plan strictly sequentially. The registry
// is read-only; the engine owns only its own state and plan.
type Engine struct {
	reg           *registry.Registry
	defaultTarget string
	runner        *runner.Runner
	out           io.Writer
	state         State
}

func New(reg *registry.Registry, defaultTarget string, r *runner.Runner, out io.Writer) *Engine {
	return &Engine{
		reg:           reg,
		defaultTarget: defaultTarget,
		runner:        r,
		out:           out,
		state:         StateIdle,
	}
}

// State returns the engine's current lifecycle state
func (e *Engine) State() State {
	return e.state
}

// Run plans and executes the requested targets. An empty request selects
// the default target. The full plan is validated before the first
// subprocess starts; planning failures execute zero commands. The first
// failing target aborts every remaining planned target. Completed
// targets' side effects are never rolled back.
func (e *Engine) Run(ctx context.Context, requested []string) error {
	e.state = StatePlanning

	if len(requested) == 0 {
		if e.defaultTarget == "" {
			e.state = StateFailed
			return ErrNoDefaultTarget
		}
		requested = []string{e.defaultTarget}
	}

	plan, err := planner.Plan(e.reg, requested)
	if err != nil {
		e.state = StateFailed
		return err
	}

	e.state = StateExecuting
	for i, name := range plan.Order {
		task, err := e.reg.Lookup(name)
		if err != nil {
			e.state = StateFailed
			return err
		}

		fmt.Fprintf(e.out, "→ %s (%d/%d)\n", name, i+1, len(plan.Order))
		if err := e.runner.ExecuteTask(ctx, task); err != nil {
			e.state = StateFailed
			return err
		}
	}

	e.state = StateDone
	return nil
}
