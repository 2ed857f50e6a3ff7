package registry

import (
	"errors"
	"fmt"

	"github.com/sourceplane/taskrun/internal/model"
)

// ErrUnknownTarget marks a lookup of a name that was never registered.
var ErrUnknownTarget = errors.New("unknown target")

// UnknownTargetError carries the missing target name.
type UnknownTargetError struct {
	Name string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownTarget.Error(), e.Name)
}

func (e *UnknownTargetError) Unwrap() error { return ErrUnknownTarget }

// Registry stores resolved task definitions keyed by name. Names are
// case-sensitive. It is constructed once at load time and read-only
// afterwards; planning and execution never mutate it.
type Registry struct {
	tasks map[string]*model.Task
	names []string
}

// New creates an empty registry
func New() *Registry {
	return &Registry{tasks: make(map[string]*model.Task)}
}

// Register adds a task definition. Re-registering a name overwrites the
// previous definition; the last declaration wins.
func (r *Registry) Register(task *model.Task) {
	if _, exists := r.tasks[task.Name]; !exists {
		r.names = append(r.names, task.Name)
	}
	r.tasks[task.Name] = task
}

// Lookup returns the task registered under name.
func (r *Registry) Lookup(name string) (*model.Task, error) {
	task, exists := r.tasks[name]
	if !exists {
		return nil, &UnknownTargetError{Name: name}
	}
	return task, nil
}

// Names returns all registered names in declaration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of registered tasks
func (r *Registry) Len() int {
	return len(r.tasks)
}
