package loader

import (
	"fmt"
	"os"

	"github.com/sourceplane/taskrun/internal/expand"
	"github.com/sourceplane/taskrun/internal/model"
	"github.com/sourceplane/taskrun/internal/normalize"
	"github.com/sourceplane/taskrun/internal/registry"
	"github.com/sourceplane/taskrun/internal/schema"
	"gopkg.in/yaml.v3"
)

// Result is the immutable snapshot one invocation plans and executes
// against: the resolved registry plus the configured default target.
type Result struct {
	Metadata model.Metadata
	Registry *registry.Registry
	Default  string
}

// Load reads a taskfile, validates it against the embedded schema,
// resolves every variable binding to a fixed point and substitutes
// ${...} references inside task names, deps, commands and workdirs.
// All substitution happens here, once, before any planning begins.
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taskfile: %w", err)
	}

	if err := schema.ValidateTaskfile(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var tf model.Taskfile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse taskfile YAML: %w", err)
	}

	if err := normalize.Taskfile(&tf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	table := expand.NewTable()
	for name, raw := range tf.Vars {
		table.Define(name, raw)
	}
	// Force full resolution up front so unresolved or circular bindings
	// surface at load time even when no task references them.
	for _, name := range table.Names() {
		if _, err := table.Resolve(name); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	reg := registry.New()
	for i := range tf.Tasks {
		task, err := resolveTask(table, &tf.Tasks[i])
		if err != nil {
			return nil, fmt.Errorf("%s: task %s: %w", path, tf.Tasks[i].Name, err)
		}
		reg.Register(task)
	}

	defaultTarget, err := table.Expand(tf.Default)
	if err != nil {
		return nil, fmt.Errorf("%s: default: %w", path, err)
	}
	if defaultTarget != "" {
		if _, err := reg.Lookup(defaultTarget); err != nil {
			return nil, fmt.Errorf("%s: default: %w", path, err)
		}
	}

	return &Result{
		Metadata: tf.Metadata,
		Registry: reg,
		Default:  defaultTarget,
	}, nil
}

// resolveTask substitutes variable references throughout one task spec.
func resolveTask(table *expand.Table, spec *model.TaskSpec) (*model.Task, error) {
	name, err := table.Expand(spec.Name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("task name expands to empty string")
	}

	deps := make([]string, 0, len(spec.Deps))
	for _, dep := range spec.Deps {
		expanded, err := table.Expand(dep)
		if err != nil {
			return nil, err
		}
		deps = append(deps, expanded)
	}

	commands := make([]string, 0, len(spec.Commands))
	for _, command := range spec.Commands {
		expanded, err := table.Expand(command)
		if err != nil {
			return nil, err
		}
		commands = append(commands, expanded)
	}

	workDir, err := table.Expand(spec.WorkDir)
	if err != nil {
		return nil, err
	}

	return &model.Task{
		Name:        name,
		Description: spec.Description,
		Deps:        deps,
		Commands:    commands,
		WorkDir:     workDir,
	}, nil
}
