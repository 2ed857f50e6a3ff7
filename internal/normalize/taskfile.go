package normalize

import (
	"fmt"

	"github.com/sourceplane/taskrun/internal/model"
)

// Taskfile transforms a raw taskfile into canonical form: nil maps and
// slices become empty, and structural constraints not expressible in the
// schema are checked here.
func Taskfile(tf *model.Taskfile) error {
	if tf == nil {
		return fmt.Errorf("taskfile cannot be nil")
	}
	if tf.Kind != "Taskfile" {
		return fmt.Errorf("unexpected kind %q, want Taskfile", tf.Kind)
	}

	if tf.Vars == nil {
		tf.Vars = make(map[string]string)
	}

	for i := range tf.Tasks {
		task := &tf.Tasks[i]
		if task.Name == "" {
			return fmt.Errorf("task at index %d must have a name", i)
		}
		if task.Deps == nil {
			task.Deps = []string{}
		}
		if task.Commands == nil {
			task.Commands = []string{}
		}
	}

	return nil
}
