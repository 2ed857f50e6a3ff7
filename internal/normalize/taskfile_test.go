package normalize

import (
	"testing"

	"github.com/sourceplane/taskrun/internal/model"
)

func TestTaskfileFillsDefaults(t *testing.T) {
	tf := &model.Taskfile{
		APIVersion: "sourceplane.io/v1",
		Kind:       "Taskfile",
		Tasks:      []model.TaskSpec{{Name: "lint"}},
	}

	if err := Taskfile(tf); err != nil {
		t.Fatalf("Taskfile failed: %v", err)
	}
	if tf.Vars == nil {
		t.Error("nil vars must become empty map")
	}
	if tf.Tasks[0].Deps == nil || tf.Tasks[0].Commands == nil {
		t.Error("nil task slices must become empty slices")
	}
}

func TestTaskfileRejectsNil(t *testing.T) {
	if err := Taskfile(nil); err == nil {
		t.Error("expected error for nil taskfile")
	}
}

func TestTaskfileRejectsWrongKind(t *testing.T) {
	tf := &model.Taskfile{Kind: "Intent", Tasks: []model.TaskSpec{{Name: "lint"}}}
	if err := Taskfile(tf); err == nil {
		t.Error("expected error for wrong kind")
	}
}

func TestTaskfileRejectsEmptyName(t *testing.T) {
	tf := &model.Taskfile{Kind: "Taskfile", Tasks: []model.TaskSpec{{Name: ""}}}
	if err := Taskfile(tf); err == nil {
		t.Error("expected error for empty task name")
	}
}
