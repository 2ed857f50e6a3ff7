package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sourceplane/taskrun/internal/model"
)

func TestRegisterAndLookup(t *testing.T) {
	reg := New()
	reg.Register(&model.Task{Name: "lint", Commands: []string{"pylint src"}})

	task, err := reg.Lookup("lint")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if task.Name != "lint" {
		t.Errorf("expected task lint, got %s", task.Name)
	}
}

func TestLookupUnknownTarget(t *testing.T) {
	reg := New()

	_, err := reg.Lookup("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown target, got nil")
	}
	if !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}

	var unknownErr *UnknownTargetError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownTargetError, got %T", err)
	}
	if unknownErr.Name != "nonexistent" {
		t.Errorf("expected name nonexistent, got %q", unknownErr.Name)
	}
}

func TestReRegistrationOverwrites(t *testing.T) {
	reg := New()
	reg.Register(&model.Task{Name: "test", Commands: []string{"old"}})
	reg.Register(&model.Task{Name: "test", Commands: []string{"new"}})

	task, err := reg.Lookup("test")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(task.Commands) != 1 || task.Commands[0] != "new" {
		t.Errorf("expected last registration to win, got %v", task.Commands)
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 task after re-registration, got %d", reg.Len())
	}
}

func TestNamesAreCaseSensitive(t *testing.T) {
	reg := New()
	reg.Register(&model.Task{Name: "Test"})
	reg.Register(&model.Task{Name: "test"})

	if reg.Len() != 2 {
		t.Errorf("expected Test and test to be distinct targets, got %d", reg.Len())
	}
	if _, err := reg.Lookup("TEST"); err == nil {
		t.Error("expected TEST lookup to fail")
	}
}

func TestNamesPreserveDeclarationOrder(t *testing.T) {
	reg := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		reg.Register(&model.Task{Name: name})
	}
	reg.Register(&model.Task{Name: "alpha"}) // overwrite keeps position

	want := []string{"zeta", "alpha", "mid"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
