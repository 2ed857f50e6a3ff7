package expand

import (
	"errors"
	"testing"
)

func TestExpandSimpleReference(t *testing.T) {
	table := NewTable()
	table.Define("SRC", "pmix")

	got, err := table.Expand("pylint ${SRC}")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if got != "pylint pmix" {
		t.Errorf("expected %q, got %q", "pylint pmix", got)
	}
}

func TestExpandTransitiveReferences(t *testing.T) {
	table := NewTable()
	table.Define("ROOT", "pmix")
	table.Define("SRC", "${ROOT}/src")
	table.Define("CMD", "lint ${SRC} ${ROOT}")

	got, err := table.Resolve("CMD")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "lint pmix/src pmix" {
		t.Errorf("expected %q, got %q", "lint pmix/src pmix", got)
	}
}

func TestExpandDollarEscape(t *testing.T) {
	table := NewTable()

	got, err := table.Expand("echo $$HOME and $5")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if got != "echo $HOME and $5" {
		t.Errorf("expected %q, got %q", "echo $HOME and $5", got)
	}
}

func TestExpandUnresolvedReference(t *testing.T) {
	table := NewTable()
	table.Define("A", "${MISSING}")

	_, err := table.Resolve("A")
	if err == nil {
		t.Fatal("expected error for unresolved reference, got nil")
	}
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Errorf("expected ErrUnresolvedReference, got %v", err)
	}

	var refErr *RefError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected *RefError, got %T", err)
	}
	if refErr.Name != "MISSING" {
		t.Errorf("expected offending name MISSING, got %q", refErr.Name)
	}
}

func TestExpandCircularReference(t *testing.T) {
	table := NewTable()
	table.Define("A", "${B}")
	table.Define("B", "${C}")
	table.Define("C", "${A}")

	_, err := table.Resolve("A")
	if err == nil {
		t.Fatal("expected error for circular reference, got nil")
	}
	if !errors.Is(err, ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
}

func TestExpandSelfReference(t *testing.T) {
	table := NewTable()
	table.Define("A", "prefix ${A}")

	_, err := table.Resolve("A")
	if !errors.Is(err, ErrCircularReference) {
		t.Errorf("expected ErrCircularReference for self reference, got %v", err)
	}
}

func TestExpandUnterminatedReference(t *testing.T) {
	table := NewTable()
	table.Define("A", "x")

	if _, err := table.Expand("echo ${A"); err == nil {
		t.Error("expected error for unterminated reference, got nil")
	}
}

func TestExpandNoReferencesIsIdentity(t *testing.T) {
	table := NewTable()

	inputs := []string{"", "plain text", "a } b { c"}
	for _, in := range inputs {
		got, err := table.Expand(in)
		if err != nil {
			t.Fatalf("Expand(%q) failed: %v", in, err)
		}
		if got != in {
			t.Errorf("Expand(%q) = %q, want identity", in, got)
		}
	}
}

func TestRedefineOverwrites(t *testing.T) {
	table := NewTable()
	table.Define("A", "first")
	table.Define("A", "second")

	got, err := table.Resolve("A")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "second" {
		t.Errorf("expected redefinition to win, got %q", got)
	}
}
