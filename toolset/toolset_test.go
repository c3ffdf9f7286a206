package toolset

import (
	"context"
	"errors"
	"testing"
)

type echoInput struct {
	Message string `json:"message"`
}

func echoDef(name string) Def {
	return NewDef(name, "Echoes its input", func(_ context.Context, in echoInput) any {
		return in.Message
	})
}

func TestSet_Add(t *testing.T) {
	s := New("demo")

	if err := s.Add(echoDef("echo"), echoDef("echo_twice")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	names := s.Names()
	if len(names) != 2 || names[0] != "echo" || names[1] != "echo_twice" {
		t.Errorf("Names() = %v, want [echo echo_twice]", names)
	}
}

func TestSet_AddDuplicate(t *testing.T) {
	s := New("demo")

	if err := s.Add(echoDef("echo")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	err := s.Add(echoDef("echo"))
	if !errors.Is(err, ErrDuplicateTool) {
		t.Errorf("Add() error = %v, want %v", err, ErrDuplicateTool)
	}
}

func TestSet_MustAddPanicsOnDuplicate(t *testing.T) {
	s := New("demo")
	s.MustAdd(echoDef("echo"))

	defer func() {
		if recover() == nil {
			t.Error("MustAdd() did not panic on duplicate name")
		}
	}()
	s.MustAdd(echoDef("echo"))
}

func TestQualify(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"", "list_secrets", "list_secrets"},
		{"secret", "list_secrets", "secret_list_secrets"},
		{"cloudrun", "delete_cloud_run_service", "cloudrun_delete_cloud_run_service"},
	}
	for _, tt := range tests {
		if got := Qualify(tt.prefix, tt.name); got != tt.want {
			t.Errorf("Qualify(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}
