package formula

import (
	"reflect"
	"testing"
)

func TestEnvironmentBindLookup(t *testing.T) {
	t.Parallel()

	env := NewEnvironment().Bind("x", Num(1)).Bind("y", Str("two"))

	if v, ok := env.Lookup("x"); !ok || v.Float() != 1 {
		t.Errorf("Lookup(x) = %v, %v", v, ok)
	}

	if _, ok := env.Lookup("z"); ok {
		t.Error("Lookup(z) reported a binding")
	}

	env.Bind("x", Num(9))

	if v, _ := env.Lookup("x"); v.Float() != 9 {
		t.Errorf("rebind: x = %v, want 9", v)
	}

	if got, want := env.Keys(), []string{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestEnvironmentClone(t *testing.T) {
	t.Parallel()

	orig := NewEnvironment().Bind("x", Num(1))
	clone := orig.Clone()

	clone.Bind("x", Num(2)).Bind("y", Num(3))

	if v, _ := orig.Lookup("x"); v.Float() != 1 {
		t.Errorf("clone write leaked: x = %v", v)
	}

	if orig.Has("y") {
		t.Error("clone binding leaked into original")
	}
}

func TestZeroEnvironmentIsUsable(t *testing.T) {
	t.Parallel()

	var env Environment

	if env.Has("x") {
		t.Error("empty environment reported a binding")
	}

	env.Bind("x", Num(1))

	if !env.Has("x") {
		t.Error("Bind on zero value did not take")
	}
}
