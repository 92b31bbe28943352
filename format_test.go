package formula

import (
	"strings"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   Result
		want string
	}{
		{Num(1.5), "1.5"},
		{Bool(true), "true"},
		{Str("hi"), `"hi"`},
		{ListOf(Num(1), Str("a"), Bool(false)), `[1,"a",false]`},
		{Null, "null"},
		{FuncOf(func(...Result) (Result, error) { return Null, nil }), "null"},
	}

	for _, tc := range cases {
		got, err := FormatJSON(tc.in)
		if err != nil {
			t.Fatalf("FormatJSON(%v) failed: %v", tc.in, err)
		}

		if got != tc.want {
			t.Errorf("FormatJSON(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatYAML(t *testing.T) {
	t.Parallel()

	got, err := FormatYAML(ListOf(Num(1), Num(2)))
	if err != nil {
		t.Fatalf("FormatYAML failed: %v", err)
	}

	for _, want := range []string{"- 1", "- 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatYAML = %q, missing %q", got, want)
		}
	}
}

func TestEnvironmentFromYAML(t *testing.T) {
	t.Parallel()

	env, err := EnvironmentFromYAML([]byte(`
base: 2
greeting: hello
flag: true
limits:
  upper: 10
  lower: 1
items:
  - 1
  - 2
`))
	if err != nil {
		t.Fatalf("EnvironmentFromYAML failed: %v", err)
	}

	cases := []struct {
		key  string
		want Result
	}{
		{"base", Num(2)},
		{"greeting", Str("hello")},
		{"flag", Bool(true)},
		{"limits.upper", Num(10)},
		{"limits.lower", Num(1)},
		{"items", ListOf(Num(1), Num(2))},
	}

	for _, tc := range cases {
		got, ok := env.Lookup(tc.key)
		if !ok {
			t.Errorf("key %q not bound", tc.key)

			continue
		}

		if !got.Equal(tc.want) {
			t.Errorf("env[%q] = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestEnvironmentFromYAMLRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := EnvironmentFromYAML([]byte("{{nope")); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestResultOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want Result
	}{
		{nil, Null},
		{true, Bool(true)},
		{3, Num(3)},
		{int64(4), Num(4)},
		{2.5, Num(2.5)},
		{"s", Str("s")},
		{[]any{1, "a"}, ListOf(Num(1), Str("a"))},
		{struct{}{}, Null},
	}

	for _, tc := range cases {
		if got := ResultOf(tc.in); !got.Equal(tc.want) {
			t.Errorf("ResultOf(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
