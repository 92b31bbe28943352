package formula

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// FormatResult renders an evaluation result in the grammar's own literal
// syntax. Equivalent to [Result.String]; exported for symmetry with the
// JSON/YAML renderers.
func FormatResult(r Result) string {
	return r.String()
}

// FormatJSON renders a result as compact JSON. Callables render as null.
func FormatJSON(r Result) (string, error) {
	data, err := json.Marshal(scrub(r.Native()))
	if err != nil {
		return "", WrapError(err)
	}

	return string(data), nil
}

// FormatYAML renders a result as YAML. Callables render as null.
func FormatYAML(r Result) (string, error) {
	data, err := yaml.Marshal(scrub(r.Native()))
	if err != nil {
		return "", WrapError(err)
	}

	return string(data), nil
}

// scrub replaces function values, which no serializer can encode, with nil.
func scrub(v any) any {
	switch t := v.(type) {
	case Func:
		return nil

	case []any:
		for i, item := range t {
			t[i] = scrub(item)
		}

		return t

	default:
		return v
	}
}

// EnvironmentFromYAML builds an Environment from a YAML mapping of
// variable names to scalar or sequence values. Nested mappings are
// flattened with dotted keys, matching the grammar's treatment of dotted
// identifiers as single opaque names.
func EnvironmentFromYAML(data []byte) (*Environment, error) {
	var raw map[string]any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	env := NewEnvironment()
	bindNative(env, "", raw)

	return env, nil
}

// bindNative recursively binds native Go values, flattening maps into
// dotted keys.
func bindNative(env *Environment, prefix string, v any) {
	key := func(name string) string {
		if prefix == "" {
			return name
		}

		return prefix + "." + name
	}

	switch t := v.(type) {
	case map[string]any:
		for name, item := range t {
			bindNative(env, key(name), item)
		}

	default:
		if prefix != "" {
			env.Bind(prefix, ResultOf(v))
		}
	}
}

// ResultOf converts a native Go value to a Result. Integers and floats
// become numbers; slices convert element-wise; unconvertible values
// become null.
func ResultOf(v any) Result {
	switch t := v.(type) {
	case nil:
		return Null

	case bool:
		return Bool(t)

	case int:
		return Num(float64(t))

	case int64:
		return Num(float64(t))

	case uint64:
		return Num(float64(t))

	case float32:
		return Num(float64(t))

	case float64:
		return Num(t)

	case string:
		return Str(t)

	case []any:
		items := make([]Result, len(t))
		for i, item := range t {
			items[i] = ResultOf(item)
		}

		return ListOf(items...)

	case Func:
		return FuncOf(t)

	case Result:
		return t

	default:
		return Null
	}
}
