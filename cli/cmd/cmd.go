// Package cmd implements the formula subcommands.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/formula"
	"github.com/ardnew/formula/builtin"
)

// Source selects the expression input: positional arguments joined with
// spaces, or a file (with "-" meaning stdin) when --file is given.
type Source struct {
	Expr []string `arg:"" help:"Expression to parse" name:"expr" optional:""`
	File string   `       help:"Read expression from file or '-' for stdin" short:"f"`
}

// parse reads and parses the selected expression source.
func (s *Source) parse(
	ctx context.Context,
	opts ...formula.Option,
) (formula.Expr, error) {
	if s.File != "" {
		var r io.Reader

		if s.File == "-" {
			r = os.Stdin
		} else {
			file, err := os.Open(s.File)
			if err != nil {
				return nil, formula.ErrReadInput.Wrap(err)
			}
			defer file.Close()

			r = file
		}

		return formula.ParseReader(ctx, r, opts...)
	}

	return formula.ParseString(ctx, strings.Join(s.Expr, " "), opts...)
}

// text returns the raw expression text without parsing it.
func (s *Source) text() (string, error) {
	if s.File != "" {
		var (
			data []byte
			err  error
		)

		if s.File == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(s.File)
		}

		if err != nil {
			return "", formula.ErrReadInput.Wrap(err)
		}

		return string(data), nil
	}

	return strings.Join(s.Expr, " "), nil
}

// Bindings configures the evaluation environment: the standard built-ins
// plus variable bindings loaded from YAML files, later files overriding
// earlier ones.
type Bindings struct {
	EnvFile []string `help:"YAML file(s) of variable bindings" name:"env-file" short:"e" type:"existingfile"`
	NoStdlib bool    `help:"Start from an empty environment"   name:"no-stdlib"`
}

// Environment builds the evaluation environment from the configured
// sources.
func (b *Bindings) Environment() (*formula.Environment, error) {
	var env *formula.Environment

	if b.NoStdlib {
		env = formula.NewEnvironment()
	} else {
		env = builtin.Environment()
	}

	for _, path := range b.EnvFile {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, formula.ErrReadInput.Wrap(err).
				With(slog.String("file", path))
		}

		loaded, err := formula.EnvironmentFromYAML(data)
		if err != nil {
			return nil, formula.WrapError(err).
				With(slog.String("file", path))
		}

		for _, key := range loaded.Keys() {
			value, _ := loaded.Lookup(key)
			env.Bind(key, value)
		}
	}

	return env, nil
}
