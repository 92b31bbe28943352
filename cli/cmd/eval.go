package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ardnew/formula"
	"github.com/ardnew/formula/log"
)

// Eval parses an expression, resolves it against the configured
// environment, and prints the result.
type Eval struct {
	Source   `embed:""`
	Bindings `embed:""`

	Output   string `default:"native"                  enum:"native,json,yaml" help:"Result output format"               short:"o"`
	Timing   bool   `                                                          help:"Report parse and evaluation time"   short:"t"`
	MaxDepth int    `default:"${defaultMaxDepth}"                              help:"Maximum expression nesting depth"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	env, err := e.Environment()
	if err != nil {
		return err
	}

	var opts []formula.Option

	if e.MaxDepth != formula.DefaultMaxDepth {
		opts = append(opts, formula.WithMaxDepth(e.MaxDepth))
	}

	start := time.Now()

	x, err := e.parse(ctx, opts...)
	if err != nil {
		return formula.WrapError(err).
			With(slog.String("command", "eval"))
	}

	parsed := time.Since(start)
	start = time.Now()

	result, err := x.Resolve(env)
	if err != nil {
		return formula.WrapError(err).
			With(slog.String("command", "eval"))
	}

	resolved := time.Since(start)

	if e.Timing {
		log.InfoContext(ctx, "timing",
			slog.Duration("parse", parsed),
			slog.Duration("eval", resolved),
		)
	}

	out, err := e.render(result)
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}

// render formats the result per the configured output format.
func (e *Eval) render(result formula.Result) (string, error) {
	switch e.Output {
	case "json":
		return formula.FormatJSON(result)

	case "yaml":
		return formula.FormatYAML(result)

	default:
		return formula.FormatResult(result), nil
	}
}
