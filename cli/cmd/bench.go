package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ardnew/formula"
)

// Bench times repeated parsing and evaluation of one expression. Parsing
// is measured both cold (cache cleared per iteration) and warm (served
// from the parse cache); evaluation runs against a scratch copy of the
// environment so assignments do not accumulate across iterations.
type Bench struct {
	Source   `embed:""`
	Bindings `embed:""`

	Count int `default:"1000" help:"Number of iterations" short:"n"`
}

// Run executes the bench command.
func (b *Bench) Run(ctx context.Context) error {
	src, err := b.text()
	if err != nil {
		return err
	}

	env, err := b.Environment()
	if err != nil {
		return err
	}

	// Validate before timing so errors are reported once, not b.Count times.
	x, err := formula.ParseString(ctx, src)
	if err != nil {
		return formula.WrapError(err).
			With(slog.String("command", "bench"))
	}

	if _, err := x.Resolve(env.Clone()); err != nil {
		return formula.WrapError(err).
			With(slog.String("command", "bench"))
	}

	cold := b.measure(func() error {
		formula.ClearCache()

		_, err := formula.ParseString(ctx, src)

		return err
	})

	warm := b.measure(func() error {
		_, err := formula.ParseString(ctx, src)

		return err
	})

	eval := b.measure(func() error {
		_, err := x.Resolve(env.Clone())

		return err
	})

	b.report("parse (cold)", cold)
	b.report("parse (warm)", warm)
	b.report("eval", eval)

	return nil
}

// measure runs fn b.Count times and returns the total elapsed time.
func (b *Bench) measure(fn func() error) time.Duration {
	start := time.Now()

	for range b.Count {
		if err := fn(); err != nil {
			break
		}
	}

	return time.Since(start)
}

// report prints one benchmark line.
func (b *Bench) report(name string, total time.Duration) {
	per := time.Duration(0)
	if b.Count > 0 {
		per = total / time.Duration(b.Count)
	}

	fmt.Printf("%-14s %8d ops %12s total %12s/op\n", name, b.Count, total, per)
}
