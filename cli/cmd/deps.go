package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/formula"
)

// Deps prints the free variables of an expression: the names evaluation
// would look up that the configured environment does not define.
type Deps struct {
	Source   `embed:""`
	Bindings `embed:""`
}

// Run executes the deps command.
func (d *Deps) Run(ctx context.Context) error {
	env, err := d.Environment()
	if err != nil {
		return err
	}

	x, err := d.parse(ctx)
	if err != nil {
		return formula.WrapError(err).
			With(slog.String("command", "deps"))
	}

	for _, name := range formula.FreeVars(x, env) {
		fmt.Println(name)
	}

	return nil
}
