package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/formula"
)

// Code prints the constructor form of an expression: source text that
// would rebuild the identical tree using the package's constructors.
type Code struct {
	Source `embed:""`

	Namespace string `help:"Qualify constructor names with a package namespace" short:"n"`
}

// Run executes the code command.
func (c *Code) Run(ctx context.Context) error {
	x, err := c.parse(ctx)
	if err != nil {
		return formula.WrapError(err).
			With(slog.String("command", "code"))
	}

	fmt.Println(x.Code(c.Namespace))

	return nil
}
