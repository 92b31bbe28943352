// Package cli implements the formula command-line interface.
package cli

import (
	"context"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/formula"
	"github.com/ardnew/formula/cli/cmd"
	"github.com/ardnew/formula/cli/cmd/repl"
	"github.com/ardnew/formula/pkg"
)

// CLI is the top-level command-line interface for formula.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Eval  cmd.Eval  `cmd:"" default:"withargs" help:"Evaluate an expression"`
	Deps  cmd.Deps  `cmd:"" help:"List the free variables of an expression"`
	Code  cmd.Code  `cmd:"" help:"Print the constructor form of an expression"`
	Bench cmd.Bench `cmd:"" help:"Time repeated parsing and evaluation"`
	Repl  repl.Repl `cmd:"" help:"Start an interactive session"`
}

// Run executes the formula CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so early parse diagnostics are formatted
	// per the user's preference regardless of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		kong.Vars{
			"version":         pkg.Version,
			"defaultMaxDepth": strconv.Itoa(formula.DefaultMaxDepth),
		}.CloneWith(cli.Pprof.vars()),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
