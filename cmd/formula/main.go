package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/formula/cli"
	"github.com/ardnew/formula/log"
)

func main() {
	if err := cli.Run(context.Background(), os.Exit, os.Args[1:]...); err != nil {
		log.Error("exiting", slog.Any("error", err))
		os.Exit(1)
	}
}
