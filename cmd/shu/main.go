package main

import (
	"os"

	"github.com/hbjs97/shu/internal/cli"
)

func main() {
	app := &cli.App{}
	cmd := app.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
