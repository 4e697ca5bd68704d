// Package main is the entry point for the ocmigrate CLI.
package main

import (
	"errors"
	"os"

	"github.com/thoreinstein/ocmigrate/cmd/ocmigrate/commands"
	ocerrors "github.com/thoreinstein/ocmigrate/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *ocerrors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
