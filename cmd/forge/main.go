// Package main is the entry point for the forge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/forgeframework/forge/internal/cmd"
	oerrors "github.com/forgeframework/forge/internal/errors"
	"github.com/forgeframework/forge/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		code := oerrors.ExitCodeFromError(err)
		output.Debug("exiting", "status", oerrors.ExitCodeName(code), "code", code)
		os.Exit(code)
	}
}
