//go:build linux || darwin

package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dircolors/cmd/dircolors"
	"github.com/arthur-debert/dircolors/pkg/style"
)

func main() {
	rootCmd := dircolors.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
